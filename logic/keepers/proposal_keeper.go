package keepers

import (
	"github.com/make-os/dao/pkgs/cache"
	"github.com/make-os/dao/storage/common"
	storagetypes "github.com/make-os/dao/storage/types"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util"
	"github.com/pkg/errors"
)

// ProposalKeeper manages proposals.
// Proposals read from committed state are kept in an optional shared
// cache. Proposals written through this keeper are evicted from the
// cache and bypass it until the keeper is discarded.
type ProposalKeeper struct {
	db    storagetypes.Tx
	cache *cache.Cache
	dirty map[uint64]struct{}
}

// NewProposalKeeper creates an instance of ProposalKeeper.
// c may be nil.
func NewProposalKeeper(db storagetypes.Tx, c *cache.Cache) *ProposalKeeper {
	return &ProposalKeeper{db: db, cache: c, dirty: make(map[uint64]struct{})}
}

// Count returns the number of proposals
func (k *ProposalKeeper) Count() (uint64, error) {
	rec, err := k.db.Get(MakeProposalCountKey())
	if err != nil {
		if err == common.ErrRecordNotFound {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to get proposal count")
	}
	return util.MayDecodeNumber(rec.Value)
}

// Add assigns the next sequential id to the proposal and stores it
func (k *ProposalKeeper) Add(p *state.Proposal) (uint64, error) {
	count, err := k.Count()
	if err != nil {
		return 0, err
	}

	p.ID = count + 1
	if err = k.Update(p); err != nil {
		return 0, err
	}

	rec := common.NewRecord(MakeProposalCountKey(), util.EncodeNumber(p.ID))
	if err = k.db.Put(rec); err != nil {
		return 0, errors.Wrap(err, "failed to save proposal count")
	}

	return p.ID, nil
}

// Get returns a proposal by id.
// Returns types.ErrProposalNotFound if unknown.
func (k *ProposalKeeper) Get(id uint64) (*state.Proposal, error) {
	if id == 0 {
		return nil, types.ErrProposalNotFound
	}

	_, dirty := k.dirty[id]
	if !dirty && k.cache != nil {
		if p, ok := k.cache.Get(id).(*state.Proposal); ok {
			cp := *p
			return &cp, nil
		}
	}

	rec, err := k.db.Get(MakeProposalKey(id))
	if err != nil {
		if err == common.ErrRecordNotFound {
			return nil, types.ErrProposalNotFound
		}
		return nil, errors.Wrap(err, "failed to get proposal")
	}

	p, err := state.NewProposalFromBytes(rec.Value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode proposal")
	}

	if !dirty && k.cache != nil {
		cp := *p
		k.cache.Add(id, &cp)
	}

	return p, nil
}

// Update stores an existing proposal
func (k *ProposalKeeper) Update(p *state.Proposal) error {
	k.dirty[p.ID] = struct{}{}
	if k.cache != nil {
		k.cache.Remove(p.ID)
	}
	rec := common.NewRecord(MakeProposalKey(p.ID), p.Bytes())
	if err := k.db.Put(rec); err != nil {
		return errors.Wrap(err, "failed to save proposal")
	}
	return nil
}
