package keepers

import (
	"github.com/make-os/dao/storage/common"
	storagetypes "github.com/make-os/dao/storage/types"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util/identifier"
	"github.com/pkg/errors"
)

// VoteKeeper manages vote records
type VoteKeeper struct {
	db storagetypes.Tx
}

// NewVoteKeeper creates an instance of VoteKeeper
func NewVoteKeeper(db storagetypes.Tx) *VoteKeeper {
	return &VoteKeeper{db: db}
}

// Get returns the vote record of voter on the proposal.
// It returns nil if the voter has not voted.
func (k *VoteKeeper) Get(id uint64, voter identifier.Address) (*state.VoteRecord, error) {
	rec, err := k.db.Get(MakeVoteKey(id, voter))
	if err != nil {
		if err == common.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get vote record")
	}
	vote, err := state.NewVoteRecordFromBytes(rec.Value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode vote record")
	}
	return vote, nil
}

// Save stores the vote record of voter on the proposal
func (k *VoteKeeper) Save(id uint64, voter identifier.Address, vote *state.VoteRecord) error {
	rec := common.NewRecord(MakeVoteKey(id, voter), vote.Bytes())
	if err := k.db.Put(rec); err != nil {
		return errors.Wrap(err, "failed to save vote record")
	}
	return nil
}
