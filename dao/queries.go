package dao

import (
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/make-os/dao/validation"
	"github.com/pkg/errors"
)

// Quorum returns the weight that up or down votes must exceed
func (e *Engine) Quorum() util.String {
	return e.gov.Quorum
}

// GovAsset returns the governance asset identifier
func (e *Engine) GovAsset() string {
	return e.gov.GovAsset
}

// PayAsset returns the payable asset identifier
func (e *Engine) PayAsset() string {
	return e.gov.PayAsset
}

// Treasury returns the treasury principal
func (e *Engine) Treasury() identifier.Address {
	return e.gov.Treasury
}

// ProposalCount returns the number of proposals created
func (e *Engine) ProposalCount() (uint64, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	l := e.reader()
	defer l.Close()
	return l.ProposalKeeper().Count()
}

// GetProposal returns a proposal by id.
// Returns types.ErrProposalNotFound for unknown ids.
func (e *Engine) GetProposal(id uint64) (*state.Proposal, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	l := e.reader()
	defer l.Close()
	return l.ProposalKeeper().Get(id)
}

// GetProposals returns all proposals in ascending id order
func (e *Engine) GetProposals() ([]*state.Proposal, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()

	l := e.reader()
	defer l.Close()
	pk := l.ProposalKeeper()
	count, err := pk.Count()
	if err != nil {
		return nil, err
	}

	res := make([]*state.Proposal, 0, count)
	for id := uint64(1); id <= count; id++ {
		p, err := pk.Get(id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get proposal %d", id)
		}
		res = append(res, p)
	}
	return res, nil
}

// GetVote returns the vote record of voter on a proposal or nil
// if the voter has not voted
func (e *Engine) GetVote(id uint64, voter identifier.Address) (*state.VoteRecord, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	l := e.reader()
	defer l.Close()
	return l.VoteKeeper().Get(id, voter)
}

// HasUpVoted checks whether voter up-voted the proposal
func (e *Engine) HasUpVoted(voter identifier.Address, id uint64) (bool, error) {
	rec, err := e.GetVote(id, voter)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.UpVoted, nil
}

// HasDownVoted checks whether voter down-voted the proposal
func (e *Engine) HasDownVoted(voter identifier.Address, id uint64) (bool, error) {
	rec, err := e.GetVote(id, voter)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.DownVoted, nil
}

// BalanceOf returns the balance of holder in asset
func (e *Engine) BalanceOf(asset string, holder identifier.Address) (util.String, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	l := e.reader()
	defer l.Close()
	return l.Ledger().BalanceOf(asset, holder)
}

// TreasuryBalance returns the treasury's balance in asset
func (e *Engine) TreasuryBalance(asset string) (util.String, error) {
	return e.BalanceOf(asset, e.gov.Treasury)
}

// IsInvestor checks whether addr holds a positive governance balance
func (e *Engine) IsInvestor(addr identifier.Address) (bool, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	l := e.reader()
	defer l.Close()
	_, err := validation.CheckInvestor(addr, l)
	if err != nil {
		if errors.Is(err, types.ErrUnauthorized) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Events returns the persisted events with a sequence number
// greater than fromSeq, in ascending order
func (e *Engine) Events(fromSeq uint64) ([]*types.EventRecord, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	l := e.reader()
	defer l.Close()
	return l.EventKeeper().Since(fromSeq)
}
