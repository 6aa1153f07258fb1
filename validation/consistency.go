package validation

import (
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/types/txns"
	"github.com/make-os/dao/util/identifier"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CheckInvestor checks that addr holds a positive balance of the
// governance asset at the time of the call.
// It returns the balance, which is also the voting weight.
func CheckInvestor(addr identifier.Address, logic core.Logic) (decimal.Decimal, error) {
	bal, err := logic.Ledger().BalanceOf(logic.GovConfig().GovAsset, addr)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to get governance balance")
	}
	if !bal.IsDecimal() || !bal.Decimal().IsPositive() {
		return decimal.Zero, errors.WithMessagef(types.ErrUnauthorized, "principal %s", addr)
	}
	return bal.Decimal(), nil
}

// checkTreasuryCovers checks that 0 < amount < treasury payable balance
func checkTreasuryCovers(amount decimal.Decimal, logic core.Logic) error {
	gov := logic.GovConfig()
	bal, err := logic.Ledger().BalanceOf(gov.PayAsset, gov.Treasury)
	if err != nil {
		return errors.Wrap(err, "failed to get treasury balance")
	}
	if !amount.IsPositive() {
		return errors.WithMessage(types.ErrInsufficientTreasury, "amount must be greater than zero")
	}
	if !amount.LessThan(bal.Decimal()) {
		return errors.WithMessagef(types.ErrInsufficientTreasury,
			"amount %s not below treasury balance %s", amount, bal.Decimal())
	}
	return nil
}

// getOpenProposal returns the proposal if it exists and is not finalized
func getOpenProposal(id uint64, logic core.Logic) (*state.Proposal, error) {
	p, err := logic.ProposalKeeper().Get(id)
	if err != nil {
		if errors.Is(err, types.ErrProposalNotFound) {
			return nil, errors.WithMessagef(types.ErrProposalNotFound, "id %d", id)
		}
		return nil, err
	}
	if p.IsFinalized() {
		return nil, errors.WithMessagef(types.ErrAlreadyFinalized, "id %d", id)
	}
	return p, nil
}

// CheckTxCreateProposalConsistency performs consistency checks on TxCreateProposal
func CheckTxCreateProposalConsistency(tx *txns.TxCreateProposal, index int, logic core.Logic) error {

	if _, err := CheckInvestor(tx.GetSender(), logic); err != nil {
		return err
	}

	return checkTreasuryCovers(tx.Amount.Decimal(), logic)
}

// CheckTxProposalVoteConsistency performs consistency checks on TxProposalVote
func CheckTxProposalVoteConsistency(tx *txns.TxProposalVote, index int, logic core.Logic) error {

	if _, err := CheckInvestor(tx.GetSender(), logic); err != nil {
		return err
	}

	if _, err := getOpenProposal(tx.ProposalID, logic); err != nil {
		return err
	}

	vote, err := logic.VoteKeeper().Get(tx.ProposalID, tx.GetSender())
	if err != nil {
		return err
	}
	if vote != nil && vote.HasVoted() {
		return errors.WithMessagef(types.ErrAlreadyVoted, "principal %s on proposal %d",
			tx.GetSender(), tx.ProposalID)
	}

	return nil
}

// CheckTxFinalizeProposalConsistency performs consistency checks on TxFinalizeProposal.
// When the up-votes exceed the quorum, the treasury must still cover the amount.
func CheckTxFinalizeProposalConsistency(tx *txns.TxFinalizeProposal, index int, logic core.Logic) error {

	if _, err := CheckInvestor(tx.GetSender(), logic); err != nil {
		return err
	}

	p, err := getOpenProposal(tx.ProposalID, logic)
	if err != nil {
		return err
	}

	quorum := logic.GovConfig().Quorum.Decimal()
	upPassed := p.UpVotes.Decimal().GreaterThan(quorum)
	downPassed := p.DownVotes.Decimal().GreaterThan(quorum)
	if !upPassed && !downPassed {
		return errors.WithMessagef(types.ErrQuorumNotMet, "up %s, down %s, quorum %s",
			p.UpVotes.Decimal(), p.DownVotes.Decimal(), quorum)
	}

	if upPassed {
		gov := logic.GovConfig()
		bal, err := logic.Ledger().BalanceOf(gov.PayAsset, gov.Treasury)
		if err != nil {
			return errors.Wrap(err, "failed to get treasury balance")
		}
		if bal.Decimal().LessThan(p.Amount.Decimal()) {
			return errors.WithMessagef(types.ErrInsufficientTreasury,
				"amount %s above treasury balance %s", p.Amount.Decimal(), bal.Decimal())
		}
	}

	return nil
}

// CheckTxFundTreasuryConsistency performs consistency checks on TxFundTreasury
func CheckTxFundTreasuryConsistency(tx *txns.TxFundTreasury, index int, logic core.Logic) error {
	if tx.Asset != state.NativeAsset && tx.Asset != logic.GovConfig().PayAsset {
		return errors.WithMessage(types.ErrInvalidArgument,
			feI(index, "asset", "asset must be native or the payable asset").Error())
	}
	return nil
}
