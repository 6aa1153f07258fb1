package validation

import (
	"fmt"

	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/txns"
	"github.com/make-os/dao/util/errors"
	errors2 "github.com/pkg/errors"
)

var feI = errors.FieldErrorWithIndex

// ValidateTx validates a transaction
func ValidateTx(tx types.BaseTx, i int, logic core.Logic) error {

	if tx == nil {
		return fmt.Errorf("nil tx")
	}

	if err := ValidateTxSanity(tx, i); err != nil {
		return err
	}

	if err := ValidateTxConsistency(tx, i, logic); err != nil {
		return err
	}

	return nil
}

// ValidateTxSanity checks whether the transaction's fields and values are
// correct without checking any storage.
// Failures are wrapped as types.ErrInvalidArgument.
//
// index: index is used to indicate the index of the transaction in a slice
// managed by the caller. It is used for constructing error messages.
// Use -1 if tx is not part of a collection.
func ValidateTxSanity(tx types.BaseTx, index int) error {
	var err error
	switch o := tx.(type) {
	case *txns.TxCreateProposal:
		err = CheckTxCreateProposal(o, index)
	case *txns.TxProposalVote:
		err = CheckTxProposalVote(o, index)
	case *txns.TxFinalizeProposal:
		err = CheckTxFinalizeProposal(o, index)
	case *txns.TxFundTreasury:
		err = CheckTxFundTreasury(o, index)
	default:
		return feI(index, "type", "unsupported transaction type")
	}
	if err != nil {
		return errors2.WithMessage(types.ErrInvalidArgument, err.Error())
	}
	return nil
}

// ValidateTxConsistency checks whether the transaction is consistent
// with the current state.
//
// index: index is used to indicate the index of the transaction in a slice
// managed by the caller. It is used for constructing error messages.
// Use -1 if tx is not part of a collection.
func ValidateTxConsistency(tx types.BaseTx, index int, logic core.Logic) error {
	switch o := tx.(type) {
	case *txns.TxCreateProposal:
		return CheckTxCreateProposalConsistency(o, index, logic)
	case *txns.TxProposalVote:
		return CheckTxProposalVoteConsistency(o, index, logic)
	case *txns.TxFinalizeProposal:
		return CheckTxFinalizeProposalConsistency(o, index, logic)
	case *txns.TxFundTreasury:
		return CheckTxFundTreasuryConsistency(o, index, logic)
	default:
		return feI(index, "type", "unsupported transaction type")
	}
}
