package validation

import (
	"fmt"
	"strings"

	v "github.com/go-ozzo/ozzo-validation"
	"github.com/make-os/dao/params"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/txns"
)

func checkType(tx *txns.TxType, expected types.TxCode, index int) error {
	if tx == nil || !tx.Is(expected) {
		return feI(index, "type", "type is invalid")
	}
	return nil
}

func checkText(field, val string, maxLen int, index int) error {
	if err := v.Validate(strings.TrimSpace(val),
		v.Required.Error(feI(index, field, field+" is required").Error()),
	); err != nil {
		return err
	}
	if len(val) > maxLen {
		return feI(index, field, fmt.Sprintf("%s length cannot be greater than %d", field, maxLen))
	}
	return nil
}

// CheckTxCreateProposal performs sanity checks on TxCreateProposal.
// A zero amount is left to the treasury check.
func CheckTxCreateProposal(tx *txns.TxCreateProposal, index int) error {

	if err := checkType(tx.TxType, txns.TxTypeCreateProposal, index); err != nil {
		return err
	}

	if err := checkText("name", tx.Name, params.MaxProposalNameLen, index); err != nil {
		return err
	}

	if err := checkText("description", tx.Description, params.MaxProposalDescLen, index); err != nil {
		return err
	}

	if err := v.Validate(tx.Recipient,
		v.Required.Error(feI(index, "recipient", "recipient is required").Error()),
		v.By(notNullPrincipalRule("recipient", index)),
	); err != nil {
		return err
	}

	if err := v.Validate(tx.Amount,
		v.Required.Error(feI(index, "amount", "amount is required").Error()),
		v.By(validAmountRule("amount", index)),
	); err != nil {
		return err
	}

	return nil
}

// CheckTxProposalVote performs sanity checks on TxProposalVote
func CheckTxProposalVote(tx *txns.TxProposalVote, index int) error {

	if err := checkType(tx.TxType, txns.TxTypeProposalVote, index); err != nil {
		return err
	}

	if tx.Vote != txns.VoteUp && tx.Vote != txns.VoteDown {
		return feI(index, "vote", "vote choice is unknown")
	}

	return nil
}

// CheckTxFinalizeProposal performs sanity checks on TxFinalizeProposal
func CheckTxFinalizeProposal(tx *txns.TxFinalizeProposal, index int) error {
	return checkType(tx.TxType, txns.TxTypeFinalizeProposal, index)
}

// CheckTxFundTreasury performs sanity checks on TxFundTreasury
func CheckTxFundTreasury(tx *txns.TxFundTreasury, index int) error {

	if err := checkType(tx.TxType, txns.TxTypeFundTreasury, index); err != nil {
		return err
	}

	if err := v.Validate(tx.Asset,
		v.Required.Error(feI(index, "asset", "asset is required").Error()),
	); err != nil {
		return err
	}

	if err := v.Validate(tx.Amount,
		v.Required.Error(feI(index, "amount", "amount is required").Error()),
		v.By(validAmountRule("amount", index)),
		v.By(positiveAmountRule("amount", index)),
	); err != nil {
		return err
	}

	return nil
}
