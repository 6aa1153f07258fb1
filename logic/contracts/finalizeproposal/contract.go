package finalizeproposal

import (
	"github.com/make-os/dao/logic/keepers"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/txns"
	"github.com/pkg/errors"
)

// FinalizeProposalContract is a system contract for locking the outcome
// of a proposal. An approved proposal has its amount moved from the
// treasury to the recipient.
// FinalizeProposalContract implements SystemContract.
type FinalizeProposalContract struct {
	core.Logic
	tx *txns.TxFinalizeProposal
}

// NewContract creates a new instance of FinalizeProposalContract
func NewContract() *FinalizeProposalContract {
	return &FinalizeProposalContract{}
}

func (c *FinalizeProposalContract) CanExec(typ types.TxCode) bool {
	return typ == txns.TxTypeFinalizeProposal
}

// Init initialize the contract
func (c *FinalizeProposalContract) Init(logic core.Logic, tx types.BaseTx) core.SystemContract {
	return &FinalizeProposalContract{Logic: logic, tx: tx.(*txns.TxFinalizeProposal)}
}

// Exec executes the contract
func (c *FinalizeProposalContract) Exec() error {

	prop, err := c.ProposalKeeper().Get(c.tx.ProposalID)
	if err != nil {
		return err
	}

	// Approval takes priority when both tallies exceed the quorum
	gov := c.GovConfig()
	approved := prop.UpVotes.Decimal().GreaterThan(gov.Quorum.Decimal())

	if approved {
		err = c.Ledger().Transfer(gov.PayAsset, gov.Treasury, prop.Recipient, prop.Amount)
		if err != nil {
			if errors.Is(err, keepers.ErrInsufficientBalance) {
				return errors.WithMessage(types.ErrInsufficientTreasury, err.Error())
			}
			return errors.Wrap(err, "failed to disburse proposal amount")
		}
	}

	prop.Finalized = true
	prop.Approved = approved
	if err = c.ProposalKeeper().Update(prop); err != nil {
		return errors.Wrap(err, "failed to update proposal")
	}

	return c.AddEvent(&types.EvtFinalize{ID: prop.ID, Approved: approved})
}
