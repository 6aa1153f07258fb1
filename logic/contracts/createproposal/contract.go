package createproposal

import (
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/types/txns"
	"github.com/pkg/errors"
)

// CreateProposalContract is a system contract for creating a funding proposal.
// CreateProposalContract implements SystemContract.
type CreateProposalContract struct {
	core.Logic
	tx *txns.TxCreateProposal
}

// NewContract creates a new instance of CreateProposalContract
func NewContract() *CreateProposalContract {
	return &CreateProposalContract{}
}

func (c *CreateProposalContract) CanExec(typ types.TxCode) bool {
	return typ == txns.TxTypeCreateProposal
}

// Init initialize the contract
func (c *CreateProposalContract) Init(logic core.Logic, tx types.BaseTx) core.SystemContract {
	return &CreateProposalContract{Logic: logic, tx: tx.(*txns.TxCreateProposal)}
}

// Exec executes the contract
func (c *CreateProposalContract) Exec() error {

	prop := state.BareProposal()
	prop.Name = c.tx.Name
	prop.Description = c.tx.Description
	prop.Amount = c.tx.Amount
	prop.Recipient = c.tx.Recipient
	prop.Creator = c.tx.GetSender()
	prop.CreatedAt = c.tx.GetTimestamp()

	id, err := c.ProposalKeeper().Add(prop)
	if err != nil {
		return errors.Wrap(err, "failed to add proposal")
	}

	return c.AddEvent(&types.EvtProposalCreated{
		ID:        id,
		Amount:    prop.Amount,
		Recipient: prop.Recipient,
		Creator:   prop.Creator,
	})
}
