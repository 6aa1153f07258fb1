package voteproposal

import (
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/types/txns"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/validation"
	"github.com/pkg/errors"
)

// ProposalVoteContract is a system contract for adding a vote on a proposal.
// ProposalVoteContract implements SystemContract.
type ProposalVoteContract struct {
	core.Logic
	tx *txns.TxProposalVote
}

// NewContract creates a new instance of ProposalVoteContract
func NewContract() *ProposalVoteContract {
	return &ProposalVoteContract{}
}

func (c *ProposalVoteContract) CanExec(typ types.TxCode) bool {
	return typ == txns.TxTypeProposalVote
}

// Init initialize the contract
func (c *ProposalVoteContract) Init(logic core.Logic, tx types.BaseTx) core.SystemContract {
	return &ProposalVoteContract{Logic: logic, tx: tx.(*txns.TxProposalVote)}
}

// Exec executes the contract
func (c *ProposalVoteContract) Exec() error {

	voter := c.tx.GetSender()

	// The voting weight is the voter's governance balance right now
	weight, err := validation.CheckInvestor(voter, c)
	if err != nil {
		return err
	}
	w := util.DecToStr(weight)

	prop, err := c.ProposalKeeper().Get(c.tx.ProposalID)
	if err != nil {
		return err
	}

	rec := &state.VoteRecord{Weight: w}
	var evt types.Event
	if c.tx.IsUp() {
		prop.UpVotes = prop.UpVotes.Add(w)
		rec.UpVoted = true
		evt = &types.EvtUpVote{ID: prop.ID, Voter: voter}
	} else {
		prop.DownVotes = prop.DownVotes.Add(w)
		rec.DownVoted = true
		evt = &types.EvtDownVote{ID: prop.ID, Voter: voter}
	}

	if err = c.ProposalKeeper().Update(prop); err != nil {
		return errors.Wrap(err, "failed to update proposal")
	}

	if err = c.VoteKeeper().Save(prop.ID, voter, rec); err != nil {
		return errors.Wrap(err, "failed to save vote")
	}

	return c.AddEvent(evt)
}
