package govcmd

import (
	"fmt"
	"io"

	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/util/colorfmt"
	"github.com/make-os/dao/util/identifier"
)

// FinalizeArgs contains arguments for FinalizeCmdFunc.
type FinalizeArgs struct {

	// ID is the proposal id
	ID uint64

	// From is the finalizing investor
	From identifier.Address

	Stdout io.Writer
}

// FinalizeCmdFunc finalizes a proposal and prints the outcome
func FinalizeCmdFunc(eng *dao.Engine, args *FinalizeArgs) error {
	rcpt, err := eng.FinalizeProposal(args.ID, args.From)
	if err != nil {
		return err
	}

	if args.Stdout != nil {
		evt, _ := rcpt.Event(types.EvtNameFinalize).(*types.EvtFinalize)
		if evt != nil && evt.Approved {
			fmt.Fprintln(args.Stdout, colorfmt.GreenString("Proposal %d approved; funds disbursed", args.ID))
		} else {
			fmt.Fprintln(args.Stdout, colorfmt.RedString("Proposal %d rejected", args.ID))
		}
	}

	return nil
}
