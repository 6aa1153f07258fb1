package govcmd

import (
	"fmt"
	"io"

	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/colorfmt"
	"github.com/make-os/dao/util/identifier"
)

// ProposeArgs contains arguments for ProposeCmdFunc.
type ProposeArgs struct {

	// From is the investor creating the proposal
	From identifier.Address

	// Name is the proposal name
	Name string

	// Description describes the work to be funded
	Description string

	// Amount is the payable amount requested
	Amount util.String

	// Recipient receives the amount if the proposal is approved
	Recipient identifier.Address

	Stdout io.Writer
}

// ProposeCmdFunc creates a funding proposal
func ProposeCmdFunc(eng *dao.Engine, args *ProposeArgs) error {
	rcpt, err := eng.CreateProposal(args.From, args.Name, args.Description, args.Amount, args.Recipient)
	if err != nil {
		return err
	}

	if args.Stdout != nil {
		fmt.Fprintln(args.Stdout, colorfmt.GreenString("Proposal created"))
		fmt.Fprintln(args.Stdout, "ID:", rcpt.ProposalID)
	}

	return nil
}
