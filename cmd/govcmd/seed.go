package govcmd

import (
	"fmt"
	"io"

	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/colorfmt"
	"github.com/make-os/dao/util/identifier"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// DefaultSeedInvestors are the investors credited by the seed command
	DefaultSeedInvestors = []string{
		"0x1000000000000000000000000000000000000001",
		"0x1000000000000000000000000000000000000002",
		"0x1000000000000000000000000000000000000003",
	}

	// DefaultSeedRecipient receives the amounts of seeded proposals
	DefaultSeedRecipient = "0x2000000000000000000000000000000000000001"

	// DefaultSeedFunder funds the treasury during seeding
	DefaultSeedFunder = "0x3000000000000000000000000000000000000001"
)

// SeedArgs contains arguments for SeedCmdFunc.
type SeedArgs struct {

	// Investors are credited with governance tokens and cast the votes.
	// At least three are required.
	Investors []identifier.Address

	// Recipient receives the amounts of approved proposals
	Recipient identifier.Address

	// Funder funds the treasury
	Funder identifier.Address

	Stdout io.Writer
}

// units scales a whole token amount to 18 decimal places
func units(n int64) util.String {
	return util.String(decimal.New(n, 18).String())
}

// SeedCmdFunc populates the engine with a demonstration state:
// three approved proposals and a fourth that is still open.
func SeedCmdFunc(eng *dao.Engine, args *SeedArgs) error {

	if len(args.Investors) < 3 {
		return fmt.Errorf("at least 3 investors are required")
	}

	out := args.Stdout
	if out == nil {
		out = io.Discard
	}

	for _, inv := range args.Investors {
		if err := eng.Credit(eng.GovAsset(), inv, units(200000)); err != nil {
			return errors.Wrapf(err, "failed to credit investor %s", inv)
		}
	}
	fmt.Fprintf(out, "Credited %d investors\n", len(args.Investors))

	if _, err := eng.FundNative(args.Funder, units(1000)); err != nil {
		return errors.Wrap(err, "failed to fund native treasury")
	}
	if _, err := eng.FundPayable(args.Funder, units(1000)); err != nil {
		return errors.Wrap(err, "failed to fund payable treasury")
	}
	fmt.Fprintln(out, "Funded treasury")

	for i := 1; i <= 3; i++ {
		rcpt, err := eng.CreateProposal(args.Investors[0], fmt.Sprintf("Proposal %d", i),
			fmt.Sprintf("Seeded proposal %d", i), units(100), args.Recipient)
		if err != nil {
			return errors.Wrapf(err, "failed to create proposal %d", i)
		}
		for _, inv := range args.Investors[:3] {
			if _, err := eng.UpVote(rcpt.ProposalID, inv); err != nil {
				return errors.Wrapf(err, "failed to vote on proposal %d", rcpt.ProposalID)
			}
		}
		if _, err := eng.FinalizeProposal(rcpt.ProposalID, args.Investors[0]); err != nil {
			return errors.Wrapf(err, "failed to finalize proposal %d", rcpt.ProposalID)
		}
		fmt.Fprintf(out, "Proposal %d %s\n", rcpt.ProposalID, colorfmt.StatusString(state.ProposalStatusApproved))
	}

	rcpt, err := eng.CreateProposal(args.Investors[0], "Proposal 4",
		"Seeded proposal 4", units(100), args.Recipient)
	if err != nil {
		return errors.Wrap(err, "failed to create proposal 4")
	}
	for _, inv := range []identifier.Address{args.Investors[2], args.Investors[1]} {
		if _, err := eng.UpVote(rcpt.ProposalID, inv); err != nil {
			return errors.Wrapf(err, "failed to vote on proposal %d", rcpt.ProposalID)
		}
	}
	fmt.Fprintf(out, "Proposal %d %s\n", rcpt.ProposalID, colorfmt.StatusString(state.ProposalStatusInProgress))

	return nil
}
