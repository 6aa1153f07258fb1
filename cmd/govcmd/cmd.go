package govcmd

import (
	"fmt"
	"os"

	"github.com/make-os/dao/cmd/common"
	"github.com/make-os/dao/config"
	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var cfg = config.GetConfig()

// run opens the engine, passes it to f and exits on error
func run(f func(eng *dao.Engine) error) {
	eng, closer, err := common.OpenEngine(cfg)
	if err != nil {
		common.Fatal(os.Stderr, err)
	}
	defer closer()
	if err := f(eng); err != nil {
		closer()
		common.Fatal(os.Stderr, err)
	}
}

func requireArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func parseID(arg string) uint64 {
	id, err := cast.ToUint64E(arg)
	if err != nil {
		common.Fatal(os.Stderr, fmt.Errorf("invalid proposal id: %s", arg))
	}
	return id
}

func fromFlag(flags *pflag.FlagSet) identifier.Address {
	from, _ := flags.GetString("from")
	return identifier.Address(from)
}

// InitCmd initializes the data directory and persists the governance parameters
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory and governance parameters",
	Run: func(cmd *cobra.Command, args []string) {
		run(func(eng *dao.Engine) error {
			return InfoCmdFunc(eng, &InfoArgs{Stdout: os.Stdout})
		})
	},
}

// InfoCmd prints the governance parameters and treasury balances
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show governance parameters and treasury balances",
	Run: func(cmd *cobra.Command, args []string) {
		run(func(eng *dao.Engine) error {
			return InfoCmdFunc(eng, &InfoArgs{Stdout: os.Stdout})
		})
	},
}

// FundCmd represents the treasury funding command
var FundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Fund the treasury with native currency or the payable asset",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var fundNativeCmd = &cobra.Command{
	Use:   "native [flags] <amount>",
	Short: "Fund the treasury with native currency",
	Args:  requireArgs(1, "amount"),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(eng *dao.Engine) error {
			return FundCmdFunc(eng, &FundArgs{
				From:   fromFlag(cmd.Flags()),
				Native: true,
				Amount: util.String(args[0]),
				Stdout: os.Stdout,
			})
		})
	},
}

var fundPayCmd = &cobra.Command{
	Use:   "pay [flags] <amount>",
	Short: "Fund the treasury with the payable asset",
	Args:  requireArgs(1, "amount"),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(eng *dao.Engine) error {
			return FundCmdFunc(eng, &FundArgs{
				From:   fromFlag(cmd.Flags()),
				Amount: util.String(args[0]),
				Stdout: os.Stdout,
			})
		})
	},
}

// CreditCmd seeds a balance on the built-in ledger
var CreditCmd = &cobra.Command{
	Use:   "credit",
	Short: "Credit an asset balance to a holder",
	Run: func(cmd *cobra.Command, args []string) {
		asset, _ := cmd.Flags().GetString("asset")
		to, _ := cmd.Flags().GetString("to")
		amount, _ := cmd.Flags().GetString("amount")
		run(func(eng *dao.Engine) error {
			return CreditCmdFunc(eng, &CreditArgs{
				Asset:  asset,
				Holder: identifier.Address(to),
				Amount: util.String(amount),
				Stdout: os.Stdout,
			})
		})
	},
}

// ProposeCmd creates a funding proposal
var ProposeCmd = &cobra.Command{
	Use:   "propose",
	Short: "Create a proposal to disburse the payable asset",
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		desc, _ := cmd.Flags().GetString("desc")
		amount, _ := cmd.Flags().GetString("amount")
		recipient, _ := cmd.Flags().GetString("recipient")
		run(func(eng *dao.Engine) error {
			return ProposeCmdFunc(eng, &ProposeArgs{
				From:        fromFlag(cmd.Flags()),
				Name:        name,
				Description: desc,
				Amount:      util.String(amount),
				Recipient:   identifier.Address(recipient),
				Stdout:      os.Stdout,
			})
		})
	},
}

// VoteCmd represents the voting command
var VoteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Vote on a proposal",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func newVoteCmd(direction string, up bool) *cobra.Command {
	return &cobra.Command{
		Use:   direction + " [flags] <id>",
		Short: "Cast a " + direction + "-vote on a proposal",
		Args:  requireArgs(1, "proposal id"),
		Run: func(cmd *cobra.Command, args []string) {
			id := parseID(args[0])
			run(func(eng *dao.Engine) error {
				return VoteCmdFunc(eng, &VoteArgs{ID: id, From: fromFlag(cmd.Flags()), Up: up, Stdout: os.Stdout})
			})
		},
	}
}

// FinalizeCmd finalizes a proposal
var FinalizeCmd = &cobra.Command{
	Use:   "finalize [flags] <id>",
	Short: "Finalize a proposal and disburse its amount if approved",
	Args:  requireArgs(1, "proposal id"),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		run(func(eng *dao.Engine) error {
			return FinalizeCmdFunc(eng, &FinalizeArgs{ID: id, From: fromFlag(cmd.Flags()), Stdout: os.Stdout})
		})
	},
}

// ProposalCmd represents the proposal query command
var ProposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Read proposals",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var proposalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all proposals",
	Run: func(cmd *cobra.Command, args []string) {
		voter, _ := cmd.Flags().GetString("voter")
		status, _ := cmd.Flags().GetStringSlice("status")
		run(func(eng *dao.Engine) error {
			return ListCmdFunc(eng, &ListArgs{
				Voter:  identifier.Address(voter),
				Status: status,
				Stdout: os.Stdout,
			})
		})
	},
}

var proposalGetCmd = &cobra.Command{
	Use:   "get [flags] <id>",
	Short: "Get a proposal",
	Args:  requireArgs(1, "proposal id"),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		asJSON, _ := cmd.Flags().GetBool("json")
		run(func(eng *dao.Engine) error {
			return GetCmdFunc(eng, &GetArgs{ID: id, JSON: asJSON, Stdout: os.Stdout})
		})
	},
}

// SeedCmd populates the engine with demonstration data
var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the data directory with demonstration proposals",
	Run: func(cmd *cobra.Command, args []string) {
		investors, _ := cmd.Flags().GetStringSlice("investors")
		recipient, _ := cmd.Flags().GetString("recipient")
		funder, _ := cmd.Flags().GetString("funder")

		var addrs []identifier.Address
		for _, inv := range investors {
			addrs = append(addrs, identifier.Address(inv))
		}

		run(func(eng *dao.Engine) error {
			return SeedCmdFunc(eng, &SeedArgs{
				Investors: addrs,
				Recipient: identifier.Address(recipient),
				Funder:    identifier.Address(funder),
				Stdout:    os.Stdout,
			})
		})
	},
}

func init() {
	voteUpCmd := newVoteCmd("up", true)
	voteDownCmd := newVoteCmd("down", false)
	VoteCmd.AddCommand(voteUpCmd, voteDownCmd)
	FundCmd.AddCommand(fundNativeCmd, fundPayCmd)
	ProposalCmd.AddCommand(proposalListCmd, proposalGetCmd)

	for _, c := range []*cobra.Command{voteUpCmd, voteDownCmd, fundNativeCmd, fundPayCmd, FinalizeCmd, ProposeCmd} {
		c.Flags().StringP("from", "f", "", "The address of the caller")
		_ = c.MarkFlagRequired("from")
	}

	CreditCmd.Flags().StringP("asset", "a", "", "The asset to credit")
	CreditCmd.Flags().StringP("to", "t", "", "The address of the holder")
	CreditCmd.Flags().String("amount", "", "The amount to credit")
	_ = CreditCmd.MarkFlagRequired("asset")
	_ = CreditCmd.MarkFlagRequired("to")
	_ = CreditCmd.MarkFlagRequired("amount")

	ProposeCmd.Flags().StringP("name", "n", "", "The name of the proposal")
	ProposeCmd.Flags().StringP("desc", "d", "", "The description of the proposal")
	ProposeCmd.Flags().String("amount", "", "The payable amount requested")
	ProposeCmd.Flags().StringP("recipient", "r", "", "The address that receives the amount")
	_ = ProposeCmd.MarkFlagRequired("amount")
	_ = ProposeCmd.MarkFlagRequired("recipient")

	proposalListCmd.Flags().String("voter", "", "Show the vote cast by this address")
	proposalGetCmd.Flags().Bool("json", false, "Print the proposal as JSON")
	proposalListCmd.Flags().StringSlice("status", nil, "Only show proposals with these statuses")

	SeedCmd.Flags().StringSlice("investors", DefaultSeedInvestors, "The investors to credit (at least 3)")
	SeedCmd.Flags().String("recipient", DefaultSeedRecipient, "The recipient of seeded proposals")
	SeedCmd.Flags().String("funder", DefaultSeedFunder, "The treasury funder")
}
