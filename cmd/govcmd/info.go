package govcmd

import (
	"fmt"
	"io"

	"github.com/make-os/dao/cmd/common"
	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/types/state"
	"github.com/pkg/errors"
)

// InfoArgs contains arguments for InfoCmdFunc.
type InfoArgs struct {
	Stdout io.Writer
}

// InfoCmdFunc prints the governance parameters and treasury balances
func InfoCmdFunc(eng *dao.Engine, args *InfoArgs) error {

	native, err := eng.TreasuryBalance(state.NativeAsset)
	if err != nil {
		return errors.Wrap(err, "failed to get native treasury balance")
	}

	payable, err := eng.TreasuryBalance(eng.PayAsset())
	if err != nil {
		return errors.Wrap(err, "failed to get payable treasury balance")
	}

	count, err := eng.ProposalCount()
	if err != nil {
		return errors.Wrap(err, "failed to get proposal count")
	}

	table := newTable(args.Stdout, []string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"Treasury", eng.Treasury().String()},
		{"Treasury Balance (native)", common.FormatAmount(native)},
		{fmt.Sprintf("Treasury Balance (%s)", eng.PayAsset()), common.FormatAmount(payable)},
		{"Governance Asset", eng.GovAsset()},
		{"Payable Asset", eng.PayAsset()},
		{"Quorum", common.FormatAmount(eng.Quorum())},
		{"Proposals", fmt.Sprintf("%d", count)},
	})
	table.Render()

	return nil
}
