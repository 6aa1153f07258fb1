package govcmd

import (
	"fmt"
	"io"

	"github.com/make-os/dao/cmd/common"
	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/colorfmt"
	"github.com/make-os/dao/util/identifier"
)

// FundArgs contains arguments for FundCmdFunc.
type FundArgs struct {

	// From is the funder
	From identifier.Address

	// Native indicates native currency; false means the payable asset
	Native bool

	// Amount is the amount to credit to the treasury
	Amount util.String

	Stdout io.Writer
}

// FundCmdFunc credits the treasury
func FundCmdFunc(eng *dao.Engine, args *FundArgs) error {
	var err error
	if args.Native {
		_, err = eng.FundNative(args.From, args.Amount)
	} else {
		_, err = eng.FundPayable(args.From, args.Amount)
	}
	if err != nil {
		return err
	}

	if args.Stdout != nil {
		fmt.Fprintln(args.Stdout, colorfmt.GreenString("Treasury funded with %s", common.FormatAmount(args.Amount)))
	}

	return nil
}

// CreditArgs contains arguments for CreditCmdFunc.
type CreditArgs struct {

	// Asset is the asset to credit
	Asset string

	// Holder receives the amount
	Holder identifier.Address

	// Amount is the amount to credit
	Amount util.String

	Stdout io.Writer
}

// CreditCmdFunc seeds a balance on the built-in ledger
func CreditCmdFunc(eng *dao.Engine, args *CreditArgs) error {
	if err := eng.Credit(args.Asset, args.Holder, args.Amount); err != nil {
		return err
	}

	if args.Stdout != nil {
		fmt.Fprintf(args.Stdout, "Credited %s %s to %s\n",
			common.FormatAmount(args.Amount), args.Asset, colorfmt.CyanString("%s", args.Holder))
	}

	return nil
}
