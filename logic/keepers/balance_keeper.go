package keepers

import (
	"fmt"

	"github.com/make-os/dao/storage/common"
	storagetypes "github.com/make-os/dao/storage/types"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientBalance means the sender of a transfer holds less than the amount
	ErrInsufficientBalance = fmt.Errorf("insufficient balance")

	// ErrNonPositiveAmount means a transfer or credit amount is zero or negative
	ErrNonPositiveAmount = fmt.Errorf("amount must be greater than zero")
)

// BalanceKeeper is the built-in asset ledger.
// Balances are stored as decimal strings keyed by asset and holder.
type BalanceKeeper struct {
	db storagetypes.Tx
}

// NewBalanceKeeper creates an instance of BalanceKeeper
func NewBalanceKeeper(db storagetypes.Tx) *BalanceKeeper {
	return &BalanceKeeper{db: db}
}

// BalanceOf returns the balance of holder in asset
func (k *BalanceKeeper) BalanceOf(asset string, holder identifier.Address) (util.String, error) {
	rec, err := k.db.Get(MakeBalanceKey(asset, holder))
	if err != nil {
		if err == common.ErrRecordNotFound {
			return "0", nil
		}
		return "", errors.Wrap(err, "failed to get balance")
	}
	return util.String(rec.Value), nil
}

func (k *BalanceKeeper) setBalance(asset string, holder identifier.Address, bal decimal.Decimal) error {
	rec := common.NewRecord(MakeBalanceKey(asset, holder), []byte(bal.String()))
	if err := k.db.Put(rec); err != nil {
		return errors.Wrap(err, "failed to save balance")
	}
	return nil
}

func parseAmount(amount util.String) (decimal.Decimal, error) {
	if !amount.IsNumeric() || !amount.IsDecimal() {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amount)
	}
	amt := amount.Decimal()
	if !amt.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	return amt, nil
}

// Transfer moves amount of asset from one holder to another.
// It fails with ErrInsufficientBalance if from does not hold enough.
func (k *BalanceKeeper) Transfer(asset string, from, to identifier.Address, amount util.String) error {
	amt, err := parseAmount(amount)
	if err != nil {
		return err
	}

	fromBal, err := k.BalanceOf(asset, from)
	if err != nil {
		return err
	}
	if fromBal.Decimal().LessThan(amt) {
		return ErrInsufficientBalance
	}

	if err = k.setBalance(asset, from, fromBal.Decimal().Sub(amt)); err != nil {
		return err
	}

	toBal, err := k.BalanceOf(asset, to)
	if err != nil {
		return err
	}

	return k.setBalance(asset, to, toBal.Decimal().Add(amt))
}

// Credit adds amount of asset to the holder's balance
func (k *BalanceKeeper) Credit(asset string, to identifier.Address, amount util.String) error {
	amt, err := parseAmount(amount)
	if err != nil {
		return err
	}
	bal, err := k.BalanceOf(asset, to)
	if err != nil {
		return err
	}
	return k.setBalance(asset, to, bal.Decimal().Add(amt))
}
