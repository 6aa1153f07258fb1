package core

import (
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
)

// BalanceOracle provides the balance of a holder in an asset
// at the current instant
type BalanceOracle interface {

	// BalanceOf returns the balance of holder in asset.
	// Unknown holders have a zero balance.
	BalanceOf(asset string, holder identifier.Address) (util.String, error)
}

// AssetLedger is a BalanceOracle that can move and mint balances
type AssetLedger interface {
	BalanceOracle

	// Transfer moves amount of asset from one holder to another.
	// It fails if from does not hold enough.
	Transfer(asset string, from, to identifier.Address, amount util.String) error

	// Credit adds amount of asset to the holder's balance
	Credit(asset string, to identifier.Address, amount util.String) error
}
