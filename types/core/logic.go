package core

import (
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/state"
)

// Logic provides an interface for executing governance operations
// and accessing the state through one storage transaction
type Logic interface {
	Keepers

	// Ledger returns the asset ledger used for balances and disbursement
	Ledger() AssetLedger

	// GovConfig returns the active governance config
	GovConfig() *state.GovConfig

	// AddEvent persists evt and buffers it for delivery after commit
	AddEvent(evt types.Event) error

	// ExecTx validates and executes a transaction
	ExecTx(args *ExecArgs) error
}

// ExecArgs contains arguments for Logic.ExecTx
type ExecArgs struct {
	Tx             types.BaseTx
	ValidateTx     ValidateTxFunc
	SystemContract []SystemContract
}

// ValidateTxFunc represents a function for validating a transaction
type ValidateTxFunc func(tx types.BaseTx, index int, logic Logic) error
