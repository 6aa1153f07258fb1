package core

import (
	"github.com/make-os/dao/types"
)

// SystemContract represents a system contract
type SystemContract interface {

	// Init initializes the contract
	// logic is the logic manager
	// tx is the transaction to execute.
	Init(logic Logic, tx types.BaseTx) SystemContract

	// CanExec checks whether the given tx type can be executed by the contract.
	CanExec(tx types.TxCode) bool

	// Exec executes the transaction
	Exec() error
}
