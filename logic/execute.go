package logic

import (
	"fmt"

	"github.com/make-os/dao/logic/contracts"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/validation"
	"github.com/pkg/errors"
)

// ErrNoExecutor means no system contract accepts the transaction type
var ErrNoExecutor = fmt.Errorf("no executor found")

// ExecTx validates and executes a transaction.
// Validation errors are returned unchanged so that callers can
// match them against the types.Err* sentinels.
func (l *Logic) ExecTx(args *core.ExecArgs) error {

	validateTx := args.ValidateTx
	if validateTx == nil {
		validateTx = validation.ValidateTx
	}

	// Validate the transaction
	if err := validateTx(args.Tx, -1, l); err != nil {
		return err
	}

	sysContracts := args.SystemContract
	if len(sysContracts) == 0 {
		sysContracts = contracts.SystemContracts
	}

	// Find a contract that can execute the transaction
	for _, contract := range sysContracts {
		if !contract.CanExec(args.Tx.GetType()) {
			continue
		}

		// Initialize the contract and execute the transaction
		if err := contract.Init(l, args.Tx).Exec(); err != nil {
			return errors.WithMessage(err, "failed to execute tx")
		}

		return nil
	}

	return errors.Wrap(ErrNoExecutor, "failed to execute tx")
}
