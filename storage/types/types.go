package types

import (
	"github.com/make-os/dao/storage/common"
)

// Engine describes a storage engine
type Engine interface {
	Operations

	// Init opens the storage engine. If dir is empty,
	// the database is kept in memory.
	Init(dir string) error

	// NewTx creates a new transaction.
	// autoFinish: commit the underlying transaction after each
	// successful write.
	// renew: start a fresh underlying transaction after each
	// operation. Requires autoFinish to be enabled.
	NewTx(autoFinish, renew bool) Tx

	// Close closes the database engine and frees resources
	Close() error
}

// Operations describe the record operations of a transaction
type Operations interface {

	// Put adds a record to the database.
	// It discards the transaction if an error occurred.
	Put(record *common.Record) error

	// Get a record by key
	Get(key []byte) (*common.Record, error)

	// Del deletes a record by key
	Del(key []byte) error

	// Iterate finds a set of records by prefix and passes them to iterFunc.
	// If iterFunc returns true, the iteration stops.
	// If first is true, iteration begins from the first record, otherwise
	// it begins from the last record.
	Iterate(prefix []byte, first bool, iterFunc func(rec *common.Record) bool)
}

// Tx describes a transaction
type Tx interface {
	Operations

	// CanFinish checks whether the transaction is committed after
	// every successful write.
	CanFinish() bool

	// Commit commits the transaction
	Commit() error

	// Discard discards the transaction
	Discard()

	// RenewTx forcefully starts a new underlying transaction
	RenewTx()
}
