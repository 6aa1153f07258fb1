package storage

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/make-os/dao/storage/common"
	"github.com/make-os/dao/storage/types"
	"github.com/pkg/errors"
)

// ErrRecordNotFound indicates that a record was not found
var ErrRecordNotFound = common.ErrRecordNotFound

// Badger implements types.Engine. It provides
// storage functions built on top of badger.
type Badger struct {
	*Tx
	db *badger.DB
}

// NewBadger creates an instance of Badger storage engine.
func NewBadger() *Badger {
	return &Badger{}
}

// Init opens the database at dir.
// If dir is empty, an in-memory database is opened.
func (b *Badger) Init(dir string) error {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = &common.NoopLogger{}

	db, err := badger.Open(opts)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	b.db = db

	// The default transaction commits after every successful write
	// and renews itself after each operation.
	b.Tx = NewTx(db, true, true)

	return nil
}

// NewTx creates a new transaction
func (b *Badger) NewTx(autoFinish, renew bool) types.Tx {
	return NewTx(b.db, autoFinish, renew)
}

// Close closes the database engine and frees resources
func (b *Badger) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
