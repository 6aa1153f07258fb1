package storage

import (
	"sync"

	"github.com/dgraph-io/badger/v2"
	"github.com/make-os/dao/storage/common"
	"github.com/pkg/errors"
)

// Tx implements types.Tx
type Tx struct {
	mtx sync.Mutex

	// db is the badger database
	db *badger.DB

	// tx is the badger transaction
	tx *badger.Txn

	// finish determines whether commit is automatically called
	// after a successful write
	finish bool

	// renew determines whether the tx is renewed after
	// each operation
	renew bool
}

// NewTx returns an instance of Tx
func NewTx(db *badger.DB, finish, renew bool) *Tx {
	return &Tx{db: db, tx: db.NewTransaction(true), finish: finish, renew: renew}
}

// GetTx returns the underlying transaction
func (t *Tx) GetTx() *badger.Txn {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.tx
}

// CanFinish checks whether the transaction is committed after
// every successful write.
func (t *Tx) CanFinish() bool {
	return t.finish
}

// Commit commits the transaction
func (t *Tx) Commit() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.tx.Commit()
}

// Discard discards the transaction
func (t *Tx) Discard() {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.tx.Discard()
}

// RenewTx forcefully starts a new underlying transaction.
// The previous one is discarded.
func (t *Tx) RenewTx() {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.tx.Discard()
	t.tx = t.db.NewTransaction(true)
}

// renewTx starts a new underlying transaction if auto finish and
// renew are enabled. Caller must hold mtx.
func (t *Tx) renewTx() {
	if t.finish && t.renew {
		t.tx.Discard()
		t.tx = t.db.NewTransaction(true)
	}
}

// commit commits the transaction if auto finish is enabled.
// Caller must hold mtx.
func (t *Tx) commit() error {
	if t.finish {
		return t.tx.Commit()
	}
	return nil
}

// Put adds a record to the database.
// It discards the transaction if an error occurred.
func (t *Tx) Put(record *common.Record) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.renewTx()
	if err := t.tx.Set(record.GetKey(), record.Value); err != nil {
		t.tx.Discard()
		return err
	}
	return t.commit()
}

// Get a record by key
func (t *Tx) Get(key []byte) (*common.Record, error) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.renewTx()

	item, err := t.tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read value")
	}

	return common.NewFromKeyValue(key, val), nil
}

// Del deletes a record by key
func (t *Tx) Del(key []byte) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.renewTx()
	if err := t.tx.Delete(key); err != nil {
		t.tx.Discard()
		return err
	}
	return t.commit()
}

// Iterate finds a set of records by prefix and passes them to iterFunc
// for further processing.
//
// If iterFunc returns true, the iterator is stopped and immediately released.
//
// If first is set to true, it begins from the first record, otherwise,
// it will begin from the last record
func (t *Tx) Iterate(prefix []byte, first bool, iterFunc func(rec *common.Record) bool) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.renewTx()

	opts := badger.DefaultIteratorOptions
	opts.Reverse = !first
	opts.Prefix = prefix

	it := t.tx.NewIterator(opts)

	var seekKey = append([]byte{}, prefix...)
	if opts.Reverse {
		seekKey = append(seekKey, 0xFF)
	}

	for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		k := item.KeyCopy(nil)
		v, _ := item.ValueCopy(nil)
		if iterFunc(common.NewFromKeyValue(k, v)) {
			break
		}
	}
	it.Close()
}
