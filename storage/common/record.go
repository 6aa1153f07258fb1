package common

import (
	"bytes"
	"fmt"

	"github.com/make-os/dao/util"
)

// ErrRecordNotFound indicates that a record was not found
var ErrRecordNotFound = fmt.Errorf("record not found")

const (
	// KeyPrefixSeparator is used to separate prefix and key
	KeyPrefixSeparator = ";"
	prefixSeparator    = ":"
)

// Record represents an item in the database
type Record struct {
	Key    []byte `json:"key"`
	Value  []byte `json:"value"`
	Prefix []byte `json:"prefix"`
}

// IsEmpty checks whether the object is empty
func (r *Record) IsEmpty() bool {
	return len(r.Key) == 0 && len(r.Value) == 0
}

// Scan decodes the msgpack value into dest
func (r *Record) Scan(dest interface{}) error {
	return util.ToObject(r.Value, dest)
}

// GetKey creates and returns the key
func (r *Record) GetKey() []byte {
	return MakeKey(r.Key, r.Prefix)
}

// MakePrefix creates a prefix string
func MakePrefix(prefixes ...[]byte) (result []byte) {
	return bytes.Join(prefixes, []byte(prefixSeparator))
}

// SplitPrefix splits joined prefixes into their individual parts
func SplitPrefix(prefixes []byte) [][]byte {
	return bytes.Split(prefixes, []byte(prefixSeparator))
}

// MakeKey constructs a key from the key and prefixes
func MakeKey(key []byte, prefixes ...[]byte) []byte {
	var prefix = MakePrefix(prefixes...)
	var sep = []byte(KeyPrefixSeparator)
	if len(key) == 0 || len(prefix) == 0 {
		sep = []byte{}
	}
	return append(prefix, append(sep, key...)...)
}

// NewRecord creates a key value object.
// The prefixes are joined together and prepended to the key before insertion.
// Binary keys that may contain KeyPrefixSeparator must be passed whole,
// without prefixes.
func NewRecord(key, value []byte, prefixes ...[]byte) *Record {
	return &Record{Key: key, Value: value, Prefix: MakePrefix(prefixes...)}
}

// NewFromKeyValue takes a stored key and its value and creates a Record.
// The part before the first KeyPrefixSeparator is the prefix.
func NewFromKeyValue(key []byte, value []byte) *Record {
	var k, p []byte
	parts := bytes.SplitN(key, []byte(KeyPrefixSeparator), 2)
	if len(parts) == 2 {
		p, k = parts[0], parts[1]
	} else {
		k = parts[0]
	}
	return &Record{Key: k, Value: value, Prefix: p}
}
