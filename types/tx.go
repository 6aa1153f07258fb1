package types

import (
	"github.com/make-os/dao/util/identifier"
)

// TxCode is used to identify transaction types
type TxCode int

// BaseTx describes a governance transaction
type BaseTx interface {
	GetType() TxCode
	Is(txType TxCode) bool
	GetSender() identifier.Address
	GetTimestamp() int64
}
