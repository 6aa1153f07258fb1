package txns

import (
	"time"

	"github.com/make-os/dao/types"
	"github.com/make-os/dao/util/identifier"
)

// Transaction types
const (
	TxTypeCreateProposal types.TxCode = iota + 1
	TxTypeProposalVote
	TxTypeFinalizeProposal
	TxTypeFundTreasury
)

// Vote choices
const (
	VoteUp   = 1
	VoteDown = -1
)

// TxType implements some of BaseTx, it includes type information about a transaction
type TxType struct {
	Type types.TxCode `json:"type" msgpack:"type" mapstructure:"type"`
}

// GetType returns the type of the transaction
func (tx *TxType) GetType() types.TxCode {
	return tx.Type
}

// Is checks if the tx is a given type
func (tx *TxType) Is(txType types.TxCode) bool {
	return tx.Type == txType
}

// TxCommon implements some of BaseTx, it includes the fields
// shared by all governance transactions
type TxCommon struct {
	Sender    identifier.Address `json:"sender" msgpack:"sender" mapstructure:"sender"`
	Timestamp int64              `json:"timestamp" msgpack:"timestamp" mapstructure:"timestamp"`
}

// NewBareTxCommon returns an instance of TxCommon with the current time
func NewBareTxCommon() *TxCommon {
	return &TxCommon{Timestamp: time.Now().Unix()}
}

// NewTxCommon returns an instance of TxCommon for the given sender
func NewTxCommon(sender identifier.Address) *TxCommon {
	c := NewBareTxCommon()
	c.Sender = sender
	return c
}

// GetSender returns the principal that sent the transaction
func (tx *TxCommon) GetSender() identifier.Address {
	return tx.Sender
}

// GetTimestamp returns the unix time the transaction was created
func (tx *TxCommon) GetTimestamp() int64 {
	return tx.Timestamp
}
