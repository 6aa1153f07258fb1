package txns

import (
	"github.com/make-os/dao/util"
)

// TxFundTreasury implements BaseTx, it describes a transaction that
// credits the treasury with native currency or payable asset
type TxFundTreasury struct {
	*TxCommon `json:",flatten" msgpack:"-" mapstructure:"-"`
	*TxType   `json:",flatten" msgpack:"-" mapstructure:"-"`
	Asset     string      `json:"asset" msgpack:"asset" mapstructure:"asset"`
	Amount    util.String `json:"amount" msgpack:"amount" mapstructure:"amount"`
}

// NewBareTxFundTreasury returns an instance of TxFundTreasury with zero values
func NewBareTxFundTreasury() *TxFundTreasury {
	return &TxFundTreasury{
		TxCommon: NewBareTxCommon(),
		TxType:   &TxType{Type: TxTypeFundTreasury},
	}
}
