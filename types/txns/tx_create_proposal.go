package txns

import (
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
)

// TxCreateProposal implements BaseTx, it describes a transaction for
// creating a funding proposal
type TxCreateProposal struct {
	*TxCommon   `json:",flatten" msgpack:"-" mapstructure:"-"`
	*TxType     `json:",flatten" msgpack:"-" mapstructure:"-"`
	Name        string             `json:"name" msgpack:"name" mapstructure:"name"`
	Description string             `json:"description" msgpack:"description" mapstructure:"description"`
	Amount      util.String        `json:"amount" msgpack:"amount" mapstructure:"amount"`
	Recipient   identifier.Address `json:"recipient" msgpack:"recipient" mapstructure:"recipient"`
}

// NewBareTxCreateProposal returns an instance of TxCreateProposal with zero values
func NewBareTxCreateProposal() *TxCreateProposal {
	return &TxCreateProposal{
		TxCommon: NewBareTxCommon(),
		TxType:   &TxType{Type: TxTypeCreateProposal},
	}
}
