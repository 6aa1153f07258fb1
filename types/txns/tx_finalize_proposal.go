package txns

// TxFinalizeProposal implements BaseTx, it describes a transaction for
// locking the outcome of a proposal
type TxFinalizeProposal struct {
	*TxCommon  `json:",flatten" msgpack:"-" mapstructure:"-"`
	*TxType    `json:",flatten" msgpack:"-" mapstructure:"-"`
	ProposalID uint64 `json:"id" msgpack:"id" mapstructure:"id"`
}

// NewBareTxFinalizeProposal returns an instance of TxFinalizeProposal with zero values
func NewBareTxFinalizeProposal() *TxFinalizeProposal {
	return &TxFinalizeProposal{
		TxCommon: NewBareTxCommon(),
		TxType:   &TxType{Type: TxTypeFinalizeProposal},
	}
}
