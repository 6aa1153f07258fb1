package txns

// TxProposalVote implements BaseTx, it describes a transaction for
// voting on a proposal
type TxProposalVote struct {
	*TxCommon  `json:",flatten" msgpack:"-" mapstructure:"-"`
	*TxType    `json:",flatten" msgpack:"-" mapstructure:"-"`
	ProposalID uint64 `json:"id" msgpack:"id" mapstructure:"id"`
	Vote       int    `json:"vote" msgpack:"vote" mapstructure:"vote"`
}

// NewBareTxProposalVote returns an instance of TxProposalVote with zero values
func NewBareTxProposalVote() *TxProposalVote {
	return &TxProposalVote{
		TxCommon: NewBareTxCommon(),
		TxType:   &TxType{Type: TxTypeProposalVote},
	}
}

// IsUp checks whether the vote is an up-vote
func (tx *TxProposalVote) IsUp() bool {
	return tx.Vote == VoteUp
}
