package state

import (
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/vmihailenco/msgpack/v4"
)

// Proposal status text
const (
	ProposalStatusApproved   = "Approved"
	ProposalStatusRejected   = "Rejected"
	ProposalStatusInProgress = "In Progress"
)

// Proposal describes a request to disburse payable asset from the treasury
type Proposal struct {
	util.SerializerHelper `json:"-" msgpack:"-" mapstructure:"-"`
	ID                    uint64             `json:"id" mapstructure:"id" msgpack:"id"`
	Name                  string             `json:"name" mapstructure:"name" msgpack:"name"`
	Description           string             `json:"description" mapstructure:"description" msgpack:"description"`
	Amount                util.String        `json:"amount" mapstructure:"amount" msgpack:"amount"`
	Recipient             identifier.Address `json:"recipient" mapstructure:"recipient" msgpack:"recipient"`
	Creator               identifier.Address `json:"creator" mapstructure:"creator" msgpack:"creator"`
	UpVotes               util.String        `json:"upVotes" mapstructure:"upVotes" msgpack:"upVotes"`
	DownVotes             util.String        `json:"downVotes" mapstructure:"downVotes" msgpack:"downVotes"`
	Finalized             bool               `json:"finalized" mapstructure:"finalized" msgpack:"finalized"`
	Approved              bool               `json:"approved" mapstructure:"approved" msgpack:"approved"`
	CreatedAt             int64              `json:"createdAt" mapstructure:"createdAt" msgpack:"createdAt"`
}

// BareProposal returns a Proposal object with zero tallies
func BareProposal() *Proposal {
	return &Proposal{
		Amount:    "0",
		UpVotes:   "0",
		DownVotes: "0",
	}
}

// IsFinalized checks whether the proposal outcome has been locked
func (p *Proposal) IsFinalized() bool {
	return p.Finalized
}

// Status returns a display text for the proposal's state
func (p *Proposal) Status() string {
	if !p.Finalized {
		return ProposalStatusInProgress
	}
	if p.Approved {
		return ProposalStatusApproved
	}
	return ProposalStatusRejected
}

// EncodeMsgpack implements msgpack.CustomEncoder
func (p *Proposal) EncodeMsgpack(enc *msgpack.Encoder) error {
	return p.EncodeMulti(enc,
		p.ID,
		p.Name,
		p.Description,
		p.Amount,
		p.Recipient,
		p.Creator,
		p.UpVotes,
		p.DownVotes,
		p.Finalized,
		p.Approved,
		p.CreatedAt)
}

// DecodeMsgpack implements msgpack.CustomDecoder
func (p *Proposal) DecodeMsgpack(dec *msgpack.Decoder) error {
	return p.DecodeMulti(dec,
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Amount,
		&p.Recipient,
		&p.Creator,
		&p.UpVotes,
		&p.DownVotes,
		&p.Finalized,
		&p.Approved,
		&p.CreatedAt)
}

// Bytes returns the serialized proposal
func (p *Proposal) Bytes() []byte {
	return util.ToBytes(p)
}

// NewProposalFromBytes decodes bz to Proposal
func NewProposalFromBytes(bz []byte) (*Proposal, error) {
	var p = BareProposal()
	if err := util.ToObject(bz, p); err != nil {
		return nil, err
	}
	return p, nil
}
