package types

import (
	"fmt"

	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
)

// Event topics
const (
	EvtNameProposalCreated = "proposal.created"
	EvtNameUpVote          = "proposal.upvote"
	EvtNameDownVote        = "proposal.downvote"
	EvtNameFinalize        = "proposal.finalized"
	EvtNameTreasuryFunded  = "treasury.funded"
)

// Event describes an outbound governance event
type Event interface {
	Topic() string
}

// EvtProposalCreated is emitted when a proposal is created
type EvtProposalCreated struct {
	ID        uint64             `json:"id" msgpack:"id"`
	Amount    util.String        `json:"amount" msgpack:"amount"`
	Recipient identifier.Address `json:"recipient" msgpack:"recipient"`
	Creator   identifier.Address `json:"creator" msgpack:"creator"`
}

func (e *EvtProposalCreated) Topic() string { return EvtNameProposalCreated }

// EvtUpVote is emitted when an investor up-votes a proposal
type EvtUpVote struct {
	ID    uint64             `json:"id" msgpack:"id"`
	Voter identifier.Address `json:"voter" msgpack:"voter"`
}

func (e *EvtUpVote) Topic() string { return EvtNameUpVote }

// EvtDownVote is emitted when an investor down-votes a proposal
type EvtDownVote struct {
	ID    uint64             `json:"id" msgpack:"id"`
	Voter identifier.Address `json:"voter" msgpack:"voter"`
}

func (e *EvtDownVote) Topic() string { return EvtNameDownVote }

// EvtFinalize is emitted when a proposal is finalized
type EvtFinalize struct {
	ID       uint64 `json:"id" msgpack:"id"`
	Approved bool   `json:"approved" msgpack:"approved"`
}

func (e *EvtFinalize) Topic() string { return EvtNameFinalize }

// EvtTreasuryFunded is emitted when the treasury is credited
type EvtTreasuryFunded struct {
	Funder identifier.Address `json:"funder" msgpack:"funder"`
	Asset  string             `json:"asset" msgpack:"asset"`
	Amount util.String        `json:"amount" msgpack:"amount"`
}

func (e *EvtTreasuryFunded) Topic() string { return EvtNameTreasuryFunded }

// EventRecord is a sequenced event as persisted for polling
type EventRecord struct {
	Seq   uint64 `json:"seq" msgpack:"seq"`
	Name  string `json:"topic" msgpack:"topic"`
	Data  []byte `json:"data" msgpack:"data"`
	Event Event  `json:"event" msgpack:"-"`
}

// NewEventRecord creates an EventRecord from an event
func NewEventRecord(seq uint64, evt Event) *EventRecord {
	return &EventRecord{Seq: seq, Name: evt.Topic(), Data: util.ToBytes(evt), Event: evt}
}

// DecodeEvent decodes Data into the typed event matching the topic
func (r *EventRecord) DecodeEvent() (Event, error) {
	var evt Event
	switch r.Name {
	case EvtNameProposalCreated:
		evt = &EvtProposalCreated{}
	case EvtNameUpVote:
		evt = &EvtUpVote{}
	case EvtNameDownVote:
		evt = &EvtDownVote{}
	case EvtNameFinalize:
		evt = &EvtFinalize{}
	case EvtNameTreasuryFunded:
		evt = &EvtTreasuryFunded{}
	default:
		return nil, fmt.Errorf("unknown event topic: %s", r.Name)
	}
	if err := util.ToObject(r.Data, evt); err != nil {
		return nil, err
	}
	r.Event = evt
	return evt, nil
}
