package dao

import (
	"github.com/make-os/dao/types"
)

// Receipt describes the outcome of an accepted operation
type Receipt struct {

	// ProposalID is the id of the proposal the operation created or
	// acted on. It is zero for treasury funding.
	ProposalID uint64 `json:"proposalId"`

	// Events are the events produced by the operation, in order
	Events []*types.EventRecord `json:"events"`
}

// Event returns the first event with the given topic or nil
func (r *Receipt) Event(topic string) types.Event {
	for _, rec := range r.Events {
		if rec.Name == topic {
			return rec.Event
		}
	}
	return nil
}
