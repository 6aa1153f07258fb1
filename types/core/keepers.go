package core

import (
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util/identifier"
)

// ProposalKeeper describes an interface for accessing proposals
type ProposalKeeper interface {

	// Add assigns the next sequential id to the proposal and stores it
	Add(p *state.Proposal) (uint64, error)

	// Get returns a proposal by id.
	// Returns types.ErrProposalNotFound if unknown.
	Get(id uint64) (*state.Proposal, error)

	// Update stores an existing proposal
	Update(p *state.Proposal) error

	// Count returns the number of proposals
	Count() (uint64, error)
}

// VoteKeeper describes an interface for accessing vote records
type VoteKeeper interface {

	// Get returns the vote record of voter on the proposal.
	// It returns nil if the voter has not voted.
	Get(id uint64, voter identifier.Address) (*state.VoteRecord, error)

	// Save stores the vote record of voter on the proposal
	Save(id uint64, voter identifier.Address, rec *state.VoteRecord) error
}

// BalanceKeeper describes the built-in asset ledger
type BalanceKeeper interface {
	AssetLedger
}

// SystemKeeper describes an interface for accessing system data
type SystemKeeper interface {

	// GetGovConfig returns the stored governance config or nil if not set
	GetGovConfig() (*state.GovConfig, error)

	// SetGovConfig stores the governance config
	SetGovConfig(cfg *state.GovConfig) error
}

// EventKeeper describes an interface for storing sequenced events
type EventKeeper interface {

	// Append stores evt under the next sequence number
	Append(evt types.Event) (*types.EventRecord, error)

	// Since returns events with a sequence number greater than seq,
	// in ascending order
	Since(seq uint64) ([]*types.EventRecord, error)

	// LastSeq returns the sequence number of the last stored event
	LastSeq() (uint64, error)
}

// Keepers describes modules for accessing the state and storage
type Keepers interface {

	// ProposalKeeper manages proposals
	ProposalKeeper() ProposalKeeper

	// VoteKeeper manages vote records
	VoteKeeper() VoteKeeper

	// BalanceKeeper manages the built-in ledger
	BalanceKeeper() BalanceKeeper

	// SysKeeper manages system state
	SysKeeper() SystemKeeper

	// EventKeeper manages sequenced events
	EventKeeper() EventKeeper
}
