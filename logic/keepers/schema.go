package keepers

import (
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
)

const (
	// Separator separates prefixes
	Separator = ":"
	// TagProposal is the prefix for proposal data
	TagProposal = "p"
	// TagProposalCount is the key of the proposal counter
	TagProposalCount = "pc"
	// TagVote is the prefix for vote records
	TagVote = "v"
	// TagBalance is the prefix for ledger balances
	TagBalance = "b"
	// TagEvent is the prefix for sequenced events
	TagEvent = "e"
	// TagEventSeq is the key of the last event sequence number
	TagEventSeq = "es"
	// TagGovConfig is the key of the governance config
	TagGovConfig = "cfg"
)

// MakeProposalKey creates a key for storing a proposal
func MakeProposalKey(id uint64) []byte {
	return append([]byte(TagProposal+Separator), util.EncodeNumber(id)...)
}

// MakeProposalCountKey creates the key of the proposal counter
func MakeProposalCountKey() []byte {
	return []byte(TagProposalCount)
}

// MakeVoteKey creates a key for storing the vote of a voter on a proposal
func MakeVoteKey(id uint64, voter identifier.Address) []byte {
	key := append([]byte(TagVote+Separator), util.EncodeNumber(id)...)
	return append(key, []byte(Separator+voter.String())...)
}

// MakeBalanceKey creates a key for storing the balance of a holder in an asset.
// The asset is length-prefixed so that no asset/holder pair shares a key with another.
func MakeBalanceKey(asset string, holder identifier.Address) []byte {
	key := append([]byte(TagBalance+Separator), util.EncodeNumber(uint64(len(asset)))...)
	key = append(key, []byte(asset+Separator)...)
	return append(key, []byte(holder.String())...)
}

// MakeEventKey creates a key for storing an event
func MakeEventKey(seq uint64) []byte {
	return append([]byte(TagEvent+Separator), util.EncodeNumber(seq)...)
}

// MakeQueryKeyEvents creates a key for iterating all events
func MakeQueryKeyEvents() []byte {
	return []byte(TagEvent + Separator)
}

// MakeEventSeqKey creates the key of the last event sequence number
func MakeEventSeqKey() []byte {
	return []byte(TagEventSeq)
}

// MakeGovConfigKey creates the key of the governance config
func MakeGovConfigKey() []byte {
	return []byte(TagGovConfig)
}
