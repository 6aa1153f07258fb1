package params

var (
	// DefaultGovAsset is the default governance asset identifier
	DefaultGovAsset = "gov"

	// DefaultPayAsset is the default payable asset identifier
	DefaultPayAsset = "pay"

	// DefaultQuorum is the default weight that up or down votes must exceed
	DefaultQuorum = "500000000000000000000001"

	// DefaultTreasury is the default treasury principal
	DefaultTreasury = "0x00000000000000000000000000000000000da0da"

	// ProposalCacheSize is the number of proposals kept in the read cache
	ProposalCacheSize = 1000

	// MaxProposalNameLen is the maximum number of characters in a proposal name
	MaxProposalNameLen = 256

	// MaxProposalDescLen is the maximum number of characters in a proposal description
	MaxProposalDescLen = 10000

	// MaxAmountLen is the maximum number of characters in an amount or quorum
	MaxAmountLen = 100

	// EventBusCapacity is the channel capacity of event bus subscriptions
	EventBusCapacity uint = 100
)
