package logic

import (
	"github.com/make-os/dao/config"
	"github.com/make-os/dao/logic/keepers"
	"github.com/make-os/dao/pkgs/cache"
	storagetypes "github.com/make-os/dao/storage/types"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/pkg/errors"
)

// Logic is the central point for defining and accessing
// and modifying different type of state.
type Logic struct {
	// cfg is the application's config
	cfg *config.AppConfig

	// db is the db handle for transaction-centric operations.
	db storagetypes.Tx

	// gov is the active governance config
	gov *state.GovConfig

	// ledger is an external asset ledger; nil means the built-in ledger is used
	ledger core.AssetLedger

	// proposalKeeper provides functionalities for managing proposals
	proposalKeeper *keepers.ProposalKeeper

	// voteKeeper provides functionalities for managing vote records
	voteKeeper *keepers.VoteKeeper

	// balanceKeeper is the built-in asset ledger
	balanceKeeper *keepers.BalanceKeeper

	// systemKeeper provides functionalities for managing system data
	systemKeeper *keepers.SystemKeeper

	// eventKeeper provides functionalities for managing sequenced events
	eventKeeper *keepers.EventKeeper

	// events holds events added since the last commit
	events []*types.EventRecord
}

// New creates an instance of Logic whose operations are committed instantly.
// propCache may be nil.
func New(db storagetypes.Engine, cfg *config.AppConfig, propCache *cache.Cache) *Logic {
	return newLogicWithTx(db.NewTx(true, true), cfg, propCache)
}

// NewAtomic creates an instance of Logic that supports atomic operations across
// all keepers. Changes are persisted only when Commit is called.
// propCache may be nil.
func NewAtomic(db storagetypes.Engine, cfg *config.AppConfig, propCache *cache.Cache) *Logic {
	return newLogicWithTx(db.NewTx(false, false), cfg, propCache)
}

func newLogicWithTx(dbTx storagetypes.Tx, cfg *config.AppConfig, propCache *cache.Cache) *Logic {
	l := &Logic{cfg: cfg, db: dbTx}
	l.proposalKeeper = keepers.NewProposalKeeper(dbTx, propCache)
	l.voteKeeper = keepers.NewVoteKeeper(dbTx)
	l.balanceKeeper = keepers.NewBalanceKeeper(dbTx)
	l.systemKeeper = keepers.NewSystemKeeper(dbTx)
	l.eventKeeper = keepers.NewEventKeeper(dbTx)
	return l
}

// GovConfigFromAppConfig converts the governance section of the
// application config to a GovConfig
func GovConfigFromAppConfig(cfg *config.AppConfig) *state.GovConfig {
	if cfg == nil || cfg.Gov == nil {
		return &state.GovConfig{}
	}
	return &state.GovConfig{
		GovAsset: cfg.Gov.GovAsset,
		PayAsset: cfg.Gov.PayAsset,
		Quorum:   util.String(cfg.Gov.Quorum),
		Treasury: identifier.Address(cfg.Gov.Treasury),
	}
}

// SetGovConfig sets the active governance config
func (l *Logic) SetGovConfig(gov *state.GovConfig) {
	l.gov = gov
}

// GovConfig returns the active governance config.
// If none was set, the stored config is used, falling back
// to the application config.
func (l *Logic) GovConfig() *state.GovConfig {
	if l.gov != nil {
		return l.gov
	}
	if stored, err := l.systemKeeper.GetGovConfig(); err == nil && stored != nil {
		l.gov = stored
		return l.gov
	}
	l.gov = GovConfigFromAppConfig(l.cfg)
	return l.gov
}

// SetLedger sets an external asset ledger
func (l *Logic) SetLedger(ledger core.AssetLedger) {
	l.ledger = ledger
}

// Ledger returns the asset ledger. The built-in ledger is
// returned when no external ledger was set.
func (l *Logic) Ledger() core.AssetLedger {
	if l.ledger != nil {
		return l.ledger
	}
	return l.balanceKeeper
}

// AddEvent persists evt in the event log and buffers it
// for delivery after the transaction is committed
func (l *Logic) AddEvent(evt types.Event) error {
	rec, err := l.eventKeeper.Append(evt)
	if err != nil {
		return err
	}
	l.events = append(l.events, rec)
	return nil
}

// Events returns the events added since the last commit or discard
func (l *Logic) Events() []*types.EventRecord {
	return l.events
}

// Commit the database transaction and renew it.
// Buffered events are cleared.
func (l *Logic) Commit() error {
	if err := l.db.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	l.db.RenewTx()
	l.events = nil
	return nil
}

// Discard the underlying transaction and renew it.
// Buffered events are dropped.
func (l *Logic) Discard() {
	l.db.Discard()
	l.db.RenewTx()
	l.events = nil
}

// Close releases the underlying transaction without committing it.
// The Logic must not be used afterwards.
func (l *Logic) Close() {
	l.db.Discard()
	l.events = nil
}

// ProposalKeeper returns the proposal keeper
func (l *Logic) ProposalKeeper() core.ProposalKeeper {
	return l.proposalKeeper
}

// VoteKeeper returns the vote keeper
func (l *Logic) VoteKeeper() core.VoteKeeper {
	return l.voteKeeper
}

// BalanceKeeper returns the built-in ledger
func (l *Logic) BalanceKeeper() core.BalanceKeeper {
	return l.balanceKeeper
}

// SysKeeper returns the system keeper
func (l *Logic) SysKeeper() core.SystemKeeper {
	return l.systemKeeper
}

// EventKeeper returns the event keeper
func (l *Logic) EventKeeper() core.EventKeeper {
	return l.eventKeeper
}
