package dao

import (
	"sync"

	"github.com/make-os/dao/config"
	"github.com/make-os/dao/logic"
	"github.com/make-os/dao/params"
	"github.com/make-os/dao/pkgs/cache"
	"github.com/make-os/dao/pkgs/logger"
	storagetypes "github.com/make-os/dao/storage/types"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/types/txns"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/olebedev/emitter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Engine is the governance engine. It registers proposals, tallies
// token-weighted votes and disburses treasury funds to approved proposals.
// Mutating operations are serialized; queries may run concurrently.
type Engine struct {
	mtx       sync.RWMutex
	cfg       *config.AppConfig
	db        storagetypes.Engine
	gov       *state.GovConfig
	ledger    core.AssetLedger
	propCache *cache.Cache
	log       logger.Logger
	metrics   *metrics
}

// Open creates an engine on db using the governance parameters in cfg.
// The parameters are persisted on first open. A later open with different
// parameters fails with types.ErrConfigMismatch.
// promRegistry may be nil to disable metrics.
func Open(cfg *config.AppConfig, db storagetypes.Engine, promRegistry prometheus.Registerer) (*Engine, error) {
	e := &Engine{
		cfg:       cfg,
		db:        db,
		propCache: cache.NewCache(params.ProposalCacheSize),
		log:       cfg.G().Log.Module("dao"),
		metrics:   newMetrics(promRegistry),
	}

	gov := logic.GovConfigFromAppConfig(cfg)
	if err := checkGovConfig(gov); err != nil {
		return nil, err
	}

	l := logic.New(db, cfg, nil)
	defer l.Close()
	stored, err := l.SysKeeper().GetGovConfig()
	if err != nil {
		return nil, err
	}

	if stored == nil {
		if err = l.SysKeeper().SetGovConfig(gov); err != nil {
			return nil, err
		}
		e.log.Debug("Stored governance config", "quorum", gov.Quorum, "treasury", gov.Treasury)
	} else if !stored.Equal(gov) {
		return nil, errors.WithMessagef(types.ErrConfigMismatch,
			"stored quorum=%s govAsset=%s payAsset=%s treasury=%s",
			stored.Quorum, stored.GovAsset, stored.PayAsset, stored.Treasury)
	}

	e.gov = gov
	return e, nil
}

// checkGovConfig checks the governance parameters before they are used
func checkGovConfig(gov *state.GovConfig) error {
	switch {
	case gov.GovAsset == "":
		return errors.WithMessage(types.ErrInvalidArgument, "governance asset is required")
	case gov.PayAsset == "":
		return errors.WithMessage(types.ErrInvalidArgument, "payable asset is required")
	case gov.PayAsset == state.NativeAsset:
		return errors.WithMessagef(types.ErrInvalidArgument, "payable asset cannot be %q", state.NativeAsset)
	case gov.GovAsset == gov.PayAsset:
		return errors.WithMessage(types.ErrInvalidArgument, "governance and payable assets must differ")
	case gov.GovAsset == state.NativeAsset:
		return errors.WithMessagef(types.ErrInvalidArgument, "governance asset cannot be %q", state.NativeAsset)
	case !gov.Quorum.IsNumeric() || !gov.Quorum.IsDecimal() || gov.Quorum.Decimal().IsNegative():
		return errors.WithMessagef(types.ErrInvalidArgument, "quorum %q is not a non-negative number", gov.Quorum.SS())
	case gov.Treasury.IsNull():
		return errors.WithMessage(types.ErrInvalidArgument, "treasury cannot be the null principal")
	}
	return nil
}

// SetLedger makes the engine use an external asset ledger for balances,
// funding and disbursement instead of the built-in one.
// Writes to an external ledger are not rolled back with the engine's store.
func (e *Engine) SetLedger(ledger core.AssetLedger) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.ledger = ledger
}

func (e *Engine) prepare(l *logic.Logic) *logic.Logic {
	l.SetGovConfig(e.gov)
	if e.ledger != nil {
		l.SetLedger(e.ledger)
	}
	return l
}

// reader returns a Logic for queries
func (e *Engine) reader() *logic.Logic {
	return e.prepare(logic.New(e.db, e.cfg, e.propCache))
}

// exec validates and executes tx in one storage transaction.
// The transaction is committed only if execution succeeds.
// Events are published after commit.
func (e *Engine) exec(op string, tx types.BaseTx) ([]*types.EventRecord, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	l := e.prepare(logic.NewAtomic(e.db, e.cfg, e.propCache))
	defer l.Close()
	if err := l.ExecTx(&core.ExecArgs{Tx: tx}); err != nil {
		l.Discard()
		e.metrics.reject(err)
		if types.IsRejection(err) {
			e.log.Debug("Operation rejected", "op", op, "caller", tx.GetSender(),
				"code", types.ErrCode(err), "err", err.Error())
		} else {
			e.log.Error("Operation failed", "op", op, "caller", tx.GetSender(), "err", err.Error())
		}
		return nil, err
	}

	events := l.Events()
	if err := l.Commit(); err != nil {
		l.Discard()
		e.metrics.reject(err)
		e.log.Error("Failed to commit operation", "op", op, "err", err.Error())
		return nil, err
	}

	e.metrics.observe(events)
	for _, evt := range events {
		e.cfg.G().Bus.Emit(evt.Name, evt)
	}

	e.log.Debug("Operation accepted", "op", op, "caller", tx.GetSender(), "events", len(events))
	return events, nil
}

// CreateProposal creates a proposal to pay amount of the payable asset
// from the treasury to recipient. The caller must be an investor.
func (e *Engine) CreateProposal(
	caller identifier.Address,
	name, description string,
	amount util.String,
	recipient identifier.Address,
) (*Receipt, error) {
	tx := txns.NewBareTxCreateProposal()
	tx.Sender = caller
	tx.Name = name
	tx.Description = description
	tx.Amount = amount
	tx.Recipient = recipient

	events, err := e.exec("create", tx)
	if err != nil {
		return nil, err
	}

	rcpt := &Receipt{Events: events}
	if evt, ok := rcpt.Event(types.EvtNameProposalCreated).(*types.EvtProposalCreated); ok {
		rcpt.ProposalID = evt.ID
	}
	return rcpt, nil
}

// UpVote adds the caller's governance balance to the up tally of a proposal
func (e *Engine) UpVote(id uint64, caller identifier.Address) (*Receipt, error) {
	return e.vote(id, caller, txns.VoteUp)
}

// DownVote adds the caller's governance balance to the down tally of a proposal
func (e *Engine) DownVote(id uint64, caller identifier.Address) (*Receipt, error) {
	return e.vote(id, caller, txns.VoteDown)
}

func (e *Engine) vote(id uint64, caller identifier.Address, choice int) (*Receipt, error) {
	tx := txns.NewBareTxProposalVote()
	tx.Sender = caller
	tx.ProposalID = id
	tx.Vote = choice

	op := "upvote"
	if choice == txns.VoteDown {
		op = "downvote"
	}

	events, err := e.exec(op, tx)
	if err != nil {
		return nil, err
	}
	return &Receipt{ProposalID: id, Events: events}, nil
}

// FinalizeProposal locks the outcome of a proposal whose up or down
// tally exceeds the quorum. Approved proposals are paid immediately.
func (e *Engine) FinalizeProposal(id uint64, caller identifier.Address) (*Receipt, error) {
	tx := txns.NewBareTxFinalizeProposal()
	tx.Sender = caller
	tx.ProposalID = id

	events, err := e.exec("finalize", tx)
	if err != nil {
		return nil, err
	}
	return &Receipt{ProposalID: id, Events: events}, nil
}

// FundNative credits the treasury with amount of native currency
func (e *Engine) FundNative(funder identifier.Address, amount util.String) (*Receipt, error) {
	return e.fund(funder, state.NativeAsset, amount)
}

// FundPayable credits the treasury with amount of the payable asset
func (e *Engine) FundPayable(funder identifier.Address, amount util.String) (*Receipt, error) {
	return e.fund(funder, e.gov.PayAsset, amount)
}

func (e *Engine) fund(funder identifier.Address, asset string, amount util.String) (*Receipt, error) {
	tx := txns.NewBareTxFundTreasury()
	tx.Sender = funder
	tx.Asset = asset
	tx.Amount = amount

	events, err := e.exec("fund", tx)
	if err != nil {
		return nil, err
	}
	return &Receipt{Events: events}, nil
}

// Credit adds amount of asset to holder's balance on the ledger.
// It is used to seed investor and treasury balances and emits no event.
func (e *Engine) Credit(asset string, holder identifier.Address, amount util.String) error {
	if asset == "" {
		return errors.WithMessage(types.ErrInvalidArgument, "asset is required")
	}
	if holder.IsNull() {
		return errors.WithMessage(types.ErrInvalidArgument, "holder cannot be the null principal")
	}
	if !amount.IsNumeric() || !amount.IsDecimal() || !amount.Decimal().IsPositive() {
		return errors.WithMessagef(types.ErrInvalidArgument, "amount %q must be a positive number", amount.SS())
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	l := e.prepare(logic.NewAtomic(e.db, e.cfg, e.propCache))
	defer l.Close()
	if err := l.Ledger().Credit(asset, holder, amount); err != nil {
		l.Discard()
		return errors.Wrap(err, "failed to credit")
	}
	if err := l.Commit(); err != nil {
		l.Discard()
		return err
	}

	e.log.Debug("Credited balance", "asset", asset, "holder", holder, "amount", amount)
	return nil
}

// Subscribe returns a channel that receives the events published on
// topic after each committed operation. Use "*" for all topics.
// The event's first argument is the *types.EventRecord.
func (e *Engine) Subscribe(topic string) <-chan emitter.Event {
	return e.cfg.G().Bus.On(topic)
}

// Unsubscribe closes a channel returned by Subscribe
func (e *Engine) Unsubscribe(topic string, ch <-chan emitter.Event) {
	e.cfg.G().Bus.Off(topic, ch)
}
