package logic_test

import (
	"fmt"
	"os"

	"github.com/golang/mock/gomock"
	"github.com/make-os/dao/config"
	logic2 "github.com/make-os/dao/logic"
	"github.com/make-os/dao/mocks"
	"github.com/make-os/dao/storage"
	"github.com/make-os/dao/testutil"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/types/txns"
	"github.com/make-os/dao/util/identifier"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logic", func() {
	var appDB *storage.Badger
	var err error
	var cfg *config.AppConfig
	var ctrl *gomock.Controller
	var investor = identifier.Address("0xinvestor")

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		cfg, err = testutil.SetTestCfg()
		Expect(err).To(BeNil())
		appDB = testutil.GetDB(cfg)
	})

	AfterEach(func() {
		ctrl.Finish()
		Expect(appDB.Close()).To(BeNil())
		err = os.RemoveAll(cfg.DataDir())
		Expect(err).To(BeNil())
	})

	Describe(".GovConfig", func() {
		It("should fall back to the application config", func() {
			logic := logic2.New(appDB, cfg, nil)
			gov := logic.GovConfig()
			Expect(gov.GovAsset).To(Equal(testutil.GovAsset))
			Expect(gov.PayAsset).To(Equal(testutil.PayAsset))
			Expect(gov.Quorum.String()).To(Equal(testutil.Quorum))
			Expect(gov.Treasury.String()).To(Equal(testutil.Treasury))
		})

		It("should prefer the stored config", func() {
			logic := logic2.New(appDB, cfg, nil)
			stored := &state.GovConfig{GovAsset: "g2", PayAsset: "p2", Quorum: "10", Treasury: "0xt"}
			Expect(logic.SysKeeper().SetGovConfig(stored)).To(BeNil())
			Expect(logic2.New(appDB, cfg, nil).GovConfig().GovAsset).To(Equal("g2"))
		})

		It("should return the config set with SetGovConfig", func() {
			logic := logic2.New(appDB, cfg, nil)
			logic.SetGovConfig(&state.GovConfig{GovAsset: "x"})
			Expect(logic.GovConfig().GovAsset).To(Equal("x"))
		})
	})

	Describe(".Ledger", func() {
		It("should return the built-in ledger by default", func() {
			logic := logic2.New(appDB, cfg, nil)
			Expect(logic.Ledger()).To(Equal(logic.BalanceKeeper()))
		})

		It("should return the external ledger when set", func() {
			logic := logic2.New(appDB, cfg, nil)
			ledger := mocks.NewMockAssetLedger(ctrl)
			logic.SetLedger(ledger)
			Expect(logic.Ledger()).To(Equal(ledger))
		})
	})

	Describe(".Commit and .Discard", func() {
		It("should persist writes only after commit", func() {
			atomic := logic2.NewAtomic(appDB, cfg, nil)
			Expect(atomic.Ledger().Credit("gov", investor, "10")).To(BeNil())
			Expect(atomic.AddEvent(&types.EvtTreasuryFunded{Funder: investor, Asset: "pay", Amount: "1"})).To(BeNil())
			Expect(atomic.Events()).To(HaveLen(1))

			bal, err := logic2.New(appDB, cfg, nil).Ledger().BalanceOf("gov", investor)
			Expect(err).To(BeNil())
			Expect(bal.String()).To(Equal("0"))

			Expect(atomic.Commit()).To(BeNil())
			Expect(atomic.Events()).To(BeEmpty())

			bal, err = logic2.New(appDB, cfg, nil).Ledger().BalanceOf("gov", investor)
			Expect(err).To(BeNil())
			Expect(bal.String()).To(Equal("10"))
		})

		It("should drop writes and buffered events on discard", func() {
			atomic := logic2.NewAtomic(appDB, cfg, nil)
			Expect(atomic.Ledger().Credit("gov", investor, "10")).To(BeNil())
			Expect(atomic.AddEvent(&types.EvtTreasuryFunded{Funder: investor, Asset: "pay", Amount: "1"})).To(BeNil())
			atomic.Discard()
			Expect(atomic.Events()).To(BeEmpty())

			reader := logic2.New(appDB, cfg, nil)
			bal, _ := reader.Ledger().BalanceOf("gov", investor)
			Expect(bal.String()).To(Equal("0"))
			seq, err := reader.EventKeeper().LastSeq()
			Expect(err).To(BeNil())
			Expect(seq).To(BeZero())
		})
	})

	Describe(".ExecTx", func() {
		var logic *logic2.Logic

		BeforeEach(func() {
			logic = logic2.New(appDB, cfg, nil)
		})

		It("should return the validation error unchanged", func() {
			tx := txns.NewBareTxFinalizeProposal()
			tx.Sender = investor
			tx.ProposalID = 1
			err := logic.ExecTx(&core.ExecArgs{Tx: tx})
			Expect(err).ToNot(BeNil())
			Expect(types.ErrCode(err)).To(Equal("unauthorized"))
		})

		It("should return error when no contract can execute the tx", func() {
			tx := txns.NewBareTxFundTreasury()
			err := logic.ExecTx(&core.ExecArgs{
				Tx:             tx,
				ValidateTx:     func(types.BaseTx, int, core.Logic) error { return nil },
				SystemContract: []core.SystemContract{&noopContract{}},
			})
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("no executor found"))
		})

		It("should return the contract's error", func() {
			tx := txns.NewBareTxFundTreasury()
			err := logic.ExecTx(&core.ExecArgs{
				Tx:             tx,
				ValidateTx:     func(types.BaseTx, int, core.Logic) error { return nil },
				SystemContract: []core.SystemContract{&noopContract{canExec: true, err: fmt.Errorf("boom")}},
			})
			Expect(err).To(MatchError("failed to execute tx: boom"))
		})

		It("should fund the treasury through the default contracts", func() {
			tx := txns.NewBareTxFundTreasury()
			tx.Sender = investor
			tx.Asset = testutil.PayAsset
			tx.Amount = "250"
			Expect(logic.ExecTx(&core.ExecArgs{Tx: tx})).To(BeNil())
			bal, _ := logic.Ledger().BalanceOf(testutil.PayAsset, testutil.Treasury)
			Expect(bal.String()).To(Equal("250"))
		})
	})
})

type noopContract struct {
	canExec bool
	err     error
}

func (c *noopContract) Init(core.Logic, types.BaseTx) core.SystemContract { return c }
func (c *noopContract) CanExec(types.TxCode) bool                         { return c.canExec }
func (c *noopContract) Exec() error                                       { return c.err }
