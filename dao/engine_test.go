package dao_test

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/mock/gomock"
	"github.com/make-os/dao/config"
	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/mocks"
	"github.com/make-os/dao/storage"
	"github.com/make-os/dao/testutil"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/olebedev/emitter"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var _ = Describe("Engine", func() {
	var appDB *storage.Badger
	var err error
	var cfg *config.AppConfig
	var eng *dao.Engine
	var ctrl *gomock.Controller
	var investors = []identifier.Address{"0xinv1", "0xinv2", "0xinv3", "0xinv4", "0xinv5"}
	var recipient = identifier.Address("0xrecipient")
	var funder = identifier.Address("0xfunder")
	var outsider = identifier.Address("0xoutsider")

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		cfg, err = testutil.SetTestCfg()
		Expect(err).To(BeNil())
		appDB = testutil.GetDB(cfg)
		eng, err = dao.Open(cfg, appDB, nil)
		Expect(err).To(BeNil())
		for _, inv := range investors {
			Expect(eng.Credit(testutil.GovAsset, inv, "200000")).To(BeNil())
		}
		_, err = eng.FundPayable(funder, "150")
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		ctrl.Finish()
		Expect(appDB.Close()).To(BeNil())
		err = os.RemoveAll(cfg.DataDir())
		Expect(err).To(BeNil())
	})

	createProposal := func() uint64 {
		rcpt, err := eng.CreateProposal(investors[0], "Audit", "Pay for the audit", "100", recipient)
		Expect(err).To(BeNil())
		return rcpt.ProposalID
	}

	Describe(".Open", func() {
		It("should expose the configured parameters", func() {
			Expect(eng.Quorum().String()).To(Equal(testutil.Quorum))
			Expect(eng.GovAsset()).To(Equal(testutil.GovAsset))
			Expect(eng.PayAsset()).To(Equal(testutil.PayAsset))
			Expect(eng.Treasury().String()).To(Equal(testutil.Treasury))
		})

		It("should reopen with the same parameters", func() {
			_, err := dao.Open(cfg, appDB, nil)
			Expect(err).To(BeNil())
		})

		It("should accept a numerically equal quorum", func() {
			cfg.Gov.Quorum = "500000.0"
			_, err := dao.Open(cfg, appDB, nil)
			Expect(err).To(BeNil())
		})

		It("should return ErrConfigMismatch when the parameters changed", func() {
			cfg.Gov.Quorum = "1"
			_, err := dao.Open(cfg, appDB, nil)
			Expect(errors.Is(err, types.ErrConfigMismatch)).To(BeTrue())
		})

		It("should return ErrInvalidArgument for a malformed quorum", func() {
			cfg.Gov.Quorum = "many"
			_, err := dao.Open(cfg, appDB, nil)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})

		It("should return ErrInvalidArgument for a quorum in exponent notation", func() {
			cfg.Gov.Quorum = "5e5"
			_, err := dao.Open(cfg, appDB, nil)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})

		It("should return ErrInvalidArgument when the governance and payable assets are the same", func() {
			cfg.Gov.PayAsset = cfg.Gov.GovAsset
			_, err := dao.Open(cfg, appDB, nil)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})

		It("should return ErrInvalidArgument when the governance asset is the native asset", func() {
			cfg.Gov.GovAsset = state.NativeAsset
			_, err := dao.Open(cfg, appDB, nil)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})

		It("should return ErrInvalidArgument for a null treasury", func() {
			cfg.Gov.Treasury = identifier.ZeroAddress.String()
			_, err := dao.Open(cfg, appDB, nil)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe(".CreateProposal", func() {
		It("should assign dense ids starting at 1", func() {
			Expect(createProposal()).To(Equal(uint64(1)))
			Expect(createProposal()).To(Equal(uint64(2)))
			count, err := eng.ProposalCount()
			Expect(err).To(BeNil())
			Expect(count).To(Equal(uint64(2)))
		})

		It("should return the created event in the receipt", func() {
			rcpt, err := eng.CreateProposal(investors[0], "Audit", "Pay for the audit", "100", recipient)
			Expect(err).To(BeNil())
			Expect(rcpt.Event(types.EvtNameProposalCreated)).To(Equal(&types.EvtProposalCreated{
				ID: 1, Amount: "100", Recipient: recipient, Creator: investors[0],
			}))
		})

		It("should return ErrUnauthorized for non-investors", func() {
			_, err := eng.CreateProposal(outsider, "Audit", "Pay for the audit", "100", recipient)
			Expect(errors.Is(err, types.ErrUnauthorized)).To(BeTrue())
		})

		It("should check arguments before membership", func() {
			_, err := eng.CreateProposal(outsider, "", "Pay for the audit", "100", recipient)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})

		It("should return ErrInvalidArgument for a null recipient", func() {
			_, err := eng.CreateProposal(investors[0], "Audit", "desc", "100", identifier.ZeroAddress)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})

		It("should return ErrInsufficientTreasury for zero or uncovered amounts", func() {
			_, err := eng.CreateProposal(investors[0], "Audit", "desc", "0", recipient)
			Expect(errors.Is(err, types.ErrInsufficientTreasury)).To(BeTrue())
			_, err = eng.CreateProposal(investors[0], "Audit", "desc", "150", recipient)
			Expect(errors.Is(err, types.ErrInsufficientTreasury)).To(BeTrue())
			count, _ := eng.ProposalCount()
			Expect(count).To(BeZero())
		})
	})

	Describe("amounts in exponent notation", func() {
		var huge = util.String("1e10000000")

		It("should reject them on CreateProposal with ErrInvalidArgument", func() {
			for _, amt := range []util.String{"1e2", "1e-5", huge} {
				_, err := eng.CreateProposal(investors[0], "Audit", "Pay for the audit", amt, recipient)
				Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
				Expect(len(err.Error())).To(BeNumerically("<", 1000))
			}
			count, _ := eng.ProposalCount()
			Expect(count).To(BeZero())
		})

		It("should reject them on FundPayable with ErrInvalidArgument", func() {
			_, err := eng.FundPayable(funder, huge)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
			Expect(len(err.Error())).To(BeNumerically("<", 1000))
			bal, _ := eng.TreasuryBalance(testutil.PayAsset)
			Expect(bal.String()).To(Equal("150"))
		})

		It("should reject them on Credit with ErrInvalidArgument", func() {
			err := eng.Credit(testutil.GovAsset, outsider, huge)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
			Expect(len(err.Error())).To(BeNumerically("<", 1000))
			ok, _ := eng.IsInvestor(outsider)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("governance scenarios", func() {
		var id uint64

		BeforeEach(func() {
			id = createProposal()
		})

		It("should approve and pay the recipient after three up-votes", func() {
			for _, inv := range investors[:3] {
				_, err := eng.UpVote(id, inv)
				Expect(err).To(BeNil())
			}

			rcpt, err := eng.FinalizeProposal(id, investors[3])
			Expect(err).To(BeNil())
			Expect(rcpt.Event(types.EvtNameFinalize)).To(Equal(&types.EvtFinalize{ID: id, Approved: true}))

			p, err := eng.GetProposal(id)
			Expect(err).To(BeNil())
			Expect(p.UpVotes.String()).To(Equal("600000"))
			Expect(p.Finalized).To(BeTrue())
			Expect(p.Approved).To(BeTrue())

			bal, _ := eng.BalanceOf(testutil.PayAsset, recipient)
			Expect(bal.String()).To(Equal("100"))
			bal, _ = eng.TreasuryBalance(testutil.PayAsset)
			Expect(bal.String()).To(Equal("50"))
		})

		It("should reject without moving funds after three down-votes", func() {
			for _, inv := range investors[:3] {
				_, err := eng.DownVote(id, inv)
				Expect(err).To(BeNil())
			}

			_, err := eng.FinalizeProposal(id, investors[0])
			Expect(err).To(BeNil())

			p, _ := eng.GetProposal(id)
			Expect(p.Finalized).To(BeTrue())
			Expect(p.Approved).To(BeFalse())
			Expect(p.Status()).To(Equal(state.ProposalStatusRejected))

			bal, _ := eng.BalanceOf(testutil.PayAsset, recipient)
			Expect(bal.String()).To(Equal("0"))
			bal, _ = eng.TreasuryBalance(testutil.PayAsset)
			Expect(bal.String()).To(Equal("150"))
		})

		It("should return ErrQuorumNotMet after two votes and keep the proposal open", func() {
			_, err := eng.UpVote(id, investors[0])
			Expect(err).To(BeNil())
			_, err = eng.UpVote(id, investors[1])
			Expect(err).To(BeNil())

			_, err = eng.FinalizeProposal(id, investors[0])
			Expect(errors.Is(err, types.ErrQuorumNotMet)).To(BeTrue())

			p, _ := eng.GetProposal(id)
			Expect(p.Finalized).To(BeFalse())
			Expect(p.Status()).To(Equal(state.ProposalStatusInProgress))
		})

		It("should return ErrAlreadyVoted for an up then down vote and keep tallies", func() {
			_, err := eng.UpVote(id, investors[0])
			Expect(err).To(BeNil())
			_, err = eng.DownVote(id, investors[0])
			Expect(errors.Is(err, types.ErrAlreadyVoted)).To(BeTrue())

			p, _ := eng.GetProposal(id)
			Expect(p.UpVotes.String()).To(Equal("200000"))
			Expect(p.DownVotes.String()).To(Equal("0"))

			up, err := eng.HasUpVoted(investors[0], id)
			Expect(err).To(BeNil())
			Expect(up).To(BeTrue())
			down, err := eng.HasDownVoted(investors[0], id)
			Expect(err).To(BeNil())
			Expect(down).To(BeFalse())
		})

		It("should return ErrAlreadyFinalized for votes and finalize after finalization", func() {
			for _, inv := range investors[:3] {
				_, err := eng.UpVote(id, inv)
				Expect(err).To(BeNil())
			}
			_, err := eng.FinalizeProposal(id, investors[0])
			Expect(err).To(BeNil())

			_, err = eng.UpVote(id, investors[4])
			Expect(errors.Is(err, types.ErrAlreadyFinalized)).To(BeTrue())
			_, err = eng.FinalizeProposal(id, investors[0])
			Expect(errors.Is(err, types.ErrAlreadyFinalized)).To(BeTrue())
		})

		It("should return ErrProposalNotFound for unknown ids", func() {
			_, err := eng.UpVote(99, investors[0])
			Expect(errors.Is(err, types.ErrProposalNotFound)).To(BeTrue())
			_, err = eng.GetProposal(0)
			Expect(errors.Is(err, types.ErrProposalNotFound)).To(BeTrue())
		})

		It("should return ErrInsufficientTreasury when the treasury no longer covers an approved amount", func() {
			id2 := createProposal()
			for _, pid := range []uint64{id, id2} {
				for _, inv := range investors[:3] {
					_, err := eng.UpVote(pid, inv)
					Expect(err).To(BeNil())
				}
			}

			_, err := eng.FinalizeProposal(id, investors[0])
			Expect(err).To(BeNil())
			_, err = eng.FinalizeProposal(id2, investors[0])
			Expect(errors.Is(err, types.ErrInsufficientTreasury)).To(BeTrue())

			p, _ := eng.GetProposal(id2)
			Expect(p.Finalized).To(BeFalse())
		})

		It("should return all proposals in ascending order", func() {
			createProposal()
			props, err := eng.GetProposals()
			Expect(err).To(BeNil())
			Expect(props).To(HaveLen(2))
			Expect(props[0].ID).To(Equal(uint64(1)))
			Expect(props[1].ID).To(Equal(uint64(2)))
		})
	})

	Describe("concurrent operations", func() {
		var id uint64

		BeforeEach(func() {
			id = createProposal()
		})

		It("should accept exactly one of many duplicate votes", func() {
			var wg sync.WaitGroup
			var mtx sync.Mutex
			var successes int
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					if _, err := eng.UpVote(id, investors[0]); err == nil {
						mtx.Lock()
						successes++
						mtx.Unlock()
					} else {
						Expect(errors.Is(err, types.ErrAlreadyVoted)).To(BeTrue())
					}
				}()
			}
			wg.Wait()
			Expect(successes).To(Equal(1))
			p, _ := eng.GetProposal(id)
			Expect(p.UpVotes.String()).To(Equal("200000"))
		})

		It("should accept exactly one of many finalize calls", func() {
			for _, inv := range investors[:3] {
				_, err := eng.UpVote(id, inv)
				Expect(err).To(BeNil())
			}

			var wg sync.WaitGroup
			var mtx sync.Mutex
			var successes int
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()
					if _, err := eng.FinalizeProposal(id, investors[i%5]); err == nil {
						mtx.Lock()
						successes++
						mtx.Unlock()
					} else {
						Expect(errors.Is(err, types.ErrAlreadyFinalized)).To(BeTrue())
					}
				}(i)
			}
			wg.Wait()
			Expect(successes).To(Equal(1))
			bal, _ := eng.BalanceOf(testutil.PayAsset, recipient)
			Expect(bal.String()).To(Equal("100"))
		})
	})

	Describe(".FundNative and .FundPayable", func() {
		It("should credit the treasury in the matching asset", func() {
			rcpt, err := eng.FundNative(funder, "7")
			Expect(err).To(BeNil())
			Expect(rcpt.Event(types.EvtNameTreasuryFunded)).To(Equal(&types.EvtTreasuryFunded{
				Funder: funder, Asset: state.NativeAsset, Amount: "7",
			}))
			bal, _ := eng.TreasuryBalance(state.NativeAsset)
			Expect(bal.String()).To(Equal("7"))
			bal, _ = eng.TreasuryBalance(testutil.PayAsset)
			Expect(bal.String()).To(Equal("150"))
		})

		It("should return ErrInvalidArgument for malformed or non-positive amounts", func() {
			_, err := eng.FundNative(funder, "abc")
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
			_, err = eng.FundPayable(funder, "-1")
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe(".Credit", func() {
		It("should return ErrInvalidArgument for bad input", func() {
			Expect(errors.Is(eng.Credit("", outsider, "1"), types.ErrInvalidArgument)).To(BeTrue())
			Expect(errors.Is(eng.Credit("gov", identifier.ZeroAddress, "1"), types.ErrInvalidArgument)).To(BeTrue())
			Expect(errors.Is(eng.Credit("gov", outsider, "0"), types.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe(".IsInvestor", func() {
		It("should reflect the current governance balance", func() {
			ok, err := eng.IsInvestor(investors[0])
			Expect(err).To(BeNil())
			Expect(ok).To(BeTrue())
			ok, err = eng.IsInvestor(outsider)
			Expect(err).To(BeNil())
			Expect(ok).To(BeFalse())
		})

		It("should consult an external ledger when set", func() {
			ledger := mocks.NewMockAssetLedger(ctrl)
			ledger.EXPECT().BalanceOf(testutil.GovAsset, outsider).Return(util.String("5"), nil)
			eng.SetLedger(ledger)
			ok, err := eng.IsInvestor(outsider)
			Expect(err).To(BeNil())
			Expect(ok).To(BeTrue())
		})

		It("should return the ledger error", func() {
			ledger := mocks.NewMockAssetLedger(ctrl)
			ledger.EXPECT().BalanceOf(gomock.Any(), gomock.Any()).Return(util.String(""), fmt.Errorf("down"))
			eng.SetLedger(ledger)
			_, err := eng.IsInvestor(outsider)
			Expect(err).ToNot(BeNil())
		})
	})

	Describe("events", func() {
		It("should persist events in order for polling", func() {
			id := createProposal()
			_, err := eng.UpVote(id, investors[0])
			Expect(err).To(BeNil())

			events, err := eng.Events(0)
			Expect(err).To(BeNil())
			Expect(events).To(HaveLen(3))
			Expect(events[0].Name).To(Equal(types.EvtNameTreasuryFunded))
			Expect(events[1].Name).To(Equal(types.EvtNameProposalCreated))
			Expect(events[2].Name).To(Equal(types.EvtNameUpVote))
			Expect(events[2].Event).To(Equal(&types.EvtUpVote{ID: id, Voter: investors[0]}))

			events, err = eng.Events(2)
			Expect(err).To(BeNil())
			Expect(events).To(HaveLen(1))
			Expect(events[0].Seq).To(Equal(uint64(3)))
		})

		It("should not persist events of rejected operations", func() {
			_, err := eng.CreateProposal(outsider, "Audit", "desc", "100", recipient)
			Expect(err).ToNot(BeNil())
			events, _ := eng.Events(0)
			Expect(events).To(HaveLen(1))
		})

		It("should publish events to subscribers after commit", func() {
			ch := eng.Subscribe(types.EvtNameProposalCreated)
			defer eng.Unsubscribe(types.EvtNameProposalCreated, ch)

			createProposal()

			var evt emitter.Event
			Eventually(ch).Should(Receive(&evt))
			rec := evt.Args[0].(*types.EventRecord)
			Expect(rec.Event).To(Equal(&types.EvtProposalCreated{
				ID: 1, Amount: "100", Recipient: recipient, Creator: investors[0],
			}))
		})
	})

	Describe("metrics", func() {
		It("should count accepted and rejected operations", func() {
			reg := prometheus.NewRegistry()
			eng, err = dao.Open(cfg, appDB, reg)
			Expect(err).To(BeNil())

			id := createProposal()
			_, err = eng.UpVote(id, investors[0])
			Expect(err).To(BeNil())
			_, err = eng.UpVote(id, investors[0])
			Expect(err).ToNot(BeNil())

			Expect(counterValue(reg, "dao_proposals_created_total", nil)).To(Equal(float64(1)))
			Expect(counterValue(reg, "dao_votes_total", map[string]string{"direction": "up"})).To(Equal(float64(1)))
			Expect(counterValue(reg, "dao_rejections_total", map[string]string{"reason": "already_voted"})).To(Equal(float64(1)))
		})

		It("should count ledger failures as unexpected and leave the treasury unchanged", func() {
			reg := prometheus.NewRegistry()
			eng, err = dao.Open(cfg, appDB, reg)
			Expect(err).To(BeNil())

			ledger := mocks.NewMockAssetLedger(ctrl)
			ledger.EXPECT().BalanceOf(gomock.Any(), gomock.Any()).Return(util.String("0"), nil).AnyTimes()
			ledger.EXPECT().Credit(testutil.PayAsset, gomock.Any(), util.String("5")).Return(fmt.Errorf("ledger down"))
			eng.SetLedger(ledger)

			_, err = eng.FundPayable(funder, "5")
			Expect(err).To(MatchError(ContainSubstring("ledger down")))
			Expect(types.IsRejection(err)).To(BeFalse())
			Expect(counterValue(reg, "dao_rejections_total", map[string]string{"reason": types.ErrCodeUnexpected})).To(Equal(float64(1)))

			evts, err := eng.Events(0)
			Expect(err).To(BeNil())
			Expect(evts).To(HaveLen(1))
		})
	})
})

// counterValue returns the value of the counter with the given
// name and labels in reg, or -1 if not found
func counterValue(reg *prometheus.Registry, name string, labels map[string]string) float64 {
	mfs, err := reg.Gather()
	Expect(err).To(BeNil())
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	outer:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue outer
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return -1
}
