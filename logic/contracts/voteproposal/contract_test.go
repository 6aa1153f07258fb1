package voteproposal_test

import (
	"os"

	"github.com/make-os/dao/config"
	logic2 "github.com/make-os/dao/logic"
	"github.com/make-os/dao/logic/contracts/voteproposal"
	"github.com/make-os/dao/storage"
	"github.com/make-os/dao/testutil"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/types/txns"
	"github.com/make-os/dao/util/identifier"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProposalVoteContract", func() {
	var appDB *storage.Badger
	var err error
	var cfg *config.AppConfig
	var logic *logic2.Logic
	var voter = identifier.Address("0xvoter")

	BeforeEach(func() {
		cfg, err = testutil.SetTestCfg()
		Expect(err).To(BeNil())
		appDB = testutil.GetDB(cfg)
		logic = logic2.New(appDB, cfg, nil)
	})

	AfterEach(func() {
		Expect(appDB.Close()).To(BeNil())
		err = os.RemoveAll(cfg.DataDir())
		Expect(err).To(BeNil())
	})

	Describe(".CanExec", func() {
		It("should return true when able to execute tx type", func() {
			ct := voteproposal.NewContract()
			Expect(ct.CanExec(txns.TxTypeProposalVote)).To(BeTrue())
			Expect(ct.CanExec(txns.TxTypeFinalizeProposal)).To(BeFalse())
		})
	})

	Describe(".Exec", func() {
		var tx *txns.TxProposalVote

		BeforeEach(func() {
			Expect(logic.Ledger().Credit(testutil.GovAsset, voter, "200000")).To(BeNil())
			_, err := logic.ProposalKeeper().Add(state.BareProposal())
			Expect(err).To(BeNil())
			tx = txns.NewBareTxProposalVote()
			tx.Sender = voter
			tx.ProposalID = 1
		})

		When("vote is up", func() {
			BeforeEach(func() {
				tx.Vote = txns.VoteUp
				Expect(voteproposal.NewContract().Init(logic, tx).Exec()).To(BeNil())
			})

			It("should add the voter's governance balance to the up tally", func() {
				p, err := logic.ProposalKeeper().Get(1)
				Expect(err).To(BeNil())
				Expect(p.UpVotes.String()).To(Equal("200000"))
				Expect(p.DownVotes.String()).To(Equal("0"))
			})

			It("should record the vote and its weight", func() {
				rec, err := logic.VoteKeeper().Get(1, voter)
				Expect(err).To(BeNil())
				Expect(rec.UpVoted).To(BeTrue())
				Expect(rec.DownVoted).To(BeFalse())
				Expect(rec.Weight.String()).To(Equal("200000"))
			})

			It("should add an up-vote event", func() {
				Expect(logic.Events()).To(HaveLen(1))
				Expect(logic.Events()[0].Event).To(Equal(&types.EvtUpVote{ID: 1, Voter: voter}))
			})
		})

		When("vote is down", func() {
			BeforeEach(func() {
				tx.Vote = txns.VoteDown
				Expect(voteproposal.NewContract().Init(logic, tx).Exec()).To(BeNil())
			})

			It("should add the voter's governance balance to the down tally", func() {
				p, err := logic.ProposalKeeper().Get(1)
				Expect(err).To(BeNil())
				Expect(p.DownVotes.String()).To(Equal("200000"))
				Expect(p.UpVotes.String()).To(Equal("0"))
			})

			It("should add a down-vote event", func() {
				Expect(logic.Events()[0].Event).To(Equal(&types.EvtDownVote{ID: 1, Voter: voter}))
			})
		})

		It("should use the balance at the time of the vote", func() {
			Expect(logic.Ledger().Credit(testutil.GovAsset, voter, "1")).To(BeNil())
			tx.Vote = txns.VoteUp
			Expect(voteproposal.NewContract().Init(logic, tx).Exec()).To(BeNil())
			p, _ := logic.ProposalKeeper().Get(1)
			Expect(p.UpVotes.String()).To(Equal("200001"))
		})
	})
})
