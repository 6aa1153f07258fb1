package keepers

import (
	"os"

	"github.com/make-os/dao/config"
	"github.com/make-os/dao/storage"
	"github.com/make-os/dao/testutil"
	"github.com/make-os/dao/types"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventKeeper", func() {
	var appDB *storage.Badger
	var err error
	var cfg *config.AppConfig
	var ek *EventKeeper

	BeforeEach(func() {
		cfg, err = testutil.SetTestCfg()
		Expect(err).To(BeNil())
		appDB = testutil.GetDB(cfg)
		ek = NewEventKeeper(appDB.NewTx(true, true))
	})

	AfterEach(func() {
		Expect(appDB.Close()).To(BeNil())
		err = os.RemoveAll(cfg.DataDir())
		Expect(err).To(BeNil())
	})

	It("should start with sequence 0 and no events", func() {
		seq, err := ek.LastSeq()
		Expect(err).To(BeNil())
		Expect(seq).To(BeZero())
		evts, err := ek.Since(0)
		Expect(err).To(BeNil())
		Expect(evts).To(BeEmpty())
	})

	It("should sequence events and return those after a given sequence", func() {
		r1, err := ek.Append(&types.EvtProposalCreated{ID: 1, Amount: "100", Recipient: "0xr", Creator: "0xc"})
		Expect(err).To(BeNil())
		Expect(r1.Seq).To(Equal(uint64(1)))
		_, err = ek.Append(&types.EvtUpVote{ID: 1, Voter: "0xv"})
		Expect(err).To(BeNil())
		_, err = ek.Append(&types.EvtFinalize{ID: 1, Approved: true})
		Expect(err).To(BeNil())

		evts, err := ek.Since(1)
		Expect(err).To(BeNil())
		Expect(evts).To(HaveLen(2))
		Expect(evts[0].Seq).To(Equal(uint64(2)))
		Expect(evts[0].Event).To(Equal(&types.EvtUpVote{ID: 1, Voter: "0xv"}))
		Expect(evts[1].Event).To(Equal(&types.EvtFinalize{ID: 1, Approved: true}))
	})
})
