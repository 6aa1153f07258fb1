package validation_test

import (
	"strings"

	"github.com/make-os/dao/params"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/txns"
	"github.com/make-os/dao/util/identifier"
	"github.com/make-os/dao/validation"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Sanity", func() {
	var sender = identifier.Address("0xsender")

	Describe(".CheckTxCreateProposal", func() {
		var tx *txns.TxCreateProposal

		BeforeEach(func() {
			tx = txns.NewBareTxCreateProposal()
			tx.Sender = sender
			tx.Name = "name"
			tx.Description = "desc"
			tx.Amount = "10"
			tx.Recipient = "0xrecipient"
		})

		It("should return no error for a valid tx", func() {
			Expect(validation.CheckTxCreateProposal(tx, -1)).To(BeNil())
		})

		It("should return error when type is wrong", func() {
			tx.TxType = &txns.TxType{Type: txns.TxTypeFundTreasury}
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("type is invalid"))
		})

		It("should return error when name is blank", func() {
			tx.Name = "   "
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("name is required"))
		})

		It("should return error when name is too long", func() {
			tx.Name = strings.Repeat("a", params.MaxProposalNameLen+1)
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("name length cannot be greater than"))
		})

		It("should return error when description is missing", func() {
			tx.Description = ""
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("description is required"))
		})

		It("should return error when recipient is missing", func() {
			tx.Recipient = ""
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("recipient is required"))
		})

		It("should return error when recipient is the null principal", func() {
			tx.Recipient = identifier.ZeroAddress
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("null principal not allowed"))
		})

		It("should return error when amount is malformed", func() {
			tx.Amount = "1x"
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("invalid number; must be a plain decimal number"))
		})

		It("should return error when amount uses exponent notation", func() {
			tx.Amount = "1e10000000"
			err := validation.CheckTxCreateProposal(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("must be a plain decimal number"))
		})

		It("should leave a zero amount to the treasury check", func() {
			tx.Amount = "0"
			Expect(validation.CheckTxCreateProposal(tx, -1)).To(BeNil())
		})

		It("should include the index when one is given", func() {
			tx.Name = ""
			err := validation.CheckTxCreateProposal(tx, 2)
			Expect(err.Error()).To(ContainSubstring(`"index":"2"`))
		})
	})

	Describe(".CheckTxProposalVote", func() {
		It("should accept up and down votes only", func() {
			tx := txns.NewBareTxProposalVote()
			tx.Vote = txns.VoteUp
			Expect(validation.CheckTxProposalVote(tx, -1)).To(BeNil())
			tx.Vote = txns.VoteDown
			Expect(validation.CheckTxProposalVote(tx, -1)).To(BeNil())
			tx.Vote = 0
			err := validation.CheckTxProposalVote(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("vote choice is unknown"))
		})
	})

	Describe(".CheckTxFundTreasury", func() {
		var tx *txns.TxFundTreasury

		BeforeEach(func() {
			tx = txns.NewBareTxFundTreasury()
			tx.Asset = "pay"
			tx.Amount = "10"
		})

		It("should return no error for a valid tx", func() {
			Expect(validation.CheckTxFundTreasury(tx, -1)).To(BeNil())
		})

		It("should return error when asset is missing", func() {
			tx.Asset = ""
			err := validation.CheckTxFundTreasury(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("asset is required"))
		})

		It("should return error when amount uses exponent notation", func() {
			tx.Amount = "1e3"
			err := validation.CheckTxFundTreasury(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("must be a plain decimal number"))
		})

		It("should return error when amount is not positive", func() {
			tx.Amount = "0"
			err := validation.CheckTxFundTreasury(tx, -1)
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("amount must be greater than zero"))
		})
	})

	Describe(".ValidateTxSanity", func() {
		It("should wrap failures as ErrInvalidArgument", func() {
			tx := txns.NewBareTxProposalVote()
			err := validation.ValidateTxSanity(tx, -1)
			Expect(errors.Is(err, types.ErrInvalidArgument)).To(BeTrue())
			Expect(types.ErrCode(err)).To(Equal(types.ErrCodeInvalidArgument))
		})
	})
})
