package fundtreasury

import (
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/types/core"
	"github.com/make-os/dao/types/txns"
	"github.com/pkg/errors"
)

// FundTreasuryContract is a system contract for crediting the treasury
// with native currency or payable asset.
// FundTreasuryContract implements SystemContract.
type FundTreasuryContract struct {
	core.Logic
	tx *txns.TxFundTreasury
}

// NewContract creates a new instance of FundTreasuryContract
func NewContract() *FundTreasuryContract {
	return &FundTreasuryContract{}
}

func (c *FundTreasuryContract) CanExec(typ types.TxCode) bool {
	return typ == txns.TxTypeFundTreasury
}

// Init initialize the contract
func (c *FundTreasuryContract) Init(logic core.Logic, tx types.BaseTx) core.SystemContract {
	return &FundTreasuryContract{Logic: logic, tx: tx.(*txns.TxFundTreasury)}
}

// Exec executes the contract
func (c *FundTreasuryContract) Exec() error {
	treasury := c.GovConfig().Treasury
	if err := c.Ledger().Credit(c.tx.Asset, treasury, c.tx.Amount); err != nil {
		return errors.Wrap(err, "failed to credit treasury")
	}
	return c.AddEvent(&types.EvtTreasuryFunded{
		Funder: c.tx.GetSender(),
		Asset:  c.tx.Asset,
		Amount: c.tx.Amount,
	})
}
