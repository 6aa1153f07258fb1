package contracts

import (
	"github.com/make-os/dao/logic/contracts/createproposal"
	"github.com/make-os/dao/logic/contracts/finalizeproposal"
	"github.com/make-os/dao/logic/contracts/fundtreasury"
	"github.com/make-os/dao/logic/contracts/voteproposal"
	"github.com/make-os/dao/types/core"
)

// SystemContracts is a list of all system contracts
var SystemContracts []core.SystemContract

func init() {
	SystemContracts = append(SystemContracts, []core.SystemContract{
		createproposal.NewContract(),
		voteproposal.NewContract(),
		finalizeproposal.NewContract(),
		fundtreasury.NewContract(),
	}...)
}
