package govcmd

import (
	"fmt"
	"io"

	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/util/colorfmt"
	"github.com/make-os/dao/util/identifier"
)

// VoteArgs contains arguments for VoteCmdFunc.
type VoteArgs struct {

	// ID is the proposal id
	ID uint64

	// From is the voting investor
	From identifier.Address

	// Up indicates an up-vote; false means a down-vote
	Up bool

	Stdout io.Writer
}

// VoteCmdFunc casts a vote on a proposal
func VoteCmdFunc(eng *dao.Engine, args *VoteArgs) error {
	var err error
	direction := "up"
	if args.Up {
		_, err = eng.UpVote(args.ID, args.From)
	} else {
		direction = "down"
		_, err = eng.DownVote(args.ID, args.From)
	}
	if err != nil {
		return err
	}

	if args.Stdout != nil {
		fmt.Fprintln(args.Stdout, colorfmt.GreenString("Voted %s on proposal %d", direction, args.ID))
	}

	return nil
}
