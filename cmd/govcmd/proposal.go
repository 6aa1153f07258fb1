package govcmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/make-os/dao/cmd/common"
	"github.com/make-os/dao/config"
	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/types/state"
	"github.com/make-os/dao/util/colorfmt"
	"github.com/make-os/dao/util/identifier"
	"github.com/ncodes/go-prettyjson"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/thoas/go-funk"
)

// ListArgs contains arguments for ListCmdFunc.
type ListArgs struct {

	// Voter, if set, adds a column showing the voter's vote on each proposal
	Voter identifier.Address

	// Status restricts the output to proposals with the given
	// status texts (case-insensitive). Empty means all.
	Status []string

	Stdout io.Writer
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	if !config.NoColorFormatting {
		var colors []tablewriter.Colors
		for range header {
			colors = append(colors, tablewriter.Colors{tablewriter.Normal, tablewriter.FgHiBlackColor})
		}
		table.SetHeaderColor(colors...)
	}
	return table
}

// ListCmdFunc prints all proposals
func ListCmdFunc(eng *dao.Engine, args *ListArgs) error {

	props, err := eng.GetProposals()
	if err != nil {
		return errors.Wrap(err, "failed to get proposals")
	}

	var statuses []string
	for _, s := range args.Status {
		statuses = append(statuses, strings.ToLower(strings.TrimSpace(s)))
	}

	header := []string{"ID", "Name", "Recipient", "Amount", "Up", "Down", "Status", "Created"}
	if !args.Voter.IsEmpty() {
		header = append(header, "Voted")
	}
	table := newTable(args.Stdout, header)

	for _, p := range props {
		if len(statuses) > 0 && !funk.ContainsString(statuses, strings.ToLower(p.Status())) {
			continue
		}

		row := []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			colorfmt.CyanString("%s", p.Recipient),
			common.FormatAmount(p.Amount),
			common.FormatAmount(p.UpVotes),
			common.FormatAmount(p.DownVotes),
			colorfmt.StatusString(p.Status()),
			humanize.Time(time.Unix(p.CreatedAt, 0)),
		}

		if !args.Voter.IsEmpty() {
			voted, err := votedText(eng, args.Voter, p)
			if err != nil {
				return err
			}
			row = append(row, voted)
		}

		table.Append(row)
	}

	table.Render()
	return nil
}

func votedText(eng *dao.Engine, voter identifier.Address, p *state.Proposal) (string, error) {
	rec, err := eng.GetVote(p.ID, voter)
	if err != nil {
		return "", errors.Wrap(err, "failed to get vote")
	}
	switch {
	case rec != nil && rec.UpVoted:
		return "up", nil
	case rec != nil && rec.DownVoted:
		return "down", nil
	default:
		return "-", nil
	}
}

// GetArgs contains arguments for GetCmdFunc.
type GetArgs struct {

	// ID is the proposal id
	ID uint64

	// JSON prints the proposal as a JSON object
	JSON bool

	Stdout io.Writer
}

// GetCmdFunc prints a single proposal
func GetCmdFunc(eng *dao.Engine, args *GetArgs) error {

	p, err := eng.GetProposal(args.ID)
	if err != nil {
		return err
	}

	if args.JSON {
		f := prettyjson.NewFormatter()
		f.NewlineArray = ""
		f.DisabledColor = config.NoColorFormatting
		bz, err := f.Marshal(p)
		if err != nil {
			return errors.Wrap(err, "failed to encode proposal")
		}
		fmt.Fprintln(args.Stdout, string(bz))
		return nil
	}

	table := newTable(args.Stdout, []string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"ID", fmt.Sprintf("%d", p.ID)},
		{"Name", p.Name},
		{"Description", p.Description},
		{"Amount", common.FormatAmount(p.Amount)},
		{"Recipient", p.Recipient.String()},
		{"Creator", p.Creator.String()},
		{"Up Votes", common.FormatAmount(p.UpVotes)},
		{"Down Votes", common.FormatAmount(p.DownVotes)},
		{"Status", colorfmt.StatusString(p.Status())},
		{"Created", humanize.Time(time.Unix(p.CreatedAt, 0))},
	})
	table.Render()

	return nil
}
