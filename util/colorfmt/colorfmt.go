package colorfmt

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/make-os/dao/config"
	"github.com/make-os/dao/types/state"
)

func colorSprintf(format string, attr []color.Attribute, a ...interface{}) string {
	if config.NoColorFormatting {
		return fmt.Sprintf(format, a...)
	}
	return color.New(attr...).Sprintf(format, a...)
}

func RedString(format string, a ...interface{}) string {
	return colorSprintf(format, []color.Attribute{color.FgRed}, a...)
}

func YellowString(format string, a ...interface{}) string {
	return colorSprintf(format, []color.Attribute{color.FgYellow}, a...)
}

func GreenString(format string, a ...interface{}) string {
	return colorSprintf(format, []color.Attribute{color.FgGreen}, a...)
}

func CyanString(format string, a ...interface{}) string {
	return colorSprintf(format, []color.Attribute{color.FgCyan}, a...)
}

func WhiteBoldString(format string, a ...interface{}) string {
	return colorSprintf(format, []color.Attribute{color.FgWhite, color.Bold}, a...)
}

// StatusString colors a proposal status text:
// green for Approved, red for Rejected and yellow otherwise
func StatusString(status string) string {
	switch status {
	case state.ProposalStatusApproved:
		return GreenString("%s", status)
	case state.ProposalStatusRejected:
		return RedString("%s", status)
	default:
		return YellowString("%s", status)
	}
}
