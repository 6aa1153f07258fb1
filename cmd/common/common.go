package common

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/make-os/dao/config"
	"github.com/make-os/dao/dao"
	"github.com/make-os/dao/storage"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/colorfmt"
	errors2 "github.com/make-os/dao/util/errors"
	"github.com/pkg/errors"
)

// OpenEngine opens the database in the data directory and the
// governance engine on top of it. The returned function closes the database.
func OpenEngine(cfg *config.AppConfig) (*dao.Engine, func(), error) {
	db := storage.NewBadger()
	if err := db.Init(cfg.GetDBDir()); err != nil {
		return nil, nil, errors.Wrap(err, "failed to open database")
	}

	eng, err := dao.Open(cfg, db, nil)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return eng, func() { _ = db.Close() }, nil
}

// FormatError renders err with its rejection code.
// Argument errors are reduced to the offending field and message.
func FormatError(err error) string {
	msg := err.Error()
	if errors.Cause(err) == types.ErrInvalidArgument {
		detail := strings.TrimSuffix(msg, ": "+types.ErrInvalidArgument.Error())
		if bfe := errors2.BadFieldErrorFromStr(detail); bfe.Field != "" {
			msg = fmt.Sprintf("%s: %s", bfe.Field, bfe.Msg)
		}
	}
	return fmt.Sprintf("Error(%s): %s", types.ErrCode(err), msg)
}

// Fatal prints err with its rejection code to w and exits the process
func Fatal(w io.Writer, err error) {
	fmt.Fprintln(w, colorfmt.RedString("%s", FormatError(err)))
	os.Exit(1)
}

// FormatAmount renders a decimal amount with thousands separators.
// The fractional part is kept exactly.
func FormatAmount(amount util.String) string {
	if !amount.IsDecimal() {
		return amount.String()
	}
	d := amount.Decimal()
	i, _ := new(big.Int).SetString(d.Truncate(0).String(), 10)
	intPart := humanize.BigComma(i)
	str := d.String()
	if idx := strings.Index(str, "."); idx >= 0 {
		if intPart == "0" && d.IsNegative() {
			intPart = "-0"
		}
		return intPart + str[idx:]
	}
	return intPart
}
