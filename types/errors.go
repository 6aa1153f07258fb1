package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// Governance rejection kinds.
// Operations wrap these so errors.Is and errors.Cause recover the kind.
var (
	ErrUnauthorized         = fmt.Errorf("caller is not an investor")
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrInsufficientTreasury = fmt.Errorf("insufficient treasury balance")
	ErrProposalNotFound     = fmt.Errorf("proposal not found")
	ErrAlreadyFinalized     = fmt.Errorf("proposal already finalized")
	ErrAlreadyVoted         = fmt.Errorf("caller already voted on proposal")
	ErrQuorumNotMet         = fmt.Errorf("quorum not met")
	ErrConfigMismatch       = fmt.Errorf("governance config does not match stored config")
)

// Error codes
const (
	ErrCodeUnauthorized         = "unauthorized"
	ErrCodeInvalidArgument      = "invalid_argument"
	ErrCodeInsufficientTreasury = "insufficient_treasury"
	ErrCodeProposalNotFound     = "not_found"
	ErrCodeAlreadyFinalized     = "already_finalized"
	ErrCodeAlreadyVoted         = "already_voted"
	ErrCodeQuorumNotMet         = "quorum_not_met"
	ErrCodeConfigMismatch       = "config_mismatch"
	ErrCodeUnexpected           = "unexpected"
)

var errCodes = []struct {
	err  error
	code string
}{
	{ErrUnauthorized, ErrCodeUnauthorized},
	{ErrInvalidArgument, ErrCodeInvalidArgument},
	{ErrInsufficientTreasury, ErrCodeInsufficientTreasury},
	{ErrProposalNotFound, ErrCodeProposalNotFound},
	{ErrAlreadyFinalized, ErrCodeAlreadyFinalized},
	{ErrAlreadyVoted, ErrCodeAlreadyVoted},
	{ErrQuorumNotMet, ErrCodeQuorumNotMet},
	{ErrConfigMismatch, ErrCodeConfigMismatch},
}

// ErrCode returns the short code of the rejection kind err wraps.
// It returns an empty string for a nil error and ErrCodeUnexpected
// for errors that are not governance rejections.
func ErrCode(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ErrCodeUnexpected
}

// IsRejection checks whether err is one of the governance rejection kinds
func IsRejection(err error) bool {
	code := ErrCode(err)
	return code != "" && code != ErrCodeUnexpected
}
