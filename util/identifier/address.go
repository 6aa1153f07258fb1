package identifier

import (
	"strings"
)

// ZeroAddress is the null principal. It can never receive funds
// or be the recipient of a proposal.
const ZeroAddress = Address("0x0000000000000000000000000000000000000000")

// Address represents a principal: an investor, a recipient,
// a funder or the treasury itself.
type Address string

func (a Address) String() string {
	return string(a)
}

// Equal checks whether a is equal to addr
func (a Address) Equal(addr Address) bool {
	return a == addr
}

// IsEmpty checks whether the address is empty
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.String()) == ""
}

// IsNull checks whether the address is the null principal.
// An empty address and any all-zero hex address are null.
func (a Address) IsNull() bool {
	if a.IsEmpty() {
		return true
	}
	s := strings.ToLower(strings.TrimSpace(a.String()))
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	return strings.Trim(s[2:], "0") == ""
}
