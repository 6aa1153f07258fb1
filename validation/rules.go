package validation

import (
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
)

var validAmountRule = func(field string, index int) func(interface{}) error {
	return func(val interface{}) error {
		s := val.(util.String)
		if !s.IsNumeric() || !s.IsDecimal() {
			return feI(index, field, "invalid number; must be a plain decimal number")
		}
		return nil
	}
}

var positiveAmountRule = func(field string, index int) func(interface{}) error {
	return func(val interface{}) error {
		if !val.(util.String).Decimal().IsPositive() {
			return feI(index, field, "amount must be greater than zero")
		}
		return nil
	}
}

var notNullPrincipalRule = func(field string, index int) func(interface{}) error {
	return func(val interface{}) error {
		if val.(identifier.Address).IsNull() {
			return feI(index, field, "null principal not allowed")
		}
		return nil
	}
}
