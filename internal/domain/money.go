package domain

import "github.com/shopspring/decimal"

// The upstream ledger represents money as integer minor currency units
// (cents). Every value crossing into a client-facing payload goes through
// IntegerToAmount, and every client amount headed upstream goes through
// AmountToInteger. Both directions round half-away-from-zero so that exact
// minor-unit values round-trip unchanged.
const minorUnitExponent = 2

// IntegerToAmount converts integer minor units to a decimal major-unit
// amount, e.g. 100000 -> 1000.00.
func IntegerToAmount(minor int64) decimal.Decimal {
	return decimal.New(minor, -minorUnitExponent)
}

// AmountToInteger converts a decimal major-unit amount to integer minor
// units, e.g. 1000.00 -> 100000.
func AmountToInteger(amount decimal.Decimal) int64 {
	return amount.Shift(minorUnitExponent).Round(0).IntPart()
}
