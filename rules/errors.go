package rules

import (
	"fmt"

	"github.com/decred/dcrsidechain/siaddr"
	"github.com/decred/dcrsidechain/wire"
)

// MissingAuthorizationsError reports that a transaction's input and
// authorization counts disagree.
type MissingAuthorizationsError struct {
	Inputs int
	Auths  int
}

func (e *MissingAuthorizationsError) Error() string {
	return fmt.Sprintf("rules: %d inputs but %d authorizations", e.Inputs, e.Auths)
}

// AddressMismatchError reports that an authorization does not own the
// input it is paired with.
type AddressMismatchError struct {
	AuthAddr siaddr.Address
	UTXOAddr siaddr.Address
}

func (e *AddressMismatchError) Error() string {
	return fmt.Sprintf("rules: authorization address %s does not own output owned by %s",
		e.AuthAddr, e.UTXOAddr)
}

// DoubleSpentWithinError reports that a single transaction names the
// same outpoint as more than one input.
type DoubleSpentWithinError struct {
	OutPoint wire.OutPoint
}

func (e *DoubleSpentWithinError) Error() string {
	return fmt.Sprintf("rules: %s spent twice within one transaction", e.OutPoint)
}

// DoubleSpentInBodyError reports that two different transactions
// within one block body name the same outpoint.
type DoubleSpentInBodyError struct {
	OutPoint wire.OutPoint
}

func (e *DoubleSpentInBodyError) Error() string {
	return fmt.Sprintf("rules: %s spent by more than one transaction in body", e.OutPoint)
}

// ValueInLessThanValueOutError reports a transaction that does not
// conserve value.
type ValueInLessThanValueOutError struct {
	ValueIn  uint64
	ValueOut uint64
}

func (e *ValueInLessThanValueOutError) Error() string {
	return fmt.Sprintf("rules: value in %d less than value out %d", e.ValueIn, e.ValueOut)
}

// FeeOverflowError reports that accumulating fees (per-transaction or
// across a body) overflowed a uint64.
type FeeOverflowError struct{}

func (e *FeeOverflowError) Error() string {
	return "rules: fee accumulation overflowed"
}

// CoinbaseExceedsFeesError reports that a body's coinbase pays out more
// than the fees it collected.
type CoinbaseExceedsFeesError struct {
	Coinbase uint64
	Fees     uint64
}

func (e *CoinbaseExceedsFeesError) Error() string {
	return fmt.Sprintf("rules: coinbase value %d exceeds collected fees %d", e.Coinbase, e.Fees)
}

// CustomRuleError wraps a failure surfaced by an application-defined
// Hook.
type CustomRuleError struct {
	Message string
}

func (e *CustomRuleError) Error() string {
	return fmt.Sprintf("rules: custom rule failed: %s", e.Message)
}
