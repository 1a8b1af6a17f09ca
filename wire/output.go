package wire

import (
	"fmt"

	"github.com/decred/dcrsidechain/extension"
	"github.com/decred/dcrsidechain/siaddr"
)

// OutputKind discriminates the shipped output variants from the open
// Custom extension slot.
type OutputKind uint8

const (
	// OutputRegular is spendable sidechain value.
	OutputRegular OutputKind = iota

	// OutputWithdrawal is a sidechain-side record of a pending
	// peg-out; it contributes to sidechain accounting until the main
	// chain locks it.
	OutputWithdrawal

	// OutputCustom carries an application-defined payload behind the
	// extension.Content capability set.
	OutputCustom
)

func (k OutputKind) String() string {
	switch k {
	case OutputRegular:
		return "regular"
	case OutputWithdrawal:
		return "withdrawal"
	case OutputCustom:
		return "custom"
	default:
		return fmt.Sprintf("output-kind(%d)", uint8(k))
	}
}

// Output is an owned, valued unit produced by a transaction, a block's
// coinbase, or a main-chain deposit event. Every variant has an owning
// Address and a value; MainFee and MainAddress are meaningful only for
// Withdrawal, and Custom only for OutputCustom.
//
// MainAddress is carried as an opaque string: the format in which a
// main-chain address is encoded is outside the scope of this core (see
// the spec's scope notes), so the ledger neither parses nor validates
// it, only threads it through to the main-chain driver that eventually
// pays it out.
type Output struct {
	Kind        OutputKind
	Address     siaddr.Address
	Value       uint64
	MainFee     uint64
	MainAddress string
	Custom      extension.Content
}

// RegularOutput returns a spendable sidechain output.
func RegularOutput(address siaddr.Address, value uint64) Output {
	return Output{Kind: OutputRegular, Address: address, Value: value}
}

// WithdrawalOutput returns a pending peg-out record.
func WithdrawalOutput(value, mainFee uint64, sideAddress siaddr.Address, mainAddress string) Output {
	return Output{
		Kind:        OutputWithdrawal,
		Address:     sideAddress,
		Value:       value,
		MainFee:     mainFee,
		MainAddress: mainAddress,
	}
}

// CustomOutput returns an output carrying an application-defined
// payload.
func CustomOutput(content extension.Content) Output {
	return Output{Kind: OutputCustom, Custom: content}
}

// GetAddress returns the address that owns this output.
func (o Output) GetAddress() siaddr.Address {
	if o.Kind == OutputCustom {
		return o.Custom.GetAddress()
	}
	return o.Address
}

// GetValue returns the atoms this output contributes to accounting.
func (o Output) GetValue() uint64 {
	if o.Kind == OutputCustom {
		return o.Custom.GetValue()
	}
	return o.Value
}

func (o Output) encodeCanonical(e *encoder) {
	e.writeUint8(uint8(o.Kind))
	switch o.Kind {
	case OutputRegular:
		e.writeBytes(o.Address[:])
		e.writeUint64(o.Value)
	case OutputWithdrawal:
		e.writeUint64(o.Value)
		e.writeUint64(o.MainFee)
		e.writeBytes(o.Address[:])
		e.writeBytes([]byte(o.MainAddress))
	case OutputCustom:
		// Content only exposes value and address, not a serialization
		// of its own payload; applications that need the payload
		// itself to be consensus-critical should commit to it
		// through GetValue/GetAddress or extend Content with a
		// canonical encoding method.
		addr := o.Custom.GetAddress()
		e.writeBytes(addr[:])
		e.writeUint64(o.Custom.GetValue())
	}
}
