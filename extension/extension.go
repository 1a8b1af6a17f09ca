// Package extension defines the capability interface that lets an
// application plug custom output content into the ledger core without
// forking it. It is the Go shape of the generic-type-parameter
// extension point described in the original design: a closed set of
// shipped output kinds plus an open Custom variant guarded by a
// capability set. The companion custom-validation hook lives in
// package rules, which already depends on both this package and wire;
// keeping it there avoids a wire<->extension import cycle.
package extension

import "github.com/decred/dcrsidechain/siaddr"

// Content is the capability set a custom output payload must satisfy.
// Any type implementing Content can ride in wire.Output's Custom field
// and participate in the regular validator's value-conservation and
// ownership checks exactly like the built-in Regular and Withdrawal
// output kinds.
type Content interface {
	// GetValue returns the atoms this output contributes to the
	// accounting total on both sides of a transaction.
	GetValue() uint64

	// GetAddress returns the address that owns this output and must
	// authorize spending it.
	GetAddress() siaddr.Address
}
