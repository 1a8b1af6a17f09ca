package rules

import "github.com/decred/dcrsidechain/wire"

// Hook lets an application enforce output-kind-specific rules before
// the regular validator runs. It is the Go shape of the generic
// CustomValidator<C> the reference design parameterizes the validator
// over; rather than a type parameter, applications supply a Hook
// implementation, sidestepping a wire<->extension import cycle that a
// Content-typed generic validator would otherwise require.
type Hook interface {
	// CustomValidateTransaction runs before regular validation. spent
	// is resolved in the same order as tx.Inputs. A non-nil error is
	// wrapped as CustomRuleError unless it already is one.
	CustomValidateTransaction(spent []wire.Output, tx wire.Transaction) error
}
