// Package rules implements the pure, side-effect-free validation
// logic shared by single-transaction checks and whole-body checks.
// Nothing here touches ledger state directly: callers resolve inputs
// and pass the resolved outputs in, which is what keeps this package
// reusable against both a live ledger and a staged, in-body view of
// one.
package rules

import (
	"math"

	"github.com/decred/dcrsidechain/wire"
)

// ValidateTransaction checks the structural, ownership, and
// accounting properties of tx against spent, its resolved inputs in
// the same order as tx.Inputs. Signature verification is not
// performed here: callers run input.VerifyBatch separately.
func ValidateTransaction(tx wire.Transaction, spent []wire.Output) (fee uint64, err error) {
	if len(tx.Inputs) != len(tx.Authorizations) {
		return 0, &MissingAuthorizationsError{Inputs: len(tx.Inputs), Auths: len(tx.Authorizations)}
	}

	for i, auth := range tx.Authorizations {
		authAddr := auth.GetAddress()
		utxoAddr := spent[i].GetAddress()
		if authAddr != utxoAddr {
			return 0, &AddressMismatchError{AuthAddr: authAddr, UTXOAddr: utxoAddr}
		}
	}

	seen := make(map[wire.OutPoint]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if _, dup := seen[in]; dup {
			return 0, &DoubleSpentWithinError{OutPoint: in}
		}
		seen[in] = struct{}{}
	}

	var valueIn, valueOut uint64
	for _, utxo := range spent {
		if valueIn > math.MaxUint64-utxo.GetValue() {
			return 0, &FeeOverflowError{}
		}
		valueIn += utxo.GetValue()
	}
	for _, out := range tx.Outputs {
		if valueOut > math.MaxUint64-out.GetValue() {
			return 0, &FeeOverflowError{}
		}
		valueOut += out.GetValue()
	}

	if valueIn < valueOut {
		return 0, &ValueInLessThanValueOutError{ValueIn: valueIn, ValueOut: valueOut}
	}
	return valueIn - valueOut, nil
}

// ValidateBody runs ValidateTransaction over every transaction in
// order, summing fees, and additionally enforces the whole-body
// invariants: no outpoint spent by more than one transaction, and the
// coinbase does not exceed collected fees. spent[i] holds the
// resolved inputs for txs[i], in the same staged-view sense
// ValidateTransaction expects. If hook is non-nil, it runs before
// regular validation for every transaction, exactly as the reference
// validator sequences a custom hook ahead of its built-in rules.
func ValidateBody(txs []wire.Transaction, spent [][]wire.Output, coinbase []wire.Output, hook Hook) (fees uint64, err error) {
	allInputs := make(map[wire.OutPoint]struct{})

	for i, tx := range txs {
		if hook != nil {
			if err := hook.CustomValidateTransaction(spent[i], tx); err != nil {
				if _, ok := err.(*CustomRuleError); ok {
					return 0, err
				}
				return 0, &CustomRuleError{Message: err.Error()}
			}
		}

		fee, err := ValidateTransaction(tx, spent[i])
		if err != nil {
			return 0, err
		}

		for _, in := range tx.Inputs {
			if _, dup := allInputs[in]; dup {
				return 0, &DoubleSpentInBodyError{OutPoint: in}
			}
			allInputs[in] = struct{}{}
		}

		if fee > math.MaxUint64-fees {
			return 0, &FeeOverflowError{}
		}
		fees += fee
	}

	var coinbaseValue uint64
	for _, out := range coinbase {
		if coinbaseValue > math.MaxUint64-out.GetValue() {
			return 0, &FeeOverflowError{}
		}
		coinbaseValue += out.GetValue()
	}

	if coinbaseValue > fees {
		return 0, &CoinbaseExceedsFeesError{Coinbase: coinbaseValue, Fees: fees}
	}
	return fees, nil
}
