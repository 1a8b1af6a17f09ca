package ledger

import "github.com/decred/dcrsidechain/wire"

// stagedView resolves outpoints against the committed ledger plus the
// outputs produced by transactions earlier in the same block body,
// minus whatever those earlier transactions already consumed. Without
// it, a transaction spending an output produced earlier in the same
// body would be rejected by a validator that only sees the pre-block
// snapshot, even though that same-body chain must validate.
type stagedView struct {
	ledger   *Ledger
	produced map[wire.OutPoint]wire.Output
	consumed map[wire.OutPoint]struct{}
}

func newStagedView(l *Ledger) *stagedView {
	return &stagedView{
		ledger:   l,
		produced: make(map[wire.OutPoint]wire.Output),
		consumed: make(map[wire.OutPoint]struct{}),
	}
}

func (v *stagedView) resolve(op wire.OutPoint) (wire.Output, error) {
	if _, spent := v.consumed[op]; spent {
		return wire.Output{}, &OutputSpentError{OutPoint: op}
	}
	if out, ok := v.produced[op]; ok {
		return out, nil
	}
	return v.ledger.resolve(op)
}

// apply resolves tx's inputs against the view, then stages its outputs
// as newly produced and its inputs as newly consumed, returning the
// resolved inputs in tx.Inputs order. Callers must process a body's
// transactions through apply in order for the staging to reflect
// same-body chaining correctly.
func (v *stagedView) apply(tx wire.Transaction) ([]wire.Output, error) {
	spent := make([]wire.Output, len(tx.Inputs))
	for i, op := range tx.Inputs {
		out, err := v.resolve(op)
		if err != nil {
			return nil, err
		}
		spent[i] = out
	}

	for _, op := range tx.Inputs {
		v.consumed[op] = struct{}{}
	}

	id := tx.Txid()
	for vout, out := range tx.Outputs {
		v.produced[wire.RegularOutPoint(id, uint32(vout))] = out
	}

	return spent, nil
}
