package ledger

import (
	"github.com/decred/dcrd/dcrutil/v4"

	"github.com/decred/dcrsidechain/input"
	"github.com/decred/dcrsidechain/rules"
	"github.com/decred/dcrsidechain/wire"
)

// checkDoubleSpends runs both double-spend checks ahead of staged
// resolution, in order: first that no single transaction names the
// same outpoint twice (DoubleSpentWithin), then — only once every
// transaction has passed that — that no two transactions in the body
// name the same outpoint (DoubleSpentInBody). Both must run before
// staged resolution: a staged view that saw a cross-transaction
// double-spend would report it as OutputSpentError (the second
// transaction's input looks already consumed), which is less specific
// than the DoubleSpentInBodyError wanted here.
func checkDoubleSpends(txs []wire.Transaction) error {
	for _, tx := range txs {
		within := make(map[wire.OutPoint]struct{}, len(tx.Inputs))
		for _, op := range tx.Inputs {
			if _, dup := within[op]; dup {
				return &rules.DoubleSpentWithinError{OutPoint: op}
			}
			within[op] = struct{}{}
		}
	}

	seen := make(map[wire.OutPoint]struct{})
	for _, tx := range txs {
		for _, op := range tx.Inputs {
			if _, dup := seen[op]; dup {
				return &rules.DoubleSpentInBodyError{OutPoint: op}
			}
			seen[op] = struct{}{}
		}
	}
	return nil
}

// ValidateTransaction resolves tx's inputs against the current
// committed state and runs the full single-transaction check: input
// resolution, the custom hook (if any), structural/ownership/accounting
// rules, and signature verification. It is the complete check a mempool-style caller needs
// to decide whether to accept a standalone transaction; block
// validation instead uses the staged-view path in ValidateBlock so
// that same-body chaining is accounted for.
func (l *Ledger) ValidateTransaction(tx wire.Transaction) (fee uint64, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	spent := make([]wire.Output, len(tx.Inputs))
	for i, op := range tx.Inputs {
		out, err := l.resolve(op)
		if err != nil {
			return 0, err
		}
		spent[i] = out
	}

	if l.hook != nil {
		if err := l.hook.CustomValidateTransaction(spent, tx); err != nil {
			if _, ok := err.(*rules.CustomRuleError); ok {
				return 0, err
			}
			return 0, &rules.CustomRuleError{Message: err.Error()}
		}
	}

	fee, err = rules.ValidateTransaction(tx, spent)
	if err != nil {
		return 0, err
	}

	if err := input.VerifyBatch([]wire.Transaction{tx}); err != nil {
		return 0, err
	}
	return fee, nil
}

// ValidateBlock checks that (header, body) is valid for extending the
// ledger's current tip: the header must chain from the current best
// block and commit to the body's merkle root, every transaction must
// pass the staged-view regular rules, the body-wide accounting
// invariants must hold, and every authorization in the body must
// verify. All of these conditions must hold.
func (l *Ledger) ValidateBlock(header wire.Header, body wire.Body) (fees uint64, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.validateBlockLocked(header, body)
}

func (l *Ledger) validateBlockLocked(header wire.Header, body wire.Body) (fees uint64, err error) {
	best := l.bestBlockHashLocked()
	if header.PrevSideBlockHash != best {
		return 0, &PrevHashMismatchError{Expected: best, Found: header.PrevSideBlockHash}
	}

	computed := body.MerkleRoot()
	if header.MerkleRoot != computed {
		return 0, &MerkleRootMismatchError{Expected: header.MerkleRoot, Found: computed}
	}

	if err := checkDoubleSpends(body.Transactions); err != nil {
		return 0, err
	}

	view := newStagedView(l)
	spent := make([][]wire.Output, len(body.Transactions))
	for i, tx := range body.Transactions {
		s, err := view.apply(tx)
		if err != nil {
			return 0, err
		}
		spent[i] = s
	}

	fees, err = rules.ValidateBody(body.Transactions, spent, body.Coinbase, l.hook)
	if err != nil {
		return 0, err
	}

	if err := input.VerifyBatch(body.Transactions); err != nil {
		return 0, err
	}

	log.Debugf("Validated block extending %s: %d txns, %s total fees",
		best, len(body.Transactions), dcrutil.Amount(fees))

	return fees, nil
}
