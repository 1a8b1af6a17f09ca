package ledger

import (
	"github.com/decred/dcrd/dcrutil/v4"

	"github.com/decred/dcrsidechain/mainchain"
	"github.com/decred/dcrsidechain/wire"
)

func wireDepositOutPoint(d mainchain.DepositEvent) wire.OutPoint {
	return wire.DepositOutPoint(d.Main)
}

// ConnectMainBlock ingests one main-chain block's peg effects:
// deposits enter the output store and unspent set, locked withdrawals
// leave the unspent set (but stay in the output store, for
// reversibility), and unlocked withdrawals (a main-chain reorg undoing
// a prior lock) return to the unspent set.
func (l *Ledger) ConnectMainBlock(events mainchain.BlockEvents) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var depositTotal dcrutil.Amount
	for _, d := range events.Deposits {
		op := wireDepositOutPoint(d)
		l.outputs[op] = d.Output
		l.unspent[op] = struct{}{}
		depositTotal += dcrutil.Amount(d.Output.GetValue())
	}
	for _, lk := range events.Locked {
		delete(l.unspent, lk.OutPoint)
	}
	for _, u := range events.Unlocked {
		l.unspent[u.OutPoint] = struct{}{}
	}

	log.Debugf("Connected main block events: %d deposits (%s), %d locked, %d unlocked",
		len(events.Deposits), depositTotal, len(events.Locked), len(events.Unlocked))
}

// DisconnectMainBlock is the exact inverse of ConnectMainBlock applied
// to the same events.
func (l *Ledger) DisconnectMainBlock(events mainchain.BlockEvents) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range events.Deposits {
		op := wireDepositOutPoint(d)
		delete(l.unspent, op)
		delete(l.outputs, op)
	}
	for _, lk := range events.Locked {
		l.unspent[lk.OutPoint] = struct{}{}
	}
	for _, u := range events.Unlocked {
		delete(l.unspent, u.OutPoint)
	}
}
