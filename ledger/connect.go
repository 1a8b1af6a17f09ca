package ledger

import (
	"github.com/go-errors/errors"

	"github.com/decred/dcrsidechain/wire"
)

// ConnectBlock applies (header, body) to the ledger's state. The
// caller must have already established validity via ValidateBlock;
// ConnectBlock itself does not re-validate, it only applies the state
// transition.
func (l *Ledger) ConnectBlock(header wire.Header, body wire.Body) {
	l.mu.Lock()
	defer l.mu.Unlock()

	root := body.MerkleRoot()
	for vout, out := range body.Coinbase {
		op := wire.CoinbaseOutPoint(root, uint32(vout))
		l.outputs[op] = out
		l.unspent[op] = struct{}{}
	}

	for _, tx := range body.Transactions {
		for _, op := range tx.Inputs {
			delete(l.unspent, op)
		}
		txid := tx.Txid()
		for vout, out := range tx.Outputs {
			op := wire.RegularOutPoint(txid, uint32(vout))
			l.outputs[op] = out
			l.unspent[op] = struct{}{}
		}
	}

	hash := header.Hash()
	l.headers[hash] = header
	l.blockOrder = append(l.blockOrder, hash)

	log.Debugf("Connected block %s (%d txns, %d coinbase outputs)",
		hash, len(body.Transactions), len(body.Coinbase))
}

// DisconnectBlock is the exact inverse of ConnectBlock applied to the
// same (header, body) pair most recently connected. Transactions are
// walked in reverse so that, when a later transaction in the body spent
// an output produced by an earlier one, the later transaction first
// returns that output to unspent and the earlier transaction then
// removes it from both outputs and unspent.
func (l *Ledger) DisconnectBlock(header wire.Header, body wire.Body) {
	l.mu.Lock()
	defer l.mu.Unlock()

	hash := header.Hash()
	if got := l.bestBlockHashLocked(); got != hash {
		panic(errors.Errorf("ledger: disconnect %s but tip is %s", hash, got))
	}

	for i := len(body.Transactions) - 1; i >= 0; i-- {
		tx := body.Transactions[i]
		txid := tx.Txid()
		for vout := range tx.Outputs {
			op := wire.RegularOutPoint(txid, uint32(vout))
			delete(l.outputs, op)
			delete(l.unspent, op)
		}
		for _, op := range tx.Inputs {
			l.unspent[op] = struct{}{}
		}
	}

	root := body.MerkleRoot()
	for vout := range body.Coinbase {
		op := wire.CoinbaseOutPoint(root, uint32(vout))
		delete(l.outputs, op)
		delete(l.unspent, op)
	}

	delete(l.headers, hash)
	l.blockOrder = l.blockOrder[:len(l.blockOrder)-1]

	log.Debugf("Disconnected block %s", hash)
}
