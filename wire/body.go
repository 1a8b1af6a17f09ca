package wire

import "github.com/decred/dcrsidechain/chainhash"

// Body is the transaction content of a sidechain block: a coinbase
// output set paying out at most the fees the body's transactions
// collect (there is no block subsidy), followed by the ordered
// transaction list.
type Body struct {
	Coinbase     []Output
	Transactions []Transaction
}

// MerkleRoot returns the content commitment a Header binds to. This is
// a flat hash of the canonical encoding of the whole body, not a tree:
// the core does not need individual-transaction inclusion proofs, so
// the extra structure of a real merkle tree buys nothing here. The
// field is still named MerkleRoot because it occupies the merkle root
// slot in Header and because CoinbaseOutPoint keys off it the same way
// a real merkle root would.
func (b Body) MerkleRoot() chainhash.MerkleRoot {
	return chainhash.MerkleRoot(hashOf(b))
}

func (b Body) encodeCanonical(e *encoder) {
	e.writeVarInt(len(b.Coinbase))
	for _, out := range b.Coinbase {
		out.encodeCanonical(e)
	}
	e.writeVarInt(len(b.Transactions))
	for _, tx := range b.Transactions {
		tx.encodeCanonical(e)
	}
}
