package wire

import "github.com/decred/dcrsidechain/chainhash"

// Header links a sidechain block to its sidechain parent and to the
// main-chain block it was produced against, and commits to the body's
// content via MerkleRoot.
type Header struct {
	PrevSideBlockHash chainhash.BlockHash
	PrevMainBlockHash chainhash.BlockHash
	MerkleRoot        chainhash.MerkleRoot
}

// Hash returns the block hash identifying this header.
func (h Header) Hash() chainhash.BlockHash {
	return chainhash.BlockHash(hashOf(h))
}

func (h Header) encodeCanonical(e *encoder) {
	e.writeHash(chainhash.Hash(h.PrevSideBlockHash))
	e.writeHash(chainhash.Hash(h.PrevMainBlockHash))
	e.writeHash(chainhash.Hash(h.MerkleRoot))
}
