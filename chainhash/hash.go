// Package chainhash defines the nominal hash types used throughout the
// sidechain ledger core. The underlying 32-byte array comes from
// decred's chainhash package so that hex display and (de)serialization
// conventions line up with the rest of the Decred ecosystem; the
// nominal wrapper types on top are specific to this module and are not
// interchangeable with one another, per the data model.
package chainhash

import (
	"encoding/hex"
	"encoding/json"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// Hash is the 32-byte digest produced by the canonical content hash.
// It is the base type that BlockHash, MerkleRoot, and Txid are built
// from; none of those three are assignable to one another even though
// they share this representation.
type Hash = chainhash.Hash

// HashSize is the number of bytes in a Hash.
const HashSize = chainhash.HashSize

// ZeroHash is the all-zero Hash, used as the genesis sentinel.
var ZeroHash Hash

// BlockHash identifies a committed sidechain block by the hash of its
// header.
type BlockHash Hash

// String returns the hex encoding of the hash.
func (h BlockHash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the genesis sentinel.
func (h BlockHash) IsZero() bool {
	return h == BlockHash(ZeroHash)
}

// MarshalJSON implements json.Marshaler.
func (h BlockHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// MerkleRoot commits to the coinbase outputs and transactions of a
// body. This design uses a flat hash commitment rather than a binary
// Merkle tree; see the Body.MerkleRoot doc comment in the wire package.
type MerkleRoot Hash

// String returns the hex encoding of the hash.
func (h MerkleRoot) String() string {
	return hex.EncodeToString(h[:])
}

// Txid identifies a transaction by the content hash of its signing
// image (the transaction with Authorizations cleared).
type Txid Hash

// String returns the hex encoding of the hash.
func (h Txid) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalJSON implements json.Marshaler.
func (h Txid) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
