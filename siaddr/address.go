// Package siaddr implements sidechain address encoding: the 32-byte
// public-key-hash digest, its Base58Check wire form, and the
// sidechain-tagged "deposit string" form used to route main-chain
// deposits to a side address.
package siaddr

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/decred/base58"
	"golang.org/x/crypto/blake2b"
)

// Size is the number of bytes in an Address.
const Size = 32

// ThisSidechain is the sidechain slot number advertised in deposit
// strings. A real deployment would thread this through from chain
// parameters; the core hard-codes slot 0 the way the reference
// implementation's THIS_SIDECHAIN constant does, since slot assignment
// is a main-chain-client concern outside this package's scope.
const ThisSidechain = 0

// Address is the 32-byte digest of a public key that owns an output.
type Address [Size]byte

// String returns the Base58Check encoding of the address.
func (a Address) String() string {
	return base58.CheckEncode(a[:], 0)
}

// DepositString returns the sidechain-tagged deposit form used by
// main-chain wallets to route a deposit to this address:
// "s<N>_<base58check>_<hex6>" where hex6 is the first 6 hex digits of
// the SHA-256 digest of the bare "s<N>_<base58check>_" prefix.
func (a Address) DepositString() string {
	prefix := fmt.Sprintf("s%d_%s_", ThisSidechain, a.String())
	sum := sha256.Sum256([]byte(prefix))
	return prefix + hex.EncodeToString(sum[:])[:6]
}

// ParseAddress decodes a Base58Check address string produced by
// Address.String.
func ParseAddress(s string) (Address, error) {
	decoded, _, err := base58.CheckDecode(s)
	if err != nil {
		return Address{}, fmt.Errorf("siaddr: invalid address %q: %w", s, err)
	}
	if len(decoded) != Size {
		return Address{}, fmt.Errorf("siaddr: invalid address %q: decoded to %d bytes, want %d",
			s, len(decoded), Size)
	}
	var addr Address
	copy(addr[:], decoded)
	return addr, nil
}

// FromPublicKey returns the address that owns outputs spendable by the
// given Ed25519 public key: the canonical content hash (BLAKE2b-256,
// see wire.Hash256) of the raw key bytes. The deposit-string checksum
// above deliberately uses SHA-256 instead: it is a display-layer
// convenience independent of the consensus hash, not a consensus value.
func FromPublicKey(pub []byte) Address {
	return Address(blake2b.Sum256(pub))
}
