// Package input implements signature creation and verification over
// the Ed25519 signing-domain the ledger core uses to authorize
// spending a transaction's inputs.
package input

import (
	"golang.org/x/crypto/ed25519"

	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/wire"
)

// Sign produces an Authorization over txid under priv. The message
// signed is always the raw 32 bytes of the signing-image txid, never
// the full transaction: mutating a transaction's Authorizations slice
// must never invalidate signatures already collected for it.
func Sign(priv ed25519.PrivateKey, txid chainhash.Txid) wire.Authorization {
	hash := chainhash.Hash(txid)
	sig := ed25519.Sign(priv, hash[:])

	var auth wire.Authorization
	copy(auth.PublicKey[:], priv.Public().(ed25519.PublicKey))
	copy(auth.Signature[:], sig)
	return auth
}

// Verify reports whether auth is a valid signature over txid.
func Verify(auth wire.Authorization, txid chainhash.Txid) bool {
	hash := chainhash.Hash(txid)
	return ed25519.Verify(
		ed25519.PublicKey(auth.PublicKey[:]),
		hash[:],
		auth.Signature[:],
	)
}
