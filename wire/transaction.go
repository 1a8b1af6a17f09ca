package wire

import (
	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/siaddr"
)

// Authorization attests that the holder of PublicKey approved the
// transaction it is attached to.
type Authorization struct {
	PublicKey [32]byte
	Signature [64]byte
}

// GetAddress returns the address this authorization attests to own an
// input: the canonical content hash of the public key.
func (a Authorization) GetAddress() siaddr.Address {
	return siaddr.FromPublicKey(a.PublicKey[:])
}

// Transaction moves value from existing outputs (Inputs) to new ones
// (Outputs), authorized per-input by the parallel Authorizations slice:
// Authorizations[i] must authorize spending the output at Inputs[i].
type Transaction struct {
	Inputs         []OutPoint
	Outputs        []Output
	Authorizations []Authorization
}

// SigningImage returns a copy of tx with Authorizations cleared (not
// deleted from the struct shape, cleared to an empty slice) — the
// exact byte image that signatures in Authorizations must cover. Its
// content hash is the Txid.
func (tx Transaction) SigningImage() Transaction {
	return Transaction{
		Inputs:  tx.Inputs,
		Outputs: tx.Outputs,
	}
}

// Txid returns the content hash of the transaction's signing image.
// Mutating Authorizations never changes Txid, by construction.
func (tx Transaction) Txid() chainhash.Txid {
	return chainhash.Txid(hashOf(tx.SigningImage()))
}

func (tx Transaction) encodeCanonical(e *encoder) {
	e.writeVarInt(len(tx.Inputs))
	for _, in := range tx.Inputs {
		in.encodeCanonical(e)
	}
	e.writeVarInt(len(tx.Outputs))
	for _, out := range tx.Outputs {
		out.encodeCanonical(e)
	}
	e.writeVarInt(len(tx.Authorizations))
	for _, auth := range tx.Authorizations {
		e.buf.Write(auth.PublicKey[:])
		e.buf.Write(auth.Signature[:])
	}
}
