package wire

import (
	"fmt"

	dcrdwire "github.com/decred/dcrd/wire"

	"github.com/decred/dcrsidechain/chainhash"
)

// MainOutPoint is a main-chain outpoint, carried verbatim from a
// deposit event. It is the real Decred wire.OutPoint type: a deposit's
// origin is main-chain data, not sidechain data, so it is represented
// exactly the way the main chain's own tooling represents it.
type MainOutPoint = dcrdwire.OutPoint

// OutPointKind discriminates the origin of an OutPoint.
type OutPointKind uint8

const (
	// OutPointRegular identifies an output produced by a sidechain
	// transaction.
	OutPointRegular OutPointKind = iota

	// OutPointCoinbase identifies an output produced by a block
	// body's coinbase, keyed by the body's merkle root rather than
	// the header hash so the outpoint is stable under an alternative
	// header wrapping the same body.
	OutPointCoinbase

	// OutPointDeposit identifies an output produced by a main-chain
	// deposit event.
	OutPointDeposit
)

func (k OutPointKind) String() string {
	switch k {
	case OutPointRegular:
		return "regular"
	case OutPointCoinbase:
		return "coinbase"
	case OutPointDeposit:
		return "deposit"
	default:
		return fmt.Sprintf("outpoint-kind(%d)", uint8(k))
	}
}

// OutPoint identifies an output uniquely across its origin. It is a Go
// struct standing in for the tagged union of the data model: exactly
// one of the Txid/MerkleRoot/Main fields is meaningful, selected by
// Kind. All fields are comparable, so OutPoint is usable directly as a
// map key.
type OutPoint struct {
	Kind       OutPointKind
	Txid       chainhash.Txid
	MerkleRoot chainhash.MerkleRoot
	Vout       uint32
	Main       MainOutPoint
}

// RegularOutPoint returns the outpoint of output index vout of the
// transaction identified by txid.
func RegularOutPoint(txid chainhash.Txid, vout uint32) OutPoint {
	return OutPoint{Kind: OutPointRegular, Txid: txid, Vout: vout}
}

// CoinbaseOutPoint returns the outpoint of coinbase output index vout
// of the body whose merkle root is root.
func CoinbaseOutPoint(root chainhash.MerkleRoot, vout uint32) OutPoint {
	return OutPoint{Kind: OutPointCoinbase, MerkleRoot: root, Vout: vout}
}

// DepositOutPoint returns the outpoint of a deposit originating from
// the given main-chain outpoint.
func DepositOutPoint(main MainOutPoint) OutPoint {
	return OutPoint{Kind: OutPointDeposit, Main: main}
}

// String returns a human-readable representation of the outpoint,
// useful in logs and error messages.
func (op OutPoint) String() string {
	switch op.Kind {
	case OutPointRegular:
		return fmt.Sprintf("regular(%s:%d)", op.Txid, op.Vout)
	case OutPointCoinbase:
		return fmt.Sprintf("coinbase(%s:%d)", op.MerkleRoot, op.Vout)
	case OutPointDeposit:
		return fmt.Sprintf("deposit(%s)", op.Main)
	default:
		return fmt.Sprintf("outpoint(invalid kind %d)", op.Kind)
	}
}

func (op OutPoint) encodeCanonical(e *encoder) {
	e.writeUint8(uint8(op.Kind))
	switch op.Kind {
	case OutPointRegular:
		e.writeHash(chainhash.Hash(op.Txid))
		e.writeUint32(op.Vout)
	case OutPointCoinbase:
		e.writeHash(chainhash.Hash(op.MerkleRoot))
		e.writeUint32(op.Vout)
	case OutPointDeposit:
		e.writeHash(op.Main.Hash)
		e.writeUint32(op.Main.Index)
		e.writeUint8(uint8(op.Main.Tree))
	}
}
