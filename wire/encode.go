package wire

import (
	"bytes"
	"encoding/binary"

	goerrors "github.com/go-errors/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/decred/dcrsidechain/chainhash"
)

// Hash256 is the one canonical content digest used for txid, merkle
// root, and block hash throughout the core. BLAKE2b-256 was chosen over
// SHA-256 (both appear in variants of the reference design) because it
// is the hash family the rest of this module's dependency stack already
// pulls in; see DESIGN.md. This choice is consensus-critical: changing
// it changes every Txid, MerkleRoot, and BlockHash value that has ever
// been computed.
func Hash256(b []byte) chainhash.Hash {
	return blake2b.Sum256(b)
}

// encoder accumulates a canonical, deterministic byte encoding: fixed
// width little-endian integers and length-prefixed variable-length
// fields, mirroring the field-order discipline dcrd's own wire package
// uses for MsgTx. A write against the underlying bytes.Buffer can never
// fail; if it somehow does, that is a programming error (e.g. a type
// implementing encode incorrectly), not a user-facing one, and it
// aborts the process per the encoding contract.
type encoder struct {
	buf bytes.Buffer
}

func newEncoder() *encoder {
	return &encoder{}
}

func (e *encoder) mustWrite(err error) {
	if err != nil {
		panic(goerrors.Wrap(err, 1))
	}
}

func (e *encoder) writeUint8(v uint8) {
	e.mustWrite(e.buf.WriteByte(v))
}

func (e *encoder) writeUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := e.buf.Write(b[:])
	e.mustWrite(err)
}

func (e *encoder) writeUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := e.buf.Write(b[:])
	e.mustWrite(err)
}

// writeVarInt writes a length prefix for a variable-length sequence.
// Counts in this core are bounded by block/body size, so a plain
// uint64 prefix (rather than a multi-byte varint encoding) keeps the
// encoder simple without affecting determinism.
func (e *encoder) writeVarInt(n int) {
	e.writeUint64(uint64(n))
}

func (e *encoder) writeBytes(b []byte) {
	e.writeVarInt(len(b))
	_, err := e.buf.Write(b)
	e.mustWrite(err)
}

func (e *encoder) writeHash(h chainhash.Hash) {
	_, err := e.buf.Write(h[:])
	e.mustWrite(err)
}

func (e *encoder) bytes() []byte {
	return e.buf.Bytes()
}

// canonicalEncoder is implemented by every content-addressed type in
// this package.
type canonicalEncoder interface {
	encodeCanonical(e *encoder)
}

// hashOf computes the canonical content hash of v.
func hashOf(v canonicalEncoder) chainhash.Hash {
	e := newEncoder()
	v.encodeCanonical(e)
	return Hash256(e.bytes())
}
