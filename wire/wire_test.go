package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/siaddr"
)

func testAddress(t *testing.T, seed byte) siaddr.Address {
	t.Helper()
	var addr siaddr.Address
	for i := range addr {
		addr[i] = seed
	}
	return addr
}

func chainhashTxid(t *testing.T, seed byte) chainhash.Txid {
	t.Helper()
	var h chainhash.Txid
	for i := range h {
		h[i] = seed
	}
	return h
}

func chainhashBlock(t *testing.T, seed byte) chainhash.BlockHash {
	t.Helper()
	var h chainhash.BlockHash
	for i := range h {
		h[i] = seed
	}
	return h
}

func chainhashMerkle(t *testing.T, seed byte) chainhash.MerkleRoot {
	t.Helper()
	var h chainhash.MerkleRoot
	for i := range h {
		h[i] = seed
	}
	return h
}

func TestTxidExcludesAuthorizations(t *testing.T) {
	tx := Transaction{
		Inputs:  []OutPoint{RegularOutPoint(chainhashTxid(t, 1), 0)},
		Outputs: []Output{RegularOutput(testAddress(t, 2), 100)},
	}
	bare := tx.Txid()

	signed := tx
	signed.Authorizations = []Authorization{{
		PublicKey: [32]byte{1, 2, 3},
		Signature: [64]byte{4, 5, 6},
	}}

	require.Equal(t, bare, signed.Txid(),
		"attaching an authorization must never change the txid")
}

func TestTxidChangesWithContent(t *testing.T) {
	tx1 := Transaction{Outputs: []Output{RegularOutput(testAddress(t, 1), 100)}}
	tx2 := Transaction{Outputs: []Output{RegularOutput(testAddress(t, 1), 200)}}

	require.NotEqual(t, tx1.Txid(), tx2.Txid())
}

func TestCanonicalEncodingIsDeterministic(t *testing.T) {
	tx := Transaction{
		Inputs: []OutPoint{
			RegularOutPoint(chainhashTxid(t, 7), 0),
			RegularOutPoint(chainhashTxid(t, 8), 1),
		},
		Outputs: []Output{
			RegularOutput(testAddress(t, 1), 50),
			WithdrawalOutput(25, 1, testAddress(t, 2), "main-address"),
		},
	}

	e1 := newEncoder()
	tx.encodeCanonical(e1)
	e2 := newEncoder()
	tx.encodeCanonical(e2)

	require.Equal(t, e1.bytes(), e2.bytes())
}

func TestBodyMerkleRootCoversCoinbaseAndTransactions(t *testing.T) {
	base := Body{
		Coinbase:     []Output{RegularOutput(testAddress(t, 1), 100)},
		Transactions: nil,
	}
	withTx := base
	withTx.Transactions = []Transaction{{
		Outputs: []Output{RegularOutput(testAddress(t, 2), 10)},
	}}

	require.NotEqual(t, base.MerkleRoot(), withTx.MerkleRoot())

	otherCoinbase := base
	otherCoinbase.Coinbase = []Output{RegularOutput(testAddress(t, 1), 99)}
	require.NotEqual(t, base.MerkleRoot(), otherCoinbase.MerkleRoot())
}

func TestHeaderHashCoversEveryField(t *testing.T) {
	h := Header{
		PrevSideBlockHash: chainhashBlock(t, 1),
		PrevMainBlockHash: chainhashBlock(t, 2),
		MerkleRoot:        chainhashMerkle(t, 3),
	}
	mutated := h
	mutated.PrevMainBlockHash = chainhashBlock(t, 9)

	require.NotEqual(t, h.Hash(), mutated.Hash())

	mutated = h
	mutated.PrevSideBlockHash = chainhashBlock(t, 9)
	require.NotEqual(t, h.Hash(), mutated.Hash())

	mutated = h
	mutated.MerkleRoot = chainhashMerkle(t, 9)
	require.NotEqual(t, h.Hash(), mutated.Hash())
}

func TestOutPointKindsAreDistinctOutpoints(t *testing.T) {
	txid := chainhashTxid(t, 1)
	root := chainhashMerkle(t, 1)

	regular := RegularOutPoint(txid, 0)
	coinbase := CoinbaseOutPoint(root, 0)

	require.NotEqual(t, regular, coinbase,
		"same raw bytes under different kinds must not collide as map keys")
}
