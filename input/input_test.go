package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/wire"
)

func timeoutChan(t *testing.T) <-chan time.Time {
	t.Helper()
	return time.After(5 * time.Second)
}

func testTxid(seed byte) chainhash.Txid {
	var h chainhash.Txid
	for i := range h {
		h[i] = seed
	}
	return h
}

func TestSignVerifyRoundTrip(t *testing.T) {
	_, priv, _, err := GenerateKey()
	require.NoError(t, err)

	txid := testTxid(1)
	auth := Sign(priv, txid)

	require.True(t, Verify(auth, txid))
	require.False(t, Verify(auth, testTxid(2)),
		"a signature over one txid must not verify against another")
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	_, priv, _, err := GenerateKey()
	require.NoError(t, err)
	_, _, _, err = GenerateKey()
	require.NoError(t, err)

	txid := testTxid(1)
	auth := Sign(priv, txid)
	auth.PublicKey[0] ^= 0xff

	require.False(t, Verify(auth, txid))
}

func TestVerifyBatchEmpty(t *testing.T) {
	require.NoError(t, VerifyBatch(nil))
	require.NoError(t, VerifyBatch([]wire.Transaction{{}}))
}

func TestVerifyBatchEquivalentToPerSignature(t *testing.T) {
	const numTx = 5
	txs := make([]wire.Transaction, numTx)
	for i := range txs {
		_, priv, _, err := GenerateKey()
		require.NoError(t, err)

		tx := wire.Transaction{
			Inputs: []wire.OutPoint{wire.RegularOutPoint(testTxid(byte(i)), 0)},
		}
		auth := Sign(priv, tx.Txid())
		tx.Authorizations = []wire.Authorization{auth}
		txs[i] = tx
	}

	require.NoError(t, VerifyBatch(txs))

	for _, tx := range txs {
		for _, auth := range tx.Authorizations {
			require.True(t, Verify(auth, tx.Txid()))
		}
	}
}

func TestVerifyBatchReportsFailingIndex(t *testing.T) {
	_, priv1, _, err := GenerateKey()
	require.NoError(t, err)
	_, priv2, _, err := GenerateKey()
	require.NoError(t, err)

	tx0 := wire.Transaction{Inputs: []wire.OutPoint{wire.RegularOutPoint(testTxid(1), 0)}}
	tx0.Authorizations = []wire.Authorization{Sign(priv1, tx0.Txid())}

	tx1 := wire.Transaction{Inputs: []wire.OutPoint{wire.RegularOutPoint(testTxid(2), 0)}}
	badAuth := Sign(priv2, tx1.Txid())
	badAuth.Signature[0] ^= 0xff
	tx1.Authorizations = []wire.Authorization{badAuth}

	err = VerifyBatch([]wire.Transaction{tx0, tx1})
	require.Error(t, err)

	var sigErr *InvalidSignatureError
	require.ErrorAs(t, err, &sigErr)
	require.Equal(t, 1, sigErr.TxIndex)
	require.Equal(t, 0, sigErr.AuthIndex)
}

func TestVerifyBatchConcurrentDoesNotDeadlock(t *testing.T) {
	// Many transactions each with a deliberately invalid signature:
	// every worker finds a failure almost immediately, which is the
	// scenario that would deadlock an unbuffered-channel feeder.
	const numTx = 64
	txs := make([]wire.Transaction, numTx)
	for i := range txs {
		_, priv, _, err := GenerateKey()
		require.NoError(t, err)

		tx := wire.Transaction{Inputs: []wire.OutPoint{wire.RegularOutPoint(testTxid(byte(i)), 0)}}
		auth := Sign(priv, tx.Txid())
		auth.Signature[0] ^= 0xff
		tx.Authorizations = []wire.Authorization{auth}
		txs[i] = tx
	}

	done := make(chan error, 1)
	go func() {
		done <- VerifyBatch(txs)
	}()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-timeoutChan(t):
		t.Fatal("VerifyBatch did not return, suspected deadlock")
	}
}
