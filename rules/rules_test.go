package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decred/dcrsidechain/input"
	"github.com/decred/dcrsidechain/siaddr"
	"github.com/decred/dcrsidechain/wire"
)

// owner is a real Ed25519 keypair alongside the siaddr.Address it
// authorizes, so tests can build Authorizations that genuinely satisfy
// Authorization.GetAddress() == Output.GetAddress() instead of forging
// an address that happens to share bytes with a public key.
type owner struct {
	addr siaddr.Address
	auth wire.Authorization
}

func newOwner(t *testing.T) owner {
	t.Helper()
	pub, _, addr, err := input.GenerateKey()
	require.NoError(t, err)

	var auth wire.Authorization
	copy(auth.PublicKey[:], pub)
	return owner{addr: addr, auth: auth}
}

func testAddress(t *testing.T) siaddr.Address {
	t.Helper()
	return newOwner(t).addr
}

func TestValidateTransactionMissingAuthorizations(t *testing.T) {
	tx := wire.Transaction{
		Inputs: []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(1), 0)},
	}
	_, err := ValidateTransaction(tx, []wire.Output{wire.RegularOutput(testAddress(t), 10)})

	var wantErr *MissingAuthorizationsError
	require.ErrorAs(t, err, &wantErr)
}

func TestValidateTransactionAddressMismatch(t *testing.T) {
	o := newOwner(t)
	attacker := newOwner(t)

	tx := wire.Transaction{
		Inputs:         []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(1), 0)},
		Authorizations: []wire.Authorization{attacker.auth},
	}
	_, err := ValidateTransaction(tx, []wire.Output{wire.RegularOutput(o.addr, 10)})

	var wantErr *AddressMismatchError
	require.ErrorAs(t, err, &wantErr)
}

func TestValidateTransactionAddressMismatchTakesPrecedenceOverDoubleSpent(t *testing.T) {
	o := newOwner(t)
	attacker := newOwner(t)
	op := wire.RegularOutPoint(chainhashTxid(1), 0)

	tx := wire.Transaction{
		Inputs:         []wire.OutPoint{op, op},
		Authorizations: []wire.Authorization{o.auth, attacker.auth},
	}
	_, err := ValidateTransaction(tx, []wire.Output{
		wire.RegularOutput(o.addr, 10),
		wire.RegularOutput(o.addr, 10),
	})

	var wantErr *AddressMismatchError
	require.ErrorAs(t, err, &wantErr)
}

func TestValidateTransactionDoubleSpentWithin(t *testing.T) {
	o := newOwner(t)
	op := wire.RegularOutPoint(chainhashTxid(1), 0)
	tx := wire.Transaction{
		Inputs:         []wire.OutPoint{op, op},
		Authorizations: []wire.Authorization{o.auth, o.auth},
	}
	_, err := ValidateTransaction(tx, []wire.Output{
		wire.RegularOutput(o.addr, 10),
		wire.RegularOutput(o.addr, 10),
	})

	var wantErr *DoubleSpentWithinError
	require.ErrorAs(t, err, &wantErr)
}

func TestValidateTransactionValueConservation(t *testing.T) {
	o := newOwner(t)
	tx := wire.Transaction{
		Inputs:         []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(1), 0)},
		Authorizations: []wire.Authorization{o.auth},
		Outputs:        []wire.Output{wire.RegularOutput(testAddress(t), 150)},
	}
	_, err := ValidateTransaction(tx, []wire.Output{wire.RegularOutput(o.addr, 100)})

	var wantErr *ValueInLessThanValueOutError
	require.ErrorAs(t, err, &wantErr)
}

func TestValidateTransactionFeeIsValueDelta(t *testing.T) {
	o := newOwner(t)
	tx := wire.Transaction{
		Inputs:         []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(1), 0)},
		Authorizations: []wire.Authorization{o.auth},
		Outputs:        []wire.Output{wire.RegularOutput(testAddress(t), 80)},
	}
	fee, err := ValidateTransaction(tx, []wire.Output{wire.RegularOutput(o.addr, 100)})
	require.NoError(t, err)
	require.Equal(t, uint64(20), fee)
}

func TestValidateBodyDoubleSpentAcrossTransactions(t *testing.T) {
	o := newOwner(t)
	op := wire.RegularOutPoint(chainhashTxid(1), 0)
	tx0 := wire.Transaction{Inputs: []wire.OutPoint{op}, Authorizations: []wire.Authorization{o.auth}}
	tx1 := wire.Transaction{Inputs: []wire.OutPoint{op}, Authorizations: []wire.Authorization{o.auth}}

	spent := [][]wire.Output{
		{wire.RegularOutput(o.addr, 10)},
		{wire.RegularOutput(o.addr, 10)},
	}
	_, err := ValidateBody([]wire.Transaction{tx0, tx1}, spent, nil, nil)

	var wantErr *DoubleSpentInBodyError
	require.ErrorAs(t, err, &wantErr)
}

func TestValidateBodyCoinbaseExceedsFees(t *testing.T) {
	o := newOwner(t)
	tx := wire.Transaction{
		Inputs:         []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(1), 0)},
		Authorizations: []wire.Authorization{o.auth},
		Outputs:        []wire.Output{wire.RegularOutput(testAddress(t), 95)},
	}
	spent := [][]wire.Output{{wire.RegularOutput(o.addr, 100)}}
	coinbase := []wire.Output{wire.RegularOutput(testAddress(t), 10)}

	_, err := ValidateBody([]wire.Transaction{tx}, spent, coinbase, nil)

	var wantErr *CoinbaseExceedsFeesError
	require.ErrorAs(t, err, &wantErr)
}

func TestValidateBodySumsFeesAcrossTransactions(t *testing.T) {
	o := newOwner(t)
	dest := testAddress(t)

	tx0 := wire.Transaction{
		Inputs:         []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(1), 0)},
		Authorizations: []wire.Authorization{o.auth},
		Outputs:        []wire.Output{wire.RegularOutput(dest, 90)},
	}
	tx1 := wire.Transaction{
		Inputs:         []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(2), 0)},
		Authorizations: []wire.Authorization{o.auth},
		Outputs:        []wire.Output{wire.RegularOutput(dest, 40)},
	}
	spent := [][]wire.Output{
		{wire.RegularOutput(o.addr, 100)},
		{wire.RegularOutput(o.addr, 50)},
	}

	fees, err := ValidateBody([]wire.Transaction{tx0, tx1}, spent, nil, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(20), fees)
}

type refusingHook struct{ msg string }

func (h refusingHook) CustomValidateTransaction(spent []wire.Output, tx wire.Transaction) error {
	return errors.New(h.msg)
}

func TestValidateBodyCustomHookRejects(t *testing.T) {
	o := newOwner(t)
	tx := wire.Transaction{
		Inputs:         []wire.OutPoint{wire.RegularOutPoint(chainhashTxid(1), 0)},
		Authorizations: []wire.Authorization{o.auth},
	}
	spent := [][]wire.Output{{wire.RegularOutput(o.addr, 100)}}

	_, err := ValidateBody([]wire.Transaction{tx}, spent, nil, refusingHook{msg: "application-specific refusal"})

	var wantErr *CustomRuleError
	require.ErrorAs(t, err, &wantErr)
	require.Contains(t, err.Error(), "application-specific refusal")
}

func chainhashTxid(seed byte) (h [32]byte) {
	for i := range h {
		h[i] = seed
	}
	return h
}
