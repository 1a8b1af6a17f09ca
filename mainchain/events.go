// Package mainchain gives concrete Go shape to the main-chain driver
// boundary: the deposit, lock, and unlock events a parent-chain client
// reports per main-chain block, and the outpoints those events name.
package mainchain

import "github.com/decred/dcrsidechain/wire"

// OutPoint identifies an output on the main chain, the same type the
// sidechain outpoint's Deposit variant carries in its Main field.
type OutPoint = wire.MainOutPoint

// DepositEvent is a new sidechain output funded by a main-chain
// transaction locking value to a sidechain address.
type DepositEvent struct {
	Main   OutPoint
	Output wire.Output
}

// LockEvent reports that the main chain has confirmed (locked) a
// pending withdrawal: the withdrawal output leaves the sidechain's
// spendable set but is retained in the output store for reversibility.
type LockEvent struct {
	OutPoint wire.OutPoint
}

// UnlockEvent reports that a main-chain reorg undid a previously
// locked withdrawal: the withdrawal output becomes spendable again.
type UnlockEvent struct {
	OutPoint wire.OutPoint
	Output   wire.Output
}

// BlockEvents aggregates every main-chain event observed in one
// main-chain block, in the order ledger.ConnectMainBlock and
// ledger.DisconnectMainBlock expect.
type BlockEvents struct {
	Deposits []DepositEvent
	Locked   []LockEvent
	Unlocked []UnlockEvent
}
