package mainchain

import (
	dcrdchainhash "github.com/decred/dcrd/chaincfg/chainhash"
)

// Driver is the boundary a main-chain watcher implements to feed
// ledger.ConnectMainBlock/DisconnectMainBlock. It is the peg-facing
// analogue of a wallet's raw block/UTXO interface: instead of exposing
// raw blocks and UTXOs for a wallet to scan, it exposes the main chain
// strictly as a sequence of BlockEvents, since the ledger core never
// parses main-chain transactions or scripts itself. A real
// implementation watches dcrd (or an SPV peer) for blocks touching
// sidechain deposit/withdrawal scripts and translates them into
// BlockEvents.
type Driver interface {
	// GetBestBlock returns the hash and height of the main chain's
	// current tip, as observed by this driver.
	GetBestBlock() (*dcrdchainhash.Hash, int64, error)

	// GetBlockHash returns the hash of the main-chain block at the
	// given height.
	GetBlockHash(height int64) (*dcrdchainhash.Hash, error)

	// GetBlockEvents returns the deposit, lock, and unlock events a
	// single main-chain block produced. Callers feed the result
	// directly to ledger.ConnectMainBlock.
	GetBlockEvents(blockHash *dcrdchainhash.Hash) (BlockEvents, error)
}
