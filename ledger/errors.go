package ledger

import (
	"fmt"

	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/wire"
)

// OutputDoesNotExistError reports that an input names an outpoint the
// ledger has never seen.
type OutputDoesNotExistError struct {
	OutPoint wire.OutPoint
}

func (e *OutputDoesNotExistError) Error() string {
	return fmt.Sprintf("ledger: output %s does not exist", e.OutPoint)
}

// OutputSpentError reports that an input names an outpoint that exists
// but is not currently unspent: distinct from OutputDoesNotExistError
// because the two call for different client-side diagnostics.
type OutputSpentError struct {
	OutPoint wire.OutPoint
}

func (e *OutputSpentError) Error() string {
	return fmt.Sprintf("ledger: output %s is already spent", e.OutPoint)
}

// PrevHashMismatchError reports that a header does not extend the
// ledger's current tip.
type PrevHashMismatchError struct {
	Expected chainhash.BlockHash
	Found    chainhash.BlockHash
}

func (e *PrevHashMismatchError) Error() string {
	return fmt.Sprintf("ledger: header extends %s, tip is %s", e.Found, e.Expected)
}

// MerkleRootMismatchError reports that a header's merkle root does not
// commit to the body it was delivered with.
type MerkleRootMismatchError struct {
	Expected chainhash.MerkleRoot
	Found    chainhash.MerkleRoot
}

func (e *MerkleRootMismatchError) Error() string {
	return fmt.Sprintf("ledger: header commits to %s, body computes %s", e.Expected, e.Found)
}
