package input

import (
	"fmt"
	"runtime"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/sync/errgroup"

	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/wire"
)

// InvalidSignatureError reports that the signature at position Index
// in the flattened (transaction, authorization) batch failed Ed25519
// verification. TxIndex and AuthIndex locate it within the original
// txs/Authorizations slices for callers that need to report back which
// transaction and input were at fault.
type InvalidSignatureError struct {
	Index     int
	TxIndex   int
	AuthIndex int
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("invalid signature at batch index %d (tx %d, auth %d)",
		e.Index, e.TxIndex, e.AuthIndex)
}

// VerifyBatch checks every authorization attached to every transaction
// in txs in a single data-parallel pass. It is semantically equivalent
// to calling Verify once per (transaction, authorization) pair — same
// messages, same keys, same signatures — batching only changes how the
// work is scheduled, never what it checks.
//
// Go's Ed25519 implementation has no native batch-verification entry
// point (unlike, for example, ed25519_dalek's verify_batch), so the
// "batch" here is a worker pool fanning individual ed25519.Verify calls
// out across GOMAXPROCS goroutines rather than a single combined
// cryptographic check. The caller-visible contract — equivalence to
// per-signature verification, and which input failed when it doesn't
// hold — is unaffected by that implementation detail.
func VerifyBatch(txs []wire.Transaction) error {
	type job struct {
		batchIndex, txIndex, authIndex int
		txid                           chainhash.Txid
		auth                           wire.Authorization
	}

	var jobs []job
	for ti, tx := range txs {
		txid := tx.Txid()
		for ai, auth := range tx.Authorizations {
			jobs = append(jobs, job{
				batchIndex: len(jobs),
				txIndex:    ti,
				authIndex:  ai,
				txid:       txid,
				auth:       auth,
			})
		}
	}
	if len(jobs) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}

	// Buffered to the full job count so a worker that returns early on
	// the first bad signature it sees can never deadlock the feeder.
	jobCh := make(chan job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := range jobCh {
				hash := chainhash.Hash(j.txid)
				if !ed25519.Verify(ed25519.PublicKey(j.auth.PublicKey[:]), hash[:], j.auth.Signature[:]) {
					return &InvalidSignatureError{Index: j.batchIndex, TxIndex: j.txIndex, AuthIndex: j.authIndex}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Debugf("Batch verification failed: %v", err)
		return err
	}

	log.Tracef("Verified %d signatures across %d transactions using %d workers",
		len(jobs), len(txs), workers)
	return nil
}
