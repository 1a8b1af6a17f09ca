package input

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/decred/dcrsidechain/siaddr"
)

// GenerateKey is an adapted version of ed25519.GenerateKey that also
// returns the siaddr.Address the new key authorizes, saving callers
// (tests and the CLI's keygen path) the extra derivation step.
func GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, siaddr.Address, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, siaddr.Address{}, err
	}
	return pub, priv, siaddr.FromPublicKey(pub), nil
}
