// Command sidechainctl is a thin convenience wrapper around the
// dcrsidechain validation library: it generates keys and addresses and
// produces/checks the Ed25519 authorizations the ledger core expects,
// but it has no network, storage, or peg logic of its own. A real
// deployment wires dcrsidechain's packages into its own node; this
// binary exists only so the library has a command-line entry point to
// exercise during development.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/decred/dcrsidechain"
	"github.com/decred/dcrsidechain/build"
	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/config"
	"github.com/decred/dcrsidechain/input"
	"github.com/decred/dcrsidechain/siaddr"
	"github.com/decred/dcrsidechain/wire"
)

func main() {
	app := cli.NewApp()
	app.Name = "sidechainctl"
	app.Usage = "inspect and exercise the dcrsidechain validation core"
	app.Commands = []cli.Command{
		genKeyCommand,
		addressCommand,
		signCommand,
		verifyCommand,
	}
	app.Before = setupLogging

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging loads the on-disk/flag config and wires it into the
// library's subsystem loggers before any command runs, mirroring the
// teacher's pattern of initializing logging ahead of any RPC call.
func setupLogging(ctx *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := build.NewRotatingLogWriter()
	if !cfg.NoFileLogging {
		if err := root.InitLogRotator(cfg.LogFile(), cfg.MaxLogFileSize, cfg.MaxLogFiles); err != nil {
			return fmt.Errorf("initializing log rotator: %w", err)
		}
	}

	dcrsidechain.SetupLoggers(root)
	for _, part := range strings.Split(cfg.DebugLevel, ",") {
		if subsystem, level, ok := strings.Cut(part, "="); ok {
			root.SetLogLevel(subsystem, level)
		} else {
			root.SetLogLevels(part)
		}
	}
	return nil
}

// actionDecorator wraps a cli.ActionFunc so command implementations can
// return plain errors without each one duplicating cli.NewExitError
// boilerplate.
func actionDecorator(f func(*cli.Context) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		if err := f(c); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}
}

var genKeyCommand = cli.Command{
	Name:   "genkey",
	Usage:  "Generate an Ed25519 keypair and its sidechain address.",
	Action: actionDecorator(genKey),
}

func genKey(ctx *cli.Context) error {
	pub, priv, addr, err := input.GenerateKey()
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	fmt.Printf("private key: %s\n", hex.EncodeToString(priv))
	fmt.Printf("public key:  %s\n", hex.EncodeToString(pub))
	fmt.Printf("address:     %s\n", addr)
	fmt.Printf("deposit:     %s\n", addr.DepositString())
	return nil
}

var addressCommand = cli.Command{
	Name:      "address",
	Usage:     "Derive the sidechain address owned by a hex-encoded public key.",
	ArgsUsage: "pubkey-hex",
	Action:    actionDecorator(address),
}

func address(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "address")
	}

	pub, err := hex.DecodeString(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}

	addr := siaddr.FromPublicKey(pub)
	fmt.Printf("address: %s\n", addr)
	fmt.Printf("deposit: %s\n", addr.DepositString())
	return nil
}

var signCommand = cli.Command{
	Name:      "sign",
	Usage:     "Sign a transaction id (hex) with a hex-encoded Ed25519 private key.",
	ArgsUsage: "privkey-hex txid-hex",
	Action:    actionDecorator(sign),
}

func sign(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.ShowCommandHelp(ctx, "sign")
	}

	priv, err := hex.DecodeString(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}

	txid, err := parseTxid(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	auth := input.Sign(ed25519.PrivateKey(priv), txid)
	fmt.Printf("public key: %s\n", hex.EncodeToString(auth.PublicKey[:]))
	fmt.Printf("signature:  %s\n", hex.EncodeToString(auth.Signature[:]))
	return nil
}

var verifyCommand = cli.Command{
	Name:      "verify",
	Usage:     "Verify a hex-encoded signature against a txid and public key.",
	ArgsUsage: "pubkey-hex signature-hex txid-hex",
	Action:    actionDecorator(verify),
}

func verify(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return cli.ShowCommandHelp(ctx, "verify")
	}

	pub, err := hex.DecodeString(ctx.Args().Get(0))
	if err != nil || len(pub) != 32 {
		return fmt.Errorf("invalid public key")
	}
	sig, err := hex.DecodeString(ctx.Args().Get(1))
	if err != nil || len(sig) != 64 {
		return fmt.Errorf("invalid signature")
	}
	txid, err := parseTxid(ctx.Args().Get(2))
	if err != nil {
		return err
	}

	var auth wire.Authorization
	copy(auth.PublicKey[:], pub)
	copy(auth.Signature[:], sig)

	if !input.Verify(auth, txid) {
		return fmt.Errorf("signature does not verify")
	}

	fmt.Println("ok")
	return nil
}

// parseTxid decodes s as plain forward hex, matching the byte order
// chainhash.Txid.String() produces — not the byte-reversed convention
// block explorers use for display.
func parseTxid(s string) (chainhash.Txid, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return chainhash.Txid{}, fmt.Errorf("invalid txid: %w", err)
	}
	if len(b) != len(chainhash.Txid{}) {
		return chainhash.Txid{}, fmt.Errorf("invalid txid: expected %d bytes, got %d",
			len(chainhash.Txid{}), len(b))
	}

	var txid chainhash.Txid
	copy(txid[:], b)
	return txid, nil
}
