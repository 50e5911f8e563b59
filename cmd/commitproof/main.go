// Command commitproof produces the encrypted commit signature, or with -open
// verifies one on the instructor side.
//
//	commitproof [-key student_private.pem] [-recipient instructor_public.pem] [-out encrypted_signature.txt] <commit_hash>
//	commitproof -open [-key instructor_private.pem] [-signer student_public.pem] [-in encrypted_signature.txt] <commit_hash>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/attestkit/pkg/envelope"
	"github.com/dmitrymomot/attestkit/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("commitproof", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		open      = fs.Bool("open", false, "verify a proof instead of producing one")
		keyPath   = fs.String("key", "", "private key PEM (student key, or instructor key with -open)")
		recipient = fs.String("recipient", "instructor_public.pem", "instructor public key PEM")
		signer    = fs.String("signer", "student_public.pem", "student public key PEM, used with -open")
		outPath   = fs.String("out", "encrypted_signature.txt", "where to write the proof; empty skips the file")
		inPath    = fs.String("in", "encrypted_signature.txt", "proof to verify, used with -open")
		verbose   = fs.Bool("v", false, "log progress to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: commitproof [flags] <commit_hash>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("exactly one commit hash is required")
	}
	commitHash := strings.TrimSpace(fs.Arg(0))

	log := logger.Discard()
	if *verbose {
		log = logger.New(logger.WithOutput(stderr), logger.WithFormat(logger.FormatText), logger.WithLevel(slog.LevelDebug))
	}

	if *open {
		path := *keyPath
		if path == "" {
			path = "instructor_private.pem"
		}
		return verify(log, commitHash, path, *signer, *inPath, stdout)
	}

	path := *keyPath
	if path == "" {
		path = "student_private.pem"
	}
	return produce(log, commitHash, path, *recipient, *outPath, stdout)
}

func produce(log *slog.Logger, commitHash, keyPath, recipientPath, outPath string, stdout io.Writer) error {
	priv, err := envelope.LoadPrivateKeyFile(keyPath)
	if err != nil {
		return err
	}
	pub, err := envelope.LoadPublicKeyFile(recipientPath)
	if err != nil {
		return err
	}
	log.Debug("keys loaded", logger.KeyBits(priv.N.BitLen()), logger.CommitHash(commitHash))

	proof, err := envelope.CommitProof(commitHash, priv, pub)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(proof), 0o644); err != nil {
			return fmt.Errorf("write proof: %w", err)
		}
		log.Debug("proof written", logger.Path(outPath))
	}
	_, err = fmt.Fprintln(stdout, proof)
	return err
}

func verify(log *slog.Logger, commitHash, keyPath, signerPath, inPath string, stdout io.Writer) error {
	priv, err := envelope.LoadPrivateKeyFile(keyPath)
	if err != nil {
		return err
	}
	pub, err := envelope.LoadPublicKeyFile(signerPath)
	if err != nil {
		return err
	}
	proof, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read proof: %w", err)
	}

	if err := envelope.OpenCommitProof(strings.TrimSpace(string(proof)), commitHash, priv, pub); err != nil {
		return err
	}
	log.Debug("proof verified", logger.CommitHash(commitHash))
	_, err = fmt.Fprintln(stdout, "OK: signature valid for", commitHash)
	return err
}
