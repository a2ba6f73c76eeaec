// Package identity manages the local ed25519 keypair whose public key is
// recorded as a tweet's author.
package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rcliao/tweet-ledger/internal/model"
)

var ErrKeypairExists = errors.New("identity: keypair file already exists")

// Keypair is an ed25519 key. On disk it is a JSON array of the 64 private
// key bytes (seed followed by public key).
type Keypair struct {
	priv ed25519.PrivateKey
}

// Generate creates a keypair from r, or crypto/rand when r is nil.
func Generate(r io.Reader) (*Keypair, error) {
	if r == nil {
		r = rand.Reader
	}
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &Keypair{priv: priv}, nil
}

// FromBytes builds a keypair from the 64-byte private key encoding and
// checks that its public half matches the seed.
func FromBytes(b []byte) (*Keypair, error) {
	if len(b) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("keypair must be %d bytes, got %d", ed25519.PrivateKeySize, len(b))
	}
	priv := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if !priv.Public().(ed25519.PublicKey).Equal(ed25519.PublicKey(b[ed25519.SeedSize:])) {
		return nil, errors.New("keypair public key does not match seed")
	}
	return &Keypair{priv: priv}, nil
}

// Pubkey returns the caller identity.
func (k *Keypair) Pubkey() model.Pubkey {
	var pk model.Pubkey
	copy(pk[:], k.priv.Public().(ed25519.PublicKey))
	return pk
}

// Load reads a keypair file.
func Load(path string) (*Keypair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keypair: %w", err)
	}
	var ints []int
	if err := json.Unmarshal(raw, &ints); err != nil {
		return nil, fmt.Errorf("parse keypair %s: %w", path, err)
	}
	b := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("parse keypair %s: byte %d out of range: %d", path, i, v)
		}
		b[i] = byte(v)
	}
	return FromBytes(b)
}

// Save writes the keypair to path with owner-only permissions. It refuses to
// replace an existing file unless overwrite is set.
func (k *Keypair) Save(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrKeypairExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create keypair dir: %w", err)
	}

	// Marshal as numbers; []byte would become base64.
	ints := make([]int, len(k.priv))
	for i, v := range k.priv {
		ints[i] = int(v)
	}
	b, _ := json.Marshal(ints)
	return os.WriteFile(path, b, 0o600)
}
