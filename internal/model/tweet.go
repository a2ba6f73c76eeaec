// Package model defines the core tweet data types.
package model

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// PubkeyLength is the size of a public identity in bytes.
const PubkeyLength = 32

// Pubkey is a 32-byte public identity. Its text form is base58.
type Pubkey [PubkeyLength]byte

// ParsePubkey decodes a base58 public key.
func ParsePubkey(s string) (Pubkey, error) {
	var pk Pubkey
	b, err := base58.Decode(s)
	if err != nil {
		return pk, fmt.Errorf("invalid pubkey %q: %w", s, err)
	}
	if len(b) != PubkeyLength {
		return pk, fmt.Errorf("invalid pubkey %q: decoded to %d bytes, want %d", s, len(b), PubkeyLength)
	}
	copy(pk[:], b)
	return pk, nil
}

// PubkeyFromBytes copies b into a Pubkey. b must be exactly 32 bytes.
func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var pk Pubkey
	if len(b) != PubkeyLength {
		return pk, fmt.Errorf("invalid pubkey length %d, want %d", len(b), PubkeyLength)
	}
	copy(pk[:], b)
	return pk, nil
}

func (pk Pubkey) String() string {
	return base58.Encode(pk[:])
}

// IsZero reports whether pk is the all-zero key.
func (pk Pubkey) IsZero() bool {
	return pk == Pubkey{}
}

// MarshalText implements encoding.TextMarshaler, so JSON carries the base58 form.
func (pk Pubkey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *Pubkey) UnmarshalText(text []byte) error {
	parsed, err := ParsePubkey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// Tweet is a persisted, immutable post.
type Tweet struct {
	Address   string `json:"address,omitempty"`
	Author    Pubkey `json:"author"`
	Timestamp int64  `json:"timestamp"`
	Topic     string `json:"topic"`
	Content   string `json:"content"`
}
