// Package store provides the account storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("store: account not found")
	ErrDataTooLarge   = errors.New("store: data exceeds account space")
	ErrInvalidSpace   = errors.New("store: space must be positive")
	ErrShortTagPrefix = errors.New("store: data shorter than type tag")
)

// TagLength is the size of the type tag every account's data begins with.
const TagLength = 8

// Account is one allocated storage slot.
type Account struct {
	Address   string    `json:"address"`
	Tag       []byte    `json:"tag"`
	Space     int       `json:"space"`
	Data      []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAccountParams holds parameters for allocating and filling a slot.
type CreateAccountParams struct {
	// Space is the slot capacity. Data shorter than Space is zero-padded.
	Space int
	Data  []byte
}

// Store defines the account storage interface.
type Store interface {
	// CreateAccount allocates a slot of p.Space bytes and writes p.Data into it
	// in a single step. Returns the created account.
	CreateAccount(ctx context.Context, p CreateAccountParams) (*Account, error)

	// GetAccount retrieves an account by address.
	GetAccount(ctx context.Context, address string) (*Account, error)

	// Close closes the store.
	Close() error
}
