package tweet

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rcliao/tweet-ledger/internal/model"
	"github.com/rcliao/tweet-ledger/internal/schema"
	"github.com/rcliao/tweet-ledger/internal/store"
)

// SendParams holds parameters for sending a tweet.
type SendParams struct {
	// Author must already be authenticated by the caller.
	Author  model.Pubkey
	Topic   string
	Content string
}

// Service creates and fetches tweet accounts.
type Service struct {
	store store.Store
	clock Clock
	log   zerolog.Logger
}

// NewService returns a Service writing to st. A nil clock uses SystemClock.
func NewService(st store.Store, clock Clock, log zerolog.Logger) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{store: st, clock: clock, log: log}
}

// Send validates the input and persists a new tweet in one freshly allocated
// slot. Nothing is written when validation or the clock fails.
func (s *Service) Send(ctx context.Context, p SendParams) (*model.Tweet, error) {
	t, err := Create(p.Author, p.Topic, p.Content, s.clock)
	if err != nil {
		if code, ok := CodeOf(err); ok {
			s.log.Debug().Str("author", p.Author.String()).Uint32("code", uint32(code)).Msg("tweet rejected")
		}
		return nil, err
	}

	data, err := schema.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tweet: %w", err)
	}

	acct, err := s.store.CreateAccount(ctx, store.CreateAccountParams{
		Space: schema.TweetLen,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	t.Address = acct.Address
	s.log.Debug().
		Str("address", t.Address).
		Str("author", t.Author.String()).
		Int64("timestamp", t.Timestamp).
		Int("bytes", schema.EncodedLen(t)).
		Msg("tweet created")
	return &t, nil
}

// Get fetches and decodes the tweet stored at address.
func (s *Service) Get(ctx context.Context, address string) (*model.Tweet, error) {
	acct, err := s.store.GetAccount(ctx, address)
	if err != nil {
		return nil, err
	}
	t, err := schema.Decode(acct.Data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", address, err)
	}
	t.Address = acct.Address
	return &t, nil
}
