package tweet

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/tweet-ledger/internal/schema"
	"github.com/rcliao/tweet-ledger/internal/store"
)

func newTestService(t *testing.T, clock Clock) (*Service, *store.SQLiteStore) {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "tweets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, clock, zerolog.Nop()), st
}

func accountCount(t *testing.T, st *store.SQLiteStore) int {
	t.Helper()
	stats, err := st.Stats(context.Background(), "")
	require.NoError(t, err)
	return stats.TotalAccounts
}

func TestSendAndGet(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, fixedClock(1_700_000_000))
	author := pubkey(0xA)

	sent, err := svc.Send(ctx, SendParams{Author: author, Topic: "veganism", Content: "Hummus, am I right?"})
	require.NoError(t, err)
	require.NotEmpty(t, sent.Address)
	assert.Equal(t, author, sent.Author)
	assert.Equal(t, int64(1_700_000_000), sent.Timestamp)

	got, err := svc.Get(ctx, sent.Address)
	require.NoError(t, err)
	assert.Equal(t, sent, got)

	acct, err := st.GetAccount(ctx, sent.Address)
	require.NoError(t, err)
	assert.Len(t, acct.Data, schema.TweetLen)
	assert.Equal(t, schema.TweetLen, acct.Space)
	assert.Equal(t, schema.TweetDiscriminator[:], acct.Tag)
}

func TestSendWithoutTopic(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil)

	sent, err := svc.Send(ctx, SendParams{Author: pubkey(1), Topic: "", Content: "gm"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, sent.Address)
	require.NoError(t, err)
	assert.Equal(t, "", got.Topic)
	assert.Equal(t, "gm", got.Content)
	assert.NotZero(t, got.Timestamp)
}

func TestSendFromDifferentAuthors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, fixedClock(42))

	a, err := svc.Send(ctx, SendParams{Author: pubkey(1), Topic: "veganism", Content: "Hummus"})
	require.NoError(t, err)
	b, err := svc.Send(ctx, SendParams{Author: pubkey(2), Topic: "veganism", Content: "Yay Tofu!"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Address, b.Address)

	got, err := svc.Get(ctx, b.Address)
	require.NoError(t, err)
	assert.Equal(t, pubkey(2), got.Author)
	assert.Equal(t, "Yay Tofu!", got.Content)
}

func TestSendRejectsWithoutWriting(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		clock Clock
		p     SendParams
		want  error
	}{
		{
			name:  "topic with 51 characters",
			clock: fixedClock(1),
			p:     SendParams{Author: pubkey(1), Topic: strings.Repeat("x", 51), Content: "hi"},
			want:  ErrTopicTooLong,
		},
		{
			name:  "content with 281 characters",
			clock: fixedClock(1),
			p:     SendParams{Author: pubkey(1), Topic: "veganism", Content: strings.Repeat("x", 281)},
			want:  ErrContentTooLong,
		},
		{
			name:  "clock failure",
			clock: ClockFunc(func() (int64, error) { return 0, errors.New("down") }),
			p:     SendParams{Author: pubkey(1), Topic: "a", Content: "b"},
			want:  ErrClockUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newTestService(t, tt.clock)

			tw, err := svc.Send(ctx, tt.p)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, tw)
			assert.Zero(t, accountCount(t, st))
		})
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Get(context.Background(), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetRejectsForeignAccount(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, nil)

	acct, err := st.CreateAccount(ctx, store.CreateAccountParams{
		Space: 64,
		Data:  []byte("notatweet-but-long-enough-for-a-header-to-be-read-by-decode-fn"),
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, acct.Address)
	require.ErrorIs(t, err, schema.ErrDiscriminatorMismatch)
}
