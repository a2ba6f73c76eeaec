package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyRoundTrip(t *testing.T) {
	var pk Pubkey
	for i := range pk {
		pk[i] = byte(i + 1)
	}

	parsed, err := ParsePubkey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, parsed)
}

func TestParsePubkeyRejectsWrongLength(t *testing.T) {
	// "2g" is valid base58 but far too short for a key.
	_, err := ParsePubkey("2g")
	require.Error(t, err)

	_, err = ParsePubkey("0OIl")
	require.Error(t, err, "0, O, I and l are not in the base58 alphabet")
}

func TestPubkeyFromBytes(t *testing.T) {
	_, err := PubkeyFromBytes(make([]byte, 31))
	require.Error(t, err)

	pk, err := PubkeyFromBytes(make([]byte, PubkeyLength))
	require.NoError(t, err)
	assert.True(t, pk.IsZero())
}

func TestTweetJSONUsesBase58Author(t *testing.T) {
	var author Pubkey
	author[0] = 7
	tw := Tweet{Author: author, Timestamp: 1700000000, Topic: "solana", Content: "gm world"}

	b, err := json.Marshal(tw)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"author":"`+author.String()+`"`)
	assert.NotContains(t, string(b), `"address"`)

	var back Tweet
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tw, back)
}
