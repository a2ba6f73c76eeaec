// Package schema defines the fixed-size binary layout of a tweet account.
package schema

import "crypto/sha256"

// Every account starts with an 8-byte type tag.
const DiscriminatorLength = 8

const (
	PublicKeyLength    = 32
	TimestampLength    = 8
	StringLengthPrefix = 4

	// UTF-8 needs at most 4 bytes per character.
	MaxBytesPerChar = 4

	MaxTopicChars   = 50
	MaxContentChars = 280

	MaxTopicLength   = MaxTopicChars * MaxBytesPerChar
	MaxContentLength = MaxContentChars * MaxBytesPerChar
)

// TweetLen is the slot capacity reserved for one tweet, sized for
// worst-case UTF-8 text rather than the text actually stored.
const TweetLen = DiscriminatorLength +
	PublicKeyLength + // author
	TimestampLength + // timestamp
	StringLengthPrefix + MaxTopicLength + // topic
	StringLengthPrefix + MaxContentLength // content

// Offsets of the fixed-position fields.
const (
	AuthorOffset      = DiscriminatorLength
	TimestampOffset   = AuthorOffset + PublicKeyLength
	TopicPrefixOffset = TimestampOffset + TimestampLength
	// HeaderLen is everything up to the first byte of topic text.
	HeaderLen = TopicPrefixOffset + StringLengthPrefix
)

// AccountName is hashed to derive the discriminator.
const AccountName = "Tweet"

// TweetDiscriminator tags tweet accounts: the first 8 bytes of
// sha256("account:Tweet").
var TweetDiscriminator = discriminator(AccountName)

func discriminator(name string) [DiscriminatorLength]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorLength]byte
	copy(d[:], sum[:DiscriminatorLength])
	return d
}

// Field describes one segment of the layout.
type Field struct {
	Name string `json:"name"`
	// Offset is -1 for segments whose position depends on earlier text.
	Offset      int    `json:"offset"`
	Size        int    `json:"size"`
	Description string `json:"description"`
}

// Fields returns the layout segments in serialization order, with each
// text field at its reserved maximum.
func Fields() []Field {
	return []Field{
		{"discriminator", 0, DiscriminatorLength, "sha256(\"account:Tweet\")[:8]"},
		{"author", AuthorOffset, PublicKeyLength, "public key"},
		{"timestamp", TimestampOffset, TimestampLength, "i64 unix seconds, little-endian"},
		{"topic.len", TopicPrefixOffset, StringLengthPrefix, "u32 byte length, little-endian"},
		{"topic", HeaderLen, MaxTopicLength, "utf-8, max 50 chars"},
		{"content.len", -1, StringLengthPrefix, "u32 byte length, little-endian"},
		{"content", -1, MaxContentLength, "utf-8, max 280 chars"},
	}
}
