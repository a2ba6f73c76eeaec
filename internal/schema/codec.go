package schema

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rcliao/tweet-ledger/internal/model"
)

var (
	ErrSlotTooSmall          = errors.New("schema: slot too small")
	ErrShortData             = errors.New("schema: short account data")
	ErrDiscriminatorMismatch = errors.New("schema: discriminator mismatch")
	ErrFieldOverflow         = errors.New("schema: field length exceeds capacity")
)

// EncodedLen returns the number of bytes Encode writes for t, excluding padding.
func EncodedLen(t model.Tweet) int {
	return HeaderLen + len(t.Topic) + StringLengthPrefix + len(t.Content)
}

// Encode writes t into slot in layout order and returns the number of bytes
// written. Bytes past the encoding are left as they are.
func Encode(t model.Tweet, slot []byte) (int, error) {
	if len(t.Topic) > MaxTopicLength {
		return 0, fmt.Errorf("%w: topic is %d bytes, max %d", ErrFieldOverflow, len(t.Topic), MaxTopicLength)
	}
	if len(t.Content) > MaxContentLength {
		return 0, fmt.Errorf("%w: content is %d bytes, max %d", ErrFieldOverflow, len(t.Content), MaxContentLength)
	}
	n := EncodedLen(t)
	if len(slot) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrSlotTooSmall, n, len(slot))
	}

	copy(slot[0:AuthorOffset], TweetDiscriminator[:])
	copy(slot[AuthorOffset:TimestampOffset], t.Author[:])
	binary.LittleEndian.PutUint64(slot[TimestampOffset:TopicPrefixOffset], uint64(t.Timestamp))

	i := TopicPrefixOffset
	i = putString(slot, i, t.Topic)
	i = putString(slot, i, t.Content)
	return i, nil
}

func putString(buf []byte, i int, s string) int {
	binary.LittleEndian.PutUint32(buf[i:i+StringLengthPrefix], uint32(len(s)))
	i += StringLengthPrefix
	return i + copy(buf[i:], s)
}

// Marshal returns a zero-padded TweetLen slot holding t.
func Marshal(t model.Tweet) ([]byte, error) {
	slot := make([]byte, TweetLen)
	if _, err := Encode(t, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// Decode parses account data. Trailing padding is ignored.
func Decode(data []byte) (model.Tweet, error) {
	var t model.Tweet
	if len(data) < HeaderLen {
		return t, ErrShortData
	}
	if !bytes.Equal(data[:DiscriminatorLength], TweetDiscriminator[:]) {
		return t, ErrDiscriminatorMismatch
	}

	copy(t.Author[:], data[AuthorOffset:TimestampOffset])
	t.Timestamp = int64(binary.LittleEndian.Uint64(data[TimestampOffset:TopicPrefixOffset]))

	topic, i, err := readString(data, TopicPrefixOffset, MaxTopicLength, "topic")
	if err != nil {
		return t, err
	}
	content, _, err := readString(data, i, MaxContentLength, "content")
	if err != nil {
		return t, err
	}
	t.Topic = topic
	t.Content = content
	return t, nil
}

func readString(data []byte, i, limit int, name string) (string, int, error) {
	if len(data)-i < StringLengthPrefix {
		return "", i, ErrShortData
	}
	l := binary.LittleEndian.Uint32(data[i : i+StringLengthPrefix])
	i += StringLengthPrefix
	if uint64(l) > uint64(limit) {
		return "", i, fmt.Errorf("%w: %s is %d bytes, max %d", ErrFieldOverflow, name, l, limit)
	}
	if len(data)-i < int(l) {
		return "", i, ErrShortData
	}
	s := string(data[i : i+int(l)])
	return s, i + int(l), nil
}
