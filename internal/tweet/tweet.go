// Package tweet validates and creates tweet records.
package tweet

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rcliao/tweet-ledger/internal/model"
	"github.com/rcliao/tweet-ledger/internal/schema"
)

var validate = validator.New()

// text holds the user-supplied fields. validator's max counts runes for strings.
type text struct {
	Topic   string `validate:"max=50"`
	Content string `validate:"max=280"`
}

// Clock supplies the creation timestamp in Unix seconds.
type Clock interface {
	UnixTimestamp() (int64, error)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() (int64, error)

func (f ClockFunc) UnixTimestamp() (int64, error) { return f() }

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) UnixTimestamp() (int64, error) { return time.Now().Unix(), nil }

// Validate checks topic then content against their character limits.
// Empty values are accepted.
func Validate(topic, content string) error {
	err := validate.Struct(text{Topic: topic, Content: content})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.StructField()] = true
	}
	switch {
	case failed["Topic"]:
		return ErrTopicTooLong
	case failed["Content"]:
		return ErrContentTooLong
	}
	return err
}

// Create validates the input, reads the clock once and returns the populated
// record. Topic and content are stored verbatim.
func Create(author model.Pubkey, topic, content string, clock Clock) (model.Tweet, error) {
	if err := Validate(topic, content); err != nil {
		return model.Tweet{}, err
	}
	ts, err := clock.UnixTimestamp()
	if err != nil {
		return model.Tweet{}, ErrClockUnavailable.wrap(err)
	}
	return model.Tweet{
		Author:    author,
		Timestamp: ts,
		Topic:     topic,
		Content:   content,
	}, nil
}

// Space is the slot size a caller must reserve for one tweet.
func Space() int { return schema.TweetLen }
