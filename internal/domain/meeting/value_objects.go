package meeting

import (
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title is too long (max 255 characters)")
	ErrInvalidTimeSlot   = errors.New("slot start time must be before end time")
	ErrMalformedToken    = errors.New("malformed booking token")
	ErrTokenSourceFailed = errors.New("failed to read booking token entropy")
)

const (
	MaxTitleLength = 255

	// 16 bytes of entropy rendered as lowercase hex
	tokenBytes  = 16
	TokenLength = tokenBytes * 2
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string {
	return t.value
}

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// BookingToken is the bearer secret embedded in a booking link.
type BookingToken struct {
	value string
}

func GenerateBookingToken(entropy io.Reader) (BookingToken, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(entropy, buf); err != nil {
		return BookingToken{}, errors.Join(ErrTokenSourceFailed, err)
	}
	return BookingToken{value: hex.EncodeToString(buf)}, nil
}

func ParseBookingToken(s string) (BookingToken, error) {
	if len(s) != TokenLength {
		return BookingToken{}, ErrMalformedToken
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return BookingToken{}, ErrMalformedToken
		}
	}
	return BookingToken{value: s}, nil
}

func (t BookingToken) String() string {
	return t.value
}

// Redacted keeps enough of the token to correlate log lines.
func (t BookingToken) Redacted() string {
	if len(t.value) < 6 {
		return "***"
	}
	return t.value[:6] + "***"
}
