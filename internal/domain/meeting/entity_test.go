//go:build unit

package meeting_test

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/pkg/clock"
	"meetslot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newServices(entropy []byte) *meeting.Services {
	return &meeting.Services{
		Clock:   clock.NewMockClock(now),
		Entropy: bytes.NewReader(entropy),
	}
}

func mustTitle(t *testing.T, s string) meeting.Title {
	t.Helper()
	title, err := meeting.NewTitle(s)
	require.NoError(t, err)
	return title
}

func TestNewMeeting(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		ownerID := uuid.New()
		entropy := bytes.Repeat([]byte{0x0f}, 16)

		m, err := meeting.NewMeeting(newServices(entropy), mustTitle(t, "Design review"), now.Add(time.Hour), ownerID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID())
		assert.Equal(t, meeting.StatusOpen, m.Status())
		assert.Equal(t, ownerID, m.OwnerID())
		assert.Equal(t, now, m.CreatedAt())
		assert.Equal(t, strings.Repeat("0f", 16), m.Token().String())
		assert.True(t, m.AcceptsSlots())
		assert.False(t, m.IsConfirmed())
	})

	t.Run("オーナー無しNG", func(t *testing.T) {
		_, err := meeting.NewMeeting(newServices(make([]byte, 16)), mustTitle(t, "x"), now, uuid.Nil)
		assert.ErrorIs(t, err, meeting.ErrMissingOwner)
	})

	t.Run("乱数不足NG", func(t *testing.T) {
		_, err := meeting.NewMeeting(newServices(make([]byte, 4)), mustTitle(t, "x"), now, uuid.New())
		assert.ErrorIs(t, err, meeting.ErrTokenSourceFailed)
	})
}

func TestConfirm(t *testing.T) {
	type fixture struct {
		meeting *meeting.Meeting
		slot    *meeting.Slot
	}

	build := func(t *testing.T, mb *meeting.Meeting, sb *builder.SlotBuilder) fixture {
		t.Helper()
		s, err := sb.BuildDomain()
		require.NoError(t, err)
		return fixture{meeting: mb, slot: s}
	}

	t.Run("OPENの会議と空き枠は確定OK", func(t *testing.T) {
		m, err := builder.NewMeetingBuilder().BuildDomain()
		require.NoError(t, err)
		f := build(t, m, builder.NewSlotBuilder(m.ID()))

		require.NoError(t, f.meeting.Confirm(f.slot))
		assert.Equal(t, meeting.StatusConfirmed, f.meeting.Status())
		assert.Equal(t, meeting.SlotStatusBooked, f.slot.Status())
		assert.False(t, f.meeting.AcceptsSlots())
	})

	tests := []struct {
		name      string
		confirmed bool
		foreign   bool
		booked    bool
		errIs     error
	}{
		{name: "確定済み会議NG", confirmed: true, errIs: meeting.ErrMeetingNotOpen},
		{name: "他の会議の枠NG", foreign: true, errIs: meeting.ErrSlotNotInMeeting},
		{name: "予約済み枠NG", booked: true, errIs: meeting.ErrSlotNotAvailable},
		{name: "確定済みかつ他の会議の枠は会議の状態を優先", confirmed: true, foreign: true, errIs: meeting.ErrMeetingNotOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb := builder.NewMeetingBuilder()
			if tt.confirmed {
				mb.AsConfirmed()
			}
			m, err := mb.BuildDomain()
			require.NoError(t, err)

			owner := m.ID()
			if tt.foreign {
				owner = uuid.New()
			}
			sb := builder.NewSlotBuilder(owner)
			if tt.booked {
				sb.AsBooked()
			}
			f := build(t, m, sb)
			beforeMeeting, beforeSlot := f.meeting.Status(), f.slot.Status()

			err = f.meeting.Confirm(f.slot)

			require.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, beforeMeeting, f.meeting.Status(), "meeting untouched on rejection")
			assert.Equal(t, beforeSlot, f.slot.Status(), "slot untouched on rejection")
		})
	}
}

func TestBookingToken(t *testing.T) {
	t.Run("生成されたトークンは32文字の小文字16進", func(t *testing.T) {
		token, err := meeting.GenerateBookingToken(rand.Reader)
		require.NoError(t, err)
		assert.Len(t, token.String(), meeting.TokenLength)

		parsed, err := meeting.ParseBookingToken(token.String())
		require.NoError(t, err)
		assert.Equal(t, token, parsed)
	})

	t.Run("トークンは衝突しない", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			token, err := meeting.GenerateBookingToken(rand.Reader)
			require.NoError(t, err)
			_, dup := seen[token.String()]
			require.False(t, dup)
			seen[token.String()] = struct{}{}
		}
	})

	t.Run("ログ用に伏字化", func(t *testing.T) {
		token, err := meeting.ParseBookingToken(builder.DefaultBookingToken)
		require.NoError(t, err)
		assert.Equal(t, "001122***", token.Redacted())
		assert.NotContains(t, token.Redacted(), builder.DefaultBookingToken[6:])
	})

	invalid := []struct {
		name  string
		token string
	}{
		{name: "空NG", token: ""},
		{name: "短いNG", token: "abc"},
		{name: "長いNG", token: builder.DefaultBookingToken + "00"},
		{name: "大文字NG", token: strings.ToUpper(builder.DefaultBookingToken)},
		{name: "16進以外NG", token: strings.Repeat("g", meeting.TokenLength)},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := meeting.ParseBookingToken(tc.token)
			assert.ErrorIs(t, err, meeting.ErrMalformedToken)
		})
	}
}

func TestValueObjects(t *testing.T) {
	t.Run("タイトルは前後空白を除去", func(t *testing.T) {
		title, err := meeting.NewTitle("  Standup ")
		require.NoError(t, err)
		assert.Equal(t, "Standup", title.String())
	})

	t.Run("タイトル検証", func(t *testing.T) {
		_, err := meeting.NewTitle(" ")
		assert.ErrorIs(t, err, meeting.ErrEmptyTitle)

		_, err = meeting.NewTitle(strings.Repeat("t", meeting.MaxTitleLength+1))
		assert.ErrorIs(t, err, meeting.ErrTitleTooLong)
	})

	t.Run("タイトル長は文字数で数える", func(t *testing.T) {
		long := strings.Repeat("会", meeting.MaxTitleLength)
		title, err := meeting.NewTitle(long)
		require.NoError(t, err)
		assert.Equal(t, long, title.String())

		_, err = meeting.NewTitle(long + "会")
		assert.ErrorIs(t, err, meeting.ErrTitleTooLong)
	})

	t.Run("時間枠検証", func(t *testing.T) {
		start := now
		ts, err := meeting.NewTimeSlot(start, start.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, ts.Duration())

		_, err = meeting.NewTimeSlot(start, start)
		assert.ErrorIs(t, err, meeting.ErrInvalidTimeSlot)

		_, err = meeting.NewTimeSlot(start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, meeting.ErrInvalidTimeSlot)

		_, err = meeting.NewTimeSlot(time.Time{}, start)
		assert.ErrorIs(t, err, meeting.ErrInvalidTimeSlot)
	})

	t.Run("新しい枠はAVAILABLE", func(t *testing.T) {
		ts, err := meeting.NewTimeSlot(now, now.Add(time.Hour))
		require.NoError(t, err)
		meetingID := uuid.New()

		s := meeting.NewSlot(meetingID, ts, now)

		assert.True(t, s.IsAvailable())
		assert.Equal(t, meetingID, s.MeetingID())
		assert.Equal(t, now, s.CreatedAt())
	})
}
