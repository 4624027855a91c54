//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"time"

	"meetslot/internal/handler/dto/request"
	"meetslot/internal/handler/dto/response"
	"meetslot/tests/common/builder"
	"meetslot/tests/common/dbtest"
	"meetslot/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TestOrganizerAPI - users, meetings and slots
// =============================================================================

func (s *BookingSuite) TestOrganizerAPI() {
	s.Run("Abnormal case: duplicate email is a conflict", func() {
		t := s.T()
		req := builder.NewUserBuilder().WithEmail("dup@example.com").BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, req, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already registered")
	})

	s.Run("Abnormal case: meeting for an unknown owner", func() {
		t := s.T()
		req := builder.NewMeetingBuilder().WithOwner(uuid.New()).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, meetingsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})

	s.Run("Normal case: meetings are listed with their owner", func() {
		t := s.T()
		_, meetingID, _ := s.organizerWithMeeting(t, "lister@example.com", 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meetingsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var items []response.MeetingListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, meetingID, items[0].ID)
		require.Equal(t, "lister@example.com", items[0].Owner.Email)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var users []response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &users))
		require.Len(t, users, 1)
	})

	s.Run("Normal case: organizer view includes booked slots", func() {
		t := s.T()
		token, meetingID, slots := s.organizerWithMeeting(t, "viewer@example.com", 2)
		require.Equal(t, http.StatusOK, s.confirm(t, token, slots[0].ID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/meetings/"+meetingID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var m response.MeetingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &m))
		require.Equal(t, "CONFIRMED", m.Status)
		require.Len(t, m.Slots, 2)
	})

	s.Run("Abnormal case: slots cannot be added once the meeting is confirmed", func() {
		t := s.T()
		token, meetingID, slots := s.organizerWithMeeting(t, "late@example.com", 1)
		require.Equal(t, http.StatusOK, s.confirm(t, token, slots[0].ID))

		start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
		req := request.AddSlotsRequest{Slots: []request.SlotRequest{{StartTime: start, EndTime: start.Add(time.Hour)}}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(slotsURL, meetingID), req, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Meeting is not open")
		require.Len(t, dbtest.SlotStatuses(t, s.DB, meetingID), 1)
	})

	s.Run("Abnormal case: inverted slot window is rejected", func() {
		t := s.T()
		_, meetingID, _ := s.organizerWithMeeting(t, "inverted@example.com", 1)

		start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
		req := request.AddSlotsRequest{Slots: []request.SlotRequest{{StartTime: start, EndTime: start.Add(-time.Hour)}}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(slotsURL, meetingID), req, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("Abnormal case: slots for an unknown meeting", func() {
		t := s.T()
		start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
		req := request.AddSlotsRequest{Slots: []request.SlotRequest{{StartTime: start, EndTime: start.Add(time.Hour)}}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(slotsURL, uuid.New()), req, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")
	})
}
