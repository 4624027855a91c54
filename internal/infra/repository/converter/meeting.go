package converter

import (
	"fmt"

	"meetslot/internal/domain/meeting"
	"meetslot/internal/infra/sqlc"
	"meetslot/internal/pkg/pgconv"
)

func MeetingToInfra(m *meeting.Meeting) sqlc.CreateMeetingParams {
	return sqlc.CreateMeetingParams{
		ID:           m.ID(),
		Title:        m.Title().String(),
		MeetingTime:  pgconv.TimeToPgtype(m.ScheduledAt()),
		UserID:       m.OwnerID(),
		BookingToken: m.Token().String(),
		Status:       m.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MeetingFromInfra(row sqlc.Meetings) (*meeting.Meeting, error) {
	title, err := meeting.NewTitle(row.Title)
	if err != nil {
		return nil, fmt.Errorf("meeting %s: %w", row.ID, err)
	}

	token, err := meeting.ParseBookingToken(row.BookingToken)
	if err != nil {
		return nil, fmt.Errorf("meeting %s: %w", row.ID, err)
	}

	status := meeting.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("meeting %s: unknown status %q", row.ID, row.Status)
	}

	return meeting.ReconstructMeeting(
		row.ID,
		title,
		pgconv.TimeFromPgtype(row.MeetingTime),
		row.UserID,
		token,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func SlotToInfra(s *meeting.Slot) sqlc.CreateSlotParams {
	return sqlc.CreateSlotParams{
		ID:        s.ID(),
		MeetingID: s.MeetingID(),
		StartTime: pgconv.TimeToPgtype(s.TimeSlot().Start()),
		EndTime:   pgconv.TimeToPgtype(s.TimeSlot().End()),
		Status:    s.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SlotFromInfra(row sqlc.MeetingSlots) (*meeting.Slot, error) {
	timeSlot, err := meeting.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", row.ID, err)
	}

	status := meeting.SlotStatus(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("slot %s: unknown status %q", row.ID, row.Status)
	}

	return meeting.ReconstructSlot(row.ID, row.MeetingID, timeSlot, status, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
