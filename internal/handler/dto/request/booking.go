package request

import "github.com/google/uuid"

type ConfirmBookingRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}
