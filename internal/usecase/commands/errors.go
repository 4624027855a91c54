package commands

import "meetslot/internal/pkg/errs"

//go:generate mockgen -destination=../../../tests/mock/commands/mock_commands.go -package=commandsmock meetslot/internal/usecase/commands BookingCommands,MeetingCommands,UserCommands

var (
	ErrValidation                = errs.New("validation failed")
	ErrAlreadyConfirmedOrInvalid = errs.New("booking link is invalid or the meeting is already confirmed")
	ErrSlotUnavailable           = errs.New("slot is not available")
	ErrPersistenceFailure        = errs.New("persistence failure")
	ErrDuplicateEmail            = errs.New("email already registered")
	ErrOwnerNotFound             = errs.New("owner not found")
	ErrMeetingNotFound           = errs.New("meeting not found")
	ErrMeetingNotOpen            = errs.New("meeting is no longer open")
	ErrPartialSlotBatch          = errs.New("some slots could not be created")
)
