package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("old password does not match")

	ErrInvalidProvider    = errors.New("appointments can only be booked with providers")
	ErrSelfBooking        = errors.New("users cannot book an appointment with themselves")
	ErrPastDate           = errors.New("past dates are not allowed")
	ErrSlotUnavailable    = errors.New("slot is not available")
	ErrNotOwner           = errors.New("only the requester may cancel this appointment")
	ErrCancelWindowClosed = errors.New("appointments can only be canceled at least 2 hours in advance")

	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrNotProvider          = errors.New("user is not a provider")
	ErrNotificationNotFound = errors.New("notification not found")
)
