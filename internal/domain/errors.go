package domain

import "errors"

// ErrGenerationExhausted is returned when the id generator fails to find a
// free identifier within its bounded retries. It is the one error in the
// system that surfaces hard to the caller: hitting it means the id space is
// effectively full.
var ErrGenerationExhausted = errors.New("id generation exhausted after maximum retries")

// ErrUnknownBooking reports a reference to a booking id absent from the store
var ErrUnknownBooking = errors.New("unknown booking id")

// ErrUnknownStay reports a reference to a stay id absent from the store
var ErrUnknownStay = errors.New("unknown stay id")

// ErrUnknownClient reports a reference to a client id absent from the store
var ErrUnknownClient = errors.New("unknown client id")

// ErrUnknownPoliceForm reports a reference to a police form id absent from
// the store
var ErrUnknownPoliceForm = errors.New("unknown police form id")
