package booking

import "errors"

// ErrSelectionSessionNotFound is returned when a selection session has
// expired from the cache or never existed.
var ErrSelectionSessionNotFound = errors.New("selection session not found or expired")

// ErrNoRangeSelected is returned when confirmation is attempted without a
// validated start/end pair.
var ErrNoRangeSelected = errors.New("select a start and end time before confirming")

// ErrSlotTaken is returned when the authoritative conflict check rejects a
// submission because another user booked the time first. The session's
// booked intervals are refreshed before this error is surfaced, so the
// caller's next render reflects the conflict.
var ErrSlotTaken = errors.New("that time was just booked by someone else")

// ErrConcurrentUpdate is returned by guarded session saves when the stored
// session changed after it was read. The writer holding stale data discards
// its copy.
var ErrConcurrentUpdate = errors.New("selection session changed concurrently")

// ErrUnconfirmedBookings is returned when booked-interval data could not be
// fetched. Availability is still shown, but submission is blocked: the
// filter never invents bookings, and it never submits against data it could
// not positively confirm.
var ErrUnconfirmedBookings = errors.New("existing bookings could not be confirmed for this date")
