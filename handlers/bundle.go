package handlers

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	Tutors   *TutorHandler
	Schedule *ScheduleHandler
	Booking  *BookingHandler
	Sessions *SessionHandler
}
