package appointment

// Error codes surfaced to callers inside httperr.BusinessError.
const (
	CodeMissingDate        = "missing_date"
	CodeInvalidDate        = "invalid_date"
	CodeMissingTime        = "missing_time"
	CodeUnknownTimeSlot    = "unknown_time_slot"
	CodeMissingServiceType = "missing_service_type"
	CodeUnknownServiceType = "unknown_service_type"
	CodeMissingServiceName = "missing_service_name"
	CodeMissingID          = "missing_appointment_id"

	CodeSlotConflict = "slot_conflict"
	CodeNotFound     = "appointment_not_found"

	CodeInvalidMonth = "invalid_month"
	CodeInvalidYear  = "invalid_year"
)
