package handler

// Client-facing messages. Internal error details are logged, never returned.
const (
	ErrMsgInvalidNumbers    = "Please enter valid numbers for all fields"
	ErrMsgNonPositiveRate   = "Interest rate must be greater than 0"
	ErrMsgOutOfRange        = "Value out of range for %s"
	ErrMsgInvalidEmail      = "Please enter a valid email address"
	ErrMsgInvalidRequest    = "Invalid request body"
	ErrMsgCalculationFailed = "Failed to calculate affordability"
	ErrMsgReportFailed      = "Failed to send affordability report"
	ErrMsgMailDisabled      = "Email delivery is not available"
	ErrMsgKeyRateFailed     = "Failed to get key rate"
	ErrMsgMethodNotAllowed  = "Method not allowed"
	ErrMsgNotFound          = "Not found"
)
