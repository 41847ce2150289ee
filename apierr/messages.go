package apierr

// Messages is the status-to-message table consulted when a failure carries
// no usable message of its own, plus the fixed texts for the failure kinds
// that have no status at all. The zero value is unusable; start from
// DefaultMessages and override.
type Messages struct {
	// Status maps HTTP status codes to human-readable messages.
	Status map[int]string

	// NetworkError replaces the message of any failure recognized as a
	// connection-level error.
	NetworkError string

	// TimeoutError replaces the message of any failure recognized as a
	// deadline overrun.
	TimeoutError string

	// DefaultError is the fallback for failures with no message and no
	// table entry.
	DefaultError string

	// NoResponse is used when the request was sent but no response ever
	// arrived.
	NoResponse string
}

// DefaultMessages returns the built-in message table.
func DefaultMessages() *Messages {
	return &Messages{
		Status: map[int]string{
			400: "bad request",
			401: "unauthorized, please sign in again",
			403: "access denied",
			404: "resource not found",
			405: "method not allowed",
			408: "request timed out",
			429: "too many requests, please slow down",
			500: "internal server error",
			502: "bad gateway",
			503: "service unavailable",
			504: "gateway timeout",
		},
		NetworkError: "network error, please check your connection",
		TimeoutError: "request timed out, please try again",
		DefaultError: "request failed",
		NoResponse:   "no response from server",
	}
}

// Merge overlays o onto m and returns m. Empty fields in o keep m's value;
// o.Status entries override per status code. A nil o is a no-op.
func (m *Messages) Merge(o *Messages) *Messages {
	if o == nil {
		return m
	}
	for code, msg := range o.Status {
		if m.Status == nil {
			m.Status = make(map[int]string)
		}
		m.Status[code] = msg
	}
	if o.NetworkError != "" {
		m.NetworkError = o.NetworkError
	}
	if o.TimeoutError != "" {
		m.TimeoutError = o.TimeoutError
	}
	if o.DefaultError != "" {
		m.DefaultError = o.DefaultError
	}
	if o.NoResponse != "" {
		m.NoResponse = o.NoResponse
	}
	return m
}

// ForStatus returns the configured message for an HTTP status code,
// falling back to DefaultError.
func (m *Messages) ForStatus(status int) string {
	if msg, ok := m.Status[status]; ok {
		return msg
	}
	return m.DefaultError
}
