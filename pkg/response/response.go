package response

// Envelope is the standard API response format: a numeric status code, a
// human-readable message, and any operation-specific payload fields.
type Envelope map[string]any

// New returns an envelope carrying the status code and message.
func New(statusCode int, message string) Envelope {
	return Envelope{
		"statusCode": statusCode,
		"message":    message,
	}
}

// Set adds a payload field and returns the envelope for chaining.
func (e Envelope) Set(key string, value any) Envelope {
	e[key] = value
	return e
}
