package llm

import "fmt"

// UnsupportedProviderError reports a provider name the factory does not recognize
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider: %q", e.Provider)
}

// TransportError represents a failed exchange with a provider backend
type TransportError struct {
	Provider Provider
	Status   int // HTTP status when the backend answered, zero otherwise
	Message  string
	Cause    error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s request failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// AuthenticationError represents a missing or rejected credential
type AuthenticationError struct {
	Provider Provider
	Message  string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s authentication failed: %s", e.Provider, e.Message)
}

// MalformedResponseError represents a backend reply that could not be decoded
// into the expected JSON structure. Empty replies count as malformed: they are
// surfaced, never silently defaulted.
type MalformedResponseError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s returned a malformed response: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s returned a malformed response: %s", e.Provider, e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
