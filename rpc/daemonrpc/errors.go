package daemonrpc

import "fmt"

// ValidationError reports a caller-supplied argument that failed a
// pre-flight shape check. The request never reaches the network.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid argument: " + e.Reason
}

// SerializationError reports a params value that could not be converted to
// the wire format.
type SerializationError struct {
	Source error
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("failed to encode params: %v", e.Source)
}

func (e SerializationError) Unwrap() error { return e.Source }

// TransportError reports a network-level failure: connection, DNS, timeout,
// or a non-2xx status from the daemon.
type TransportError struct {
	Status string // HTTP status line, when the daemon answered with one
	Source error
}

func (e TransportError) Error() string {
	if e.Status != "" {
		return "request failed: daemon returned " + e.Status
	}
	return fmt.Sprintf("request failed: %v", e.Source)
}

func (e TransportError) Unwrap() error { return e.Source }

// DecodeError reports a response body that could not be parsed as JSON
// while the client is configured to decode responses.
type DecodeError struct {
	Source error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Source)
}

func (e DecodeError) Unwrap() error { return e.Source }
