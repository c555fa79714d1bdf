package jsonmap

import "fmt"

// snippetLimit bounds how much offending input is echoed into errors and
// logs. Payloads can be arbitrarily large; error text must not be.
const snippetLimit = 256

type EncodeError struct {
	GoType string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("jsonmap: encode %s: %v", e.GoType, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

type DecodeError struct {
	// Snippet is a prefix of the offending input, at most snippetLimit bytes.
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsonmap: decode %q: %v", e.Snippet, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func snippet(data []byte) string {
	if len(data) > snippetLimit {
		return string(data[:snippetLimit]) + "..."
	}
	return string(data)
}
