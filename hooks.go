package jsonmap

// Hooks lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap and non-blocking; the mapper calls them
// inline on encode/decode paths.
type Hooks interface {
	// Encode failed for a value of the given Go type.
	EncodeFailed(goType string, err error)

	// Decode failed; snippet is a bounded prefix of the offending input.
	// op ∈ {"unmarshal", "update"}
	DecodeFailed(op, snippet string, err error)

	// MarshalForLog replaced an oversized payload with the placeholder.
	LogTruncated(size, limit int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EncodeFailed(string, error)         {}
func (NopHooks) DecodeFailed(string, string, error) {}
func (NopHooks) LogTruncated(int, int)              {}
