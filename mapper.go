package jsonmap

import (
	"bytes"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// LogPlaceholder replaces payloads whose serialized length exceeds the
// limit given to MarshalForLog.
const LogPlaceholder = "[omitted: payload exceeds log limit]"

// Mapper is the codec facade. It is safe for concurrent Marshal/Unmarshal
// use once configured. The toggle methods and RegisterExtension mutate the
// engine's codec set without synchronization: call them right after New,
// before any encode/decode that could touch the affected types, and never
// concurrently with in-flight calls.
type Mapper struct {
	api    jsoniter.API
	policy Policy
	loc    *time.Location
	log    Logger
	hooks  Hooks
}

func newMapper(opts Options) *Mapper {
	m := &Mapper{
		policy: opts.Policy,
		log:    coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:  coalesce[Hooks](opts.Hooks, NopHooks{}),
		loc:    coalesce[*time.Location](opts.Location, time.Local),
	}
	m.api = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	// unknown input fields are ignored by default (DisallowUnknownFields
	// is off), and empty structs always encode; both match the facade's
	// construction contract.
	m.api.RegisterExtension(&timeExtension{loc: m.loc})
	return m
}

// Marshal encodes v to JSON text under the configured policy.
// v may be a struct, pointer, slice, map or nil: nil encodes to the literal
// null, an empty slice to []. On failure the error is logged at warning
// level and returned as *EncodeError.
func (m *Mapper) Marshal(v any) ([]byte, error) {
	b, err := m.api.Marshal(v)
	if err != nil {
		return nil, m.encodeFailed(v, err)
	}
	if m.policy != IncludeAll {
		b, err = prune(b, m.policy)
		if err != nil {
			return nil, m.encodeFailed(v, err)
		}
	}
	return b, nil
}

// MarshalString is Marshal returning string.
func (m *Mapper) MarshalString(v any) (string, error) {
	b, err := m.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalForLog bounds log volume: it returns the serialized form of v, or
// LogPlaceholder when that form is strictly longer than limit. A length
// exactly equal to limit passes through unchanged. Marshal failures were
// already logged and yield "".
func (m *Mapper) MarshalForLog(v any, limit int) string {
	s, err := m.MarshalString(v)
	if err != nil {
		return ""
	}
	if len(s) > limit {
		m.hooks.LogTruncated(len(s), limit)
		return LogPlaceholder
	}
	return s
}

// Unmarshal decodes data into out, which must be a non-nil pointer.
// Blank input (empty or whitespace-only) is a no-op with a nil error: out
// keeps its current value and the caller sees "no data". Decode failures
// are logged at warning level and returned as *DecodeError.
func (m *Mapper) Unmarshal(data []byte, out any) error {
	_, err := m.decode(data, out)
	return err
}

// UnmarshalString is Unmarshal for string input.
func (m *Mapper) UnmarshalString(s string, out any) error {
	return m.Unmarshal([]byte(s), out)
}

// Update applies a partial update: members present in data overwrite the
// corresponding fields of target in place, absent members leave target
// untouched. Blank input is a no-op. On decode failure the error is logged
// and returned; fields decoded before the failure may already be written.
func (m *Mapper) Update(data []byte, target any) error {
	if blank(data) {
		return nil
	}
	if err := m.api.Unmarshal(data, target); err != nil {
		return m.decodeFailed("update", data, err)
	}
	return nil
}

// JSONP wraps the serialized value in a callback invocation:
// callback(<json>). Single line, no trailing semicolon.
func (m *Mapper) JSONP(callback string, v any) (string, error) {
	s, err := m.MarshalString(v)
	if err != nil {
		return "", err
	}
	return callback + "(" + s + ")", nil
}

// EnableEnumDisplay switches enum-typed values to their display-string
// form: values implementing Enum encode via Display, targets whose pointer
// implements EnumSetter decode via SetDisplay. Without the toggle such
// values go through the engine untouched (numeric for the usual int-based
// enums). The engine caches codecs per type on first use, so call this
// before any encode/decode involving enum types.
func (m *Mapper) EnableEnumDisplay() {
	m.api.RegisterExtension(&enumExtension{})
}

// EnableAltTag makes struct fields name themselves from the given tag key,
// checked before the native json tag, so model types need not carry json
// tags at all. Same before-first-use rule as EnableEnumDisplay.
func (m *Mapper) EnableAltTag(key string) {
	m.api.RegisterExtension(&altTagExtension{key: key})
}

// RegisterExtension exposes the engine's extension point for codec
// customization beyond what the facade covers. Same before-first-use rule
// as the toggles.
func (m *Mapper) RegisterExtension(ext jsoniter.Extension) {
	m.api.RegisterExtension(ext)
}

// decode is the shared lenient-on-blank decode path. ok reports whether
// anything was decoded into out.
func (m *Mapper) decode(data []byte, out any) (bool, error) {
	if blank(data) {
		return false, nil
	}
	if err := m.api.Unmarshal(data, out); err != nil {
		return false, m.decodeFailed("unmarshal", data, err)
	}
	return true, nil
}

func (m *Mapper) encodeFailed(v any, err error) error {
	goType := fmt.Sprintf("%T", v)
	m.log.Warn("marshal failed", Fields{"type": goType, "err": err})
	m.hooks.EncodeFailed(goType, err)
	return &EncodeError{GoType: goType, Err: err}
}

func (m *Mapper) decodeFailed(op string, data []byte, err error) error {
	sn := snippet(data)
	m.log.Warn(op+" failed", Fields{"input": sn, "err": err})
	m.hooks.DecodeFailed(op, sn, err)
	return &DecodeError{Snippet: sn, Err: err}
}

func blank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
