package jsonmap

import "time"

// Policy selects which object members are written during Marshal based on
// their runtime value. The zero value writes everything.
type Policy int

const (
	// IncludeAll writes every member regardless of value.
	IncludeAll Policy = iota
	// OmitNull drops members whose value is JSON null.
	OmitNull
	// OmitDefault drops members whose value is null, "", 0, false, {} or [].
	// The most compact form; meant for internal storage, not public APIs.
	OmitDefault
)

func (p Policy) String() string {
	switch p {
	case IncludeAll:
		return "include_all"
	case OmitNull:
		return "omit_null"
	case OmitDefault:
		return "omit_default"
	default:
		return "unknown"
	}
}

// Options tune a Mapper. The zero value is a working configuration:
// include-all policy, host-local time zone, no logging.
type Options struct {
	Policy   Policy
	Logger   Logger         // if nil, NopLogger is used
	Hooks    Hooks          // if nil, NopHooks is used
	Location *time.Location // time zone for time.Time values; nil => time.Local
}

// New builds a Mapper around a freshly frozen engine instance.
// Mappers are independent: toggles on one never affect another.
func New(opts Options) *Mapper {
	return newMapper(opts)
}

// NewOmitNull is a convenience builder for the OmitNull policy,
// the usual choice for external interfaces.
func NewOmitNull() *Mapper {
	return New(Options{Policy: OmitNull})
}

// NewOmitDefault is a convenience builder for the OmitDefault policy,
// the most storage-efficient form.
func NewOmitDefault() *Mapper {
	return New(Options{Policy: OmitDefault})
}
