// Package jsonmap implements a configurable JSON codec facade over a frozen
// json-iterator engine. One Mapper holds one engine instance; marshal,
// unmarshal, partial update, JSONP wrapping and log-bounded marshal all run
// against that instance's configuration.
//
// Components:
//   - Mapper: the facade. Policy, time zone, logger and hooks are fixed at
//     construction; the enum-display and alternate-tag toggles may be enabled
//     after construction but only before first use of the affected types.
//   - Policy: which object members are written (IncludeAll, OmitNull,
//     OmitDefault). Non-IncludeAll policies prune engine output byte-wise,
//     preserving member order and string escapes.
//   - Logger/Hooks: injected observability. Adapters for zap, logrus and
//     slog live under log/.
//
// Failures are explicit: encode problems surface as *EncodeError, decode
// problems as *DecodeError, both logged at warning level at the boundary.
// Blank input to the decode operations is a nil-error no-op, so "no data"
// and "bad data" stay distinguishable.
package jsonmap
