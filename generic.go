package jsonmap

// Decode decodes data into a fresh T. ok is false with a nil error on
// blank input, so callers can tell "no data" from a decoded zero value.
// Composite targets need no runtime type descriptor: instantiate with the
// full type, e.g. Decode[[]User] or Decode[map[string][]int].
func Decode[T any](m *Mapper, data []byte) (T, bool, error) {
	var v T
	ok, err := m.decode(data, &v)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v, ok, nil
}

// DecodeString is Decode for string input.
func DecodeString[T any](m *Mapper, s string) (T, bool, error) {
	return Decode[T](m, []byte(s))
}

// DecodeSlice decodes a JSON array of E.
func DecodeSlice[E any](m *Mapper, data []byte) ([]E, bool, error) {
	return Decode[[]E](m, data)
}

// DecodeMap decodes a JSON object into map[K]V.
func DecodeMap[K comparable, V any](m *Mapper, data []byte) (map[K]V, bool, error) {
	return Decode[map[K]V](m, data)
}
