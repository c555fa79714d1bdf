package jsonmap

import (
	"bytes"
	"strconv"

	"github.com/buger/jsonparser"
	jsoniter "github.com/json-iterator/go"
)

// keyAPI re-encodes object keys during pruning. ObjectEach hands keys
// unescaped, so they cannot be spliced back verbatim; this config matches
// the engine's escaping, keeping engine-produced keys byte-stable.
var keyAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// prune drops object members from engine output according to the policy.
// The input is compact JSON produced by the engine; reassembly splices the
// original value slices, so member order and string-value escapes survive
// byte-for-byte (keys are re-encoded, see keyAPI). Only object members are
// subject to the policy - array elements are never dropped, but objects
// nested inside arrays are pruned.
func prune(raw []byte, policy Policy) ([]byte, error) {
	if policy == IncludeAll || len(raw) == 0 {
		return raw, nil
	}
	switch raw[0] {
	case '{':
		return pruneValue(raw, jsonparser.Object, policy)
	case '[':
		return pruneValue(raw, jsonparser.Array, policy)
	default:
		// scalar roots have no members to drop
		return raw, nil
	}
}

var nullLiteral = []byte("null")

func pruneValue(value []byte, dt jsonparser.ValueType, policy Policy) ([]byte, error) {
	switch dt {
	case jsonparser.Object:
		var buf bytes.Buffer
		buf.Grow(len(value))
		buf.WriteByte('{')
		first := true
		err := jsonparser.ObjectEach(value, func(key, v []byte, vdt jsonparser.ValueType, _ int) error {
			pv, err := pruneValue(v, vdt, policy)
			if err != nil {
				return err
			}
			if omitted(pv, vdt, policy) {
				return nil
			}
			kb, err := keyAPI.Marshal(string(key))
			if err != nil {
				return err
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			buf.Write(kb)
			buf.WriteByte(':')
			buf.Write(pv)
			return nil
		})
		if err != nil {
			return nil, err
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil

	case jsonparser.Array:
		var buf bytes.Buffer
		buf.Grow(len(value))
		buf.WriteByte('[')
		first := true
		var innerErr error
		_, err := jsonparser.ArrayEach(value, func(v []byte, vdt jsonparser.ValueType, _ int, _ error) {
			if innerErr != nil {
				return
			}
			pv, err := pruneValue(v, vdt, policy)
			if err != nil {
				innerErr = err
				return
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			buf.Write(pv)
		})
		if err != nil {
			return nil, err
		}
		if innerErr != nil {
			return nil, innerErr
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil

	case jsonparser.String:
		// jsonparser hands strings without the surrounding quotes but with
		// escapes intact; put the quotes back.
		out := make([]byte, 0, len(value)+2)
		out = append(out, '"')
		out = append(out, value...)
		out = append(out, '"')
		return out, nil

	case jsonparser.Null:
		return nullLiteral, nil

	default:
		// Number, Boolean: raw literal as-is
		return value, nil
	}
}

// omitted reports whether a pruned member value should be dropped.
func omitted(pruned []byte, dt jsonparser.ValueType, policy Policy) bool {
	if dt == jsonparser.Null {
		return true
	}
	if policy != OmitDefault {
		return false
	}
	switch dt {
	case jsonparser.String:
		return len(pruned) == 2 // ""
	case jsonparser.Number:
		f, err := strconv.ParseFloat(string(pruned), 64)
		return err == nil && f == 0
	case jsonparser.Boolean:
		return bytes.Equal(pruned, []byte("false"))
	case jsonparser.Object, jsonparser.Array:
		return len(pruned) == 2 // {} or []
	default:
		return false
	}
}
