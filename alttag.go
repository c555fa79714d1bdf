package jsonmap

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// altTagExtension lets model structs use a tag vocabulary of the caller's
// choosing instead of json tags. The alternate key wins when present;
// fields without it keep their json-tag (or field-name) mapping.
type altTagExtension struct {
	jsoniter.DummyExtension
	key string
}

func (x *altTagExtension) UpdateStructDescriptor(sd *jsoniter.StructDescriptor) {
	for _, binding := range sd.Fields {
		tag, ok := binding.Field.Tag().Lookup(x.key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		switch name {
		case "":
			// tag carries only options; keep the existing mapping
		case "-":
			binding.ToNames = []string{}
			binding.FromNames = []string{}
		default:
			binding.ToNames = []string{name}
			binding.FromNames = []string{name}
		}
	}
}
