package jsonmap

import (
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Enum is implemented by enumeration types that carry a display string
// distinct from their underlying value. With EnableEnumDisplay the display
// form goes on the wire; without it the engine encodes the raw value.
type Enum interface {
	Display() string
}

// EnumSetter is the decode-side counterpart, implemented on the pointer
// type. SetDisplay resolves a display string back to the enum value.
type EnumSetter interface {
	SetDisplay(s string) error
}

var (
	enumType       = reflect2.TypeOfPtr((*Enum)(nil)).Elem()
	enumSetterType = reflect2.TypeOfPtr((*EnumSetter)(nil)).Elem()
)

type enumExtension struct {
	jsoniter.DummyExtension
}

func (enumExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if reflect2.PtrTo(typ).Implements(enumType) {
		return &enumCodec{typ: typ}
	}
	return nil
}

func (enumExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if reflect2.PtrTo(typ).Implements(enumSetterType) {
		return &enumCodec{typ: typ}
	}
	return nil
}

// enumCodec holds the value type; PackEFace on it packs an interface of
// the pointer type, whose method set carries both Display and SetDisplay.
type enumCodec struct {
	typ reflect2.Type
}

func (c *enumCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(c.typ.PackEFace(ptr).(Enum).Display())
}

func (c *enumCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return c.typ.PackEFace(ptr).(Enum).Display() == ""
}

func (c *enumCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		return
	}
	s := iter.ReadString()
	if err := c.typ.PackEFace(ptr).(EnumSetter).SetDisplay(s); err != nil {
		iter.ReportError("enum", err.Error())
	}
}
