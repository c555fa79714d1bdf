package jsonmap

import (
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// timeExtension pins time.Time to RFC 3339 (nanosecond precision) rendered
// in the mapper's time zone, so two mappers with different Locations
// produce consistent wall-clock text for the same instant. Registered at
// construction; Location defaults to host-local.
type timeExtension struct {
	jsoniter.DummyExtension
	loc *time.Location
}

var timeType = reflect.TypeOf(time.Time{})

func (x *timeExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == timeType {
		return &timeCodec{loc: x.loc}
	}
	return nil
}

func (x *timeExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == timeType {
		return &timeCodec{loc: x.loc}
	}
	return nil
}

type timeCodec struct {
	loc *time.Location
}

func (c *timeCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(*time.Time)(ptr)
	stream.WriteString(t.In(c.loc).Format(time.RFC3339Nano))
}

func (c *timeCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return (*time.Time)(ptr).IsZero()
}

func (c *timeCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		*(*time.Time)(ptr) = time.Time{}
	case jsoniter.StringValue:
		s := iter.ReadString()
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			iter.ReportError("time", err.Error())
			return
		}
		*(*time.Time)(ptr) = t.In(c.loc)
	default:
		iter.ReportError("time", "expected an RFC 3339 string or null")
	}
}
