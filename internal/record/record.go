// Package record defines the unit of data that flows through an rp
// pipeline: a text record plus a lazily computed numeric view.
package record

import "strconv"

// Record is one line of text flowing through the pipeline. It carries no
// metadata; operators that need a numeric interpretation compute it on
// first use and cache it on the value.
type Record struct {
	text string

	intDone  bool
	intVal   int64
	intOK    bool
	fltDone  bool
	fltVal   float64
	fltOK    bool
}

// New wraps a string as a Record.
func New(text string) Record {
	return Record{text: text}
}

// Text returns the record's underlying string.
func (r Record) Text() string {
	return r.text
}

// Len returns the byte length of the record.
func (r Record) Len() int {
	return len(r.text)
}

// AsInt parses the record as a signed base-10 integer, caching the
// result. The cache lives on the returned Record, not the receiver, so
// callers must keep using the returned value to benefit from it.
func (r Record) AsInt() (Record, int64, bool) {
	if r.intDone {
		return r, r.intVal, r.intOK
	}
	v, err := strconv.ParseInt(r.text, 10, 64)
	r.intDone = true
	r.intVal = v
	r.intOK = err == nil
	return r, r.intVal, r.intOK
}

// AsFloat parses the record as a finite floating-point number, caching
// the result the same way AsInt does.
func (r Record) AsFloat() (Record, float64, bool) {
	if r.fltDone {
		return r, r.fltVal, r.fltOK
	}
	v, err := strconv.ParseFloat(r.text, 64)
	ok := err == nil && !isInfOrNaN(v)
	r.fltDone = true
	r.fltVal = v
	r.fltOK = ok
	return r, r.fltVal, r.fltOK
}

// IsNumber reports whether the record parses as an integer or a finite
// float.
func (r Record) IsNumber() (Record, bool) {
	r, _, iok := r.AsInt()
	if iok {
		return r, true
	}
	r, _, fok := r.AsFloat()
	return r, fok
}

func isInfOrNaN(v float64) bool {
	return v != v || v > maxFinite || v < -maxFinite
}

const maxFinite = 1.7976931348623157e+308

// Iterator is a pull source of records: call Next repeatedly until ok is
// false. An error ends iteration immediately, ok is false on both
// end-of-stream and error.
type Iterator interface {
	Next() (rec Record, ok bool, err error)
}

// SliceIterator replays a fixed slice of records; used by buffering
// operators once they have materialized their output.
type SliceIterator struct {
	recs []Record
	pos  int
}

// NewSliceIterator returns an Iterator over recs in order.
func NewSliceIterator(recs []Record) *SliceIterator {
	return &SliceIterator{recs: recs}
}

func (s *SliceIterator) Next() (Record, bool, error) {
	if s.pos >= len(s.recs) {
		return Record{}, false, nil
	}
	r := s.recs[s.pos]
	s.pos++
	return r, true, nil
}

// Drain pulls every record out of it, returning them as a slice. Used by
// buffering operators that must see the whole input before producing
// output.
func Drain(it Iterator) ([]Record, error) {
	var out []Record
	for {
		r, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, r)
	}
}
