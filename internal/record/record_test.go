package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordAsInt(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantVal int64
		wantOK  bool
	}{
		{name: "plain integer", text: "42", wantVal: 42, wantOK: true},
		{name: "negative integer", text: "-7", wantVal: -7, wantOK: true},
		{name: "decimal is not an integer", text: "3.0", wantOK: false},
		{name: "empty string", text: "", wantOK: false},
		{name: "trailing garbage", text: "42x", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, v, ok := New(tt.text).AsInt()
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.wantVal, v)
			}
		})
	}
}

func TestRecordAsFloat(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantOK bool
	}{
		{name: "integer parses as float too", text: "42", wantOK: true},
		{name: "decimal", text: "3.5", wantOK: true},
		{name: "infinity is rejected", text: "Inf", wantOK: false},
		{name: "nan is rejected", text: "NaN", wantOK: false},
		{name: "not a number", text: "abc", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := New(tt.text).AsFloat()
			require.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDrain(t *testing.T) {
	it := NewSliceIterator([]Record{New("a"), New("b"), New("c")})
	recs, err := Drain(it)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "b", recs[1].Text())

	empty, ok, err := it.Next()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "", empty.Text())
}
