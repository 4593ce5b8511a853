package cond

import (
	"testing"

	"github.com/oyealex/rp/internal/record"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, expr, text string) bool {
	t.Helper()
	node, err := Parse(expr)
	require.NoError(t, err)
	_, ok, err := node.Eval(record.New(text))
	require.NoError(t, err)
	return ok
}

func TestParseAndEval(t *testing.T) {
	tests := []struct {
		name string
		expr string
		text string
		want bool
	}{
		{name: "len range matches", expr: "len 2,4", text: "abc", want: true},
		{name: "len range excludes outside bound", expr: "len 2,4", text: "a", want: false},
		{name: "len exact", expr: "len =3", text: "abc", want: true},
		{name: "len negated", expr: "!len 2,4", text: "abc", want: false},
		{name: "num eq", expr: "num =2", text: "2", want: true},
		{name: "num eq on float text", expr: "num =2", text: "2.0", want: true},
		{name: "num range", expr: "num 1,10", text: "5", want: true},
		{name: "num range on non-numeric is always false", expr: "!num 1,10", text: "abc", want: false},
		{name: "num integer", expr: "num integer", text: "42", want: true},
		{name: "num integer rejects decimal", expr: "num integer", text: "3.0", want: false},
		{name: "num float accepts decimal", expr: "num float", text: "3.0", want: true},
		{name: "num float rejects integer", expr: "num float", text: "3", want: false},
		{name: "num any accepts either", expr: "num", text: "3.5", want: true},
		{name: "upper holds for all-caps", expr: "upper", text: "ABC", want: true},
		{name: "upper holds for uncased text", expr: "upper", text: "123", want: true},
		{name: "upper fails mixed case", expr: "upper", text: "ABc", want: false},
		{name: "lower holds for all-lowercase", expr: "lower", text: "abc", want: true},
		{name: "empty matches empty string", expr: "empty", text: "", want: true},
		{name: "empty rejects non-empty", expr: "empty", text: "a", want: false},
		{name: "blank matches whitespace-only", expr: "blank", text: "  \t", want: true},
		{name: "blank rejects non-whitespace", expr: "blank", text: " a ", want: false},
		{name: "regex matches", expr: "reg ^ap", text: "apricot", want: true},
		{name: "regex does not match", expr: "reg ^ap", text: "banana", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, eval(t, tt.expr, tt.text))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"len",
		"len =x",
		"num =x",
		"!reg ^ap",
		"reg",
		"unknown",
		"upper extra",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			require.Error(t, err)
		})
	}
}
