package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "plain words", input: "a b c", want: []string{"a", "b", "c"}},
		{name: "extra whitespace collapses", input: "  a   b  ", want: []string{"a", "b"}},
		{name: "single quoted run", input: `'a b' c`, want: []string{"a b", "c"}},
		{name: "double quoted run", input: `"a b" c`, want: []string{"a b", "c"}},
		{name: "concatenated runs form one argument", input: `a"b"c`, want: []string{"abc"}},
		{name: "backslash escapes the next byte literally", input: `a\ b`, want: []string{"a b"}},
		{name: "backslash does not interpret named escapes", input: `a\nb`, want: []string{"anb"}},
		{name: "unterminated quote is an error", input: `'a`, wantErr: true},
		{name: "trailing backslash is an error", input: `a\`, wantErr: true},
		{name: "empty input yields no tokens", input: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
