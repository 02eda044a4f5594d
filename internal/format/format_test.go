package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMatrix(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{
			name:     "no placeholders",
			template: "plain text",
			want:     "plain text",
		},
		{
			name:     "positional",
			template: "msg {}",
			args:     []any{2},
			want:     "msg 2",
		},
		{
			name:     "multiple positional",
			template: "{} {}",
			args:     []any{"warn", 3},
			want:     "warn 3",
		},
		{
			name:     "indexed",
			template: "{1} {0}",
			args:     []any{"a", "b"},
			want:     "b a",
		},
		{
			name:     "named independent of order",
			template: "x = {x}, y = {y}",
			args:     []any{Named("y", 20), Named("x", 10)},
			want:     "x = 10, y = 20",
		},
		{
			name:     "mixed named and positional",
			template: "{} = {v}",
			args:     []any{"n", Named("v", 42)},
			want:     "n = 42",
		},
		{
			name:     "escaped braces",
			template: "{{}} {}",
			args:     []any{1},
			want:     "{} 1",
		},
		{
			name:     "lone closing brace",
			template: "a } b",
			want:     "a } b",
		},
		{
			name:     "missing positional stays literal",
			template: "a {} b {}",
			args:     []any{1},
			want:     "a 1 b {}",
		},
		{
			name:     "unknown name stays literal",
			template: "{nope}",
			args:     []any{Named("x", 1)},
			want:     "{nope}",
		},
		{
			name:     "surplus arguments ignored",
			template: "just {}",
			args:     []any{1, 2, 3},
			want:     "just 1",
		},
		{
			name:     "unterminated placeholder",
			template: "tail {x",
			args:     []any{Named("x", 1)},
			want:     "tail {x",
		},
		{
			name:     "error value",
			template: "open failed: {}",
			args:     []any{errors.New("permission denied")},
			want:     "open failed: permission denied",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Format(tc.template, tc.args...))
		})
	}
}

func TestAppendExtendsDestination(t *testing.T) {
	buf := []byte("prefix: ")
	buf = Append(buf, "{} and {}", 1, 2)
	require.Equal(t, "prefix: 1 and 2", string(buf))
}
