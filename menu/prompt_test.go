package menu

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntil(t *testing.T) {
	t.Parallel()

	values := []int{0, 5, -1, 3}
	calls := 0

	got, err := Until(func() (int, bool, error) {
		v := values[calls]
		calls++

		return v, v != -1, nil
	}, func(v int) bool { return v >= 1 && v <= 3 })

	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, 4, calls)
}

func TestUntil_Error(t *testing.T) {
	t.Parallel()

	errRead := errors.New("read")

	_, err := Until(func() (int, bool, error) { return 0, false, errRead }, func(int) bool { return true })
	assert.ErrorIs(t, err, errRead)
}

func TestPrompter_IntUntil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		want        int
		wantErr     error
		wantInvalid int
	}{
		{name: "lower bound", input: "150\n", want: 150},
		{name: "upper bound", input: "2000\n", want: 2000},
		{name: "out of range first", input: "100\n2001\n149\n1999\n", want: 1999},
		{name: "not a number", input: "abc\n\n300\n", want: 300, wantInvalid: 2},
		{name: "first token only", input: "  500 600\n", want: 500},
		{name: "last line without newline", input: "100\n175", want: 175},
		{name: "end of input", input: "100\n", wantErr: io.EOF},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			p := NewPrompter(strings.NewReader(tt.input), out)

			got, err := p.IntUntil("limit: ", func(n int) bool { return n >= 150 && n <= 2000 })
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantInvalid, strings.Count(out.String(), invalidNumberMsg))
		})
	}
}

func TestPrompter_Char(t *testing.T) {
	t.Parallel()

	p := NewPrompter(strings.NewReader("  view all\n\nq"), &bytes.Buffer{})

	r, ok, err := p.Char("> ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 'v', r)

	_, ok, err = p.Char("> ")
	require.NoError(t, err)
	assert.False(t, ok)

	r, ok, err = p.Char("> ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 'q', r)

	_, _, err = p.Char("> ")
	assert.ErrorIs(t, err, io.EOF)
}
