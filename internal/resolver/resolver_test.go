package resolver

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sjcli/internal/errors"
)

func newTestResolver(input string, interactive bool) (*PromptResolver, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &PromptResolver{
		in:          bufio.NewReader(strings.NewReader(input)),
		out:         out,
		interactive: func() bool { return interactive },
	}, out
}

func TestResolveInput(t *testing.T) {
	r, out := newTestResolver("/data/journals\n", true)

	path, err := r.ResolveInput()
	require.NoError(t, err)

	assert.Equal(t, "/data/journals", path)
	assert.Contains(t, out.String(), "Sales Journal for")
}

func TestResolveInput_EmptyAnswer(t *testing.T) {
	r, _ := newTestResolver("\n", true)

	path, err := r.ResolveInput()
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestResolveInput_NotInteractive(t *testing.T) {
	r, out := newTestResolver("", false)

	_, err := r.ResolveInput()
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingDependency))
	assert.Contains(t, err.Error(), "-in")
	assert.Empty(t, out.String(), "should not prompt without a terminal")
}

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
	}{
		{"explicit path", "/tmp/out.xlsx\n", "/tmp/out.xlsx"},
		{"blank accepts default", "\n", "2024-03-31 unit aggregation report.xlsx"},
		{"dash cancels", "-\n", ""},
		{"eof accepts default", "", "2024-03-31 unit aggregation report.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestResolver(tt.input, true)

			path, err := r.ResolveOutput("2024-03-31 unit aggregation report.xlsx")
			require.NoError(t, err)

			assert.Equal(t, tt.want, path)
			assert.Contains(t, out.String(), "2024-03-31 unit aggregation report.xlsx")
		})
	}
}

func TestResolveOutput_NotInteractive(t *testing.T) {
	r, _ := newTestResolver("", false)

	_, err := r.ResolveOutput("default.xlsx")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingDependency))
	assert.Contains(t, err.Error(), "-out")
}

func TestNewPromptResolver(t *testing.T) {
	r := NewPromptResolver()
	require.NotNil(t, r)
	assert.NotNil(t, r.in)
	assert.NotNil(t, r.out)
	assert.NotNil(t, r.interactive)
}
