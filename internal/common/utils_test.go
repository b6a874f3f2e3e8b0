package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "whitespace", input: "  https://example.com  ", expected: "https://example.com"},
		{name: "markdown link", input: "[click here](https://example.com/a)", expected: "https://example.com/a"},
		{name: "trailing comma", input: "https://example.com,", expected: "https://example.com"},
		{name: "wrapped in parens", input: "(https://example.com)", expected: "https://example.com"},
		{name: "angle brackets", input: "<https://example.com>", expected: "https://example.com"},
		{name: "clean", input: "http://127.0.0.1:5000/api", expected: "http://127.0.0.1:5000/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeURL(tt.input))
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "https", input: "https://example.com/path?q=1", want: "https://example.com/path?q=1"},
		{name: "host with port", input: "http://127.0.0.1:5000/api", want: "http://127.0.0.1:5000/api"},
		{name: "ipv6 with port", input: "http://[::1]:5000/api", want: "http://[::1]:5000/api"},
		{name: "ipv6", input: "https://[2001:db8::1]/path", want: "https://[2001:db8::1]/path"},
		{name: "sanitized first", input: " https://example.com, ", want: "https://example.com"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "no scheme", input: "example.com", wantErr: true},
		{name: "ftp", input: "ftp://example.com", wantErr: true},
		{name: "spaces", input: "https://example.com/a b", wantErr: true},
		{name: "no host", input: "http:///path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalOutput(t *testing.T) {
	v := struct {
		Success bool   `json:"success" yaml:"success"`
		Summary string `json:"summary" yaml:"summary"`
	}{Success: true, Summary: "short"}

	out, err := MarshalOutput(v, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "summary": "short"}`, string(out))

	out, err = MarshalOutput(v, "yaml")
	require.NoError(t, err)
	assert.YAMLEq(t, "success: true\nsummary: short\n", string(out))

	_, err = MarshalOutput(v, "xml")
	assert.Error(t, err)
}
