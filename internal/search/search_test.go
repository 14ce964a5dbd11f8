package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		engine string
		want   string
	}{
		{name: "bare domain", query: "example.com", engine: "google", want: "https://example.com"},
		{name: "domain with path", query: "github.com/golang/go", engine: "google", want: "https://github.com/golang/go"},
		{name: "explicit scheme kept", query: "http://example.org", engine: "google", want: "http://example.org"},
		{name: "surrounding space trimmed", query: "  example.com  ", engine: "bing", want: "https://example.com"},
		{name: "upper case domain", query: "Example.COM", engine: "google", want: "https://Example.COM"},
		{name: "google query", query: "golang generics", engine: "google", want: "https://www.google.com/search?q=golang%20generics"},
		{name: "bing query", query: "weather", engine: "bing", want: "https://www.bing.com/search?q=weather"},
		{name: "reserved characters", query: "a&b=c?", engine: "google", want: "https://www.google.com/search?q=a%26b%3Dc%3F"},
		{name: "unknown engine", query: "cats", engine: "altavista", want: "https://www.google.com/search?q=cats"},
		{name: "dotted word treated as domain", query: "notes.txt", engine: "google", want: "https://notes.txt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.query, tc.engine)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := Resolve(q, "google")
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "it's%20(not)%20*that*%20hard!", EncodeComponent("it's (not) *that* hard!"))
	assert.Equal(t, "%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82", EncodeComponent("привет"))
	assert.Equal(t, "a~b_c.d-e", EncodeComponent("a~b_c.d-e"))
}

func TestWithScheme(t *testing.T) {
	assert.Equal(t, "https://example.com", WithScheme("example.com"))
	assert.Equal(t, "ftp://files.example.com", WithScheme("ftp://files.example.com"))
	assert.Equal(t, "https://httpbin.org", WithScheme("httpbin.org"))
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "Bing", Lookup("bing").Name)
	assert.Equal(t, "Google", Lookup("").Name)
}
