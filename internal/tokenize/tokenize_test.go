package tokenize

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 — Stopword and length filtering.
func TestExtract_StopwordAndLengthFiltering(t *testing.T) {
	body := []byte(`<html><body><p>The Rust language is fast in 2024-01-02 on 01/02/2024. Cat.</p></body></html>`)
	pageURL, err := url.Parse("https://example.test/a")
	require.NoError(t, err)

	res, err := Extract(body, pageURL)
	require.NoError(t, err)

	assert.Equal(t, []string{"01/02/2024", "2024-01-02", "cat", "fast", "language", "rust"}, res.Tokens)
}

// S2 — MIME classification.
func TestExtract_MimeClassification(t *testing.T) {
	body := []byte(`<html><body><img src="/a.png"><a href="/b.pdf"></a></body></html>`)
	pageURL, err := url.Parse("https://site.test/")
	require.NoError(t, err)

	res, err := Extract(body, pageURL)
	require.NoError(t, err)

	assert.Contains(t, res.Tokens, "image/png")
	assert.Contains(t, res.Tokens, "application/pdf")
	assert.Equal(t, []string{"https://site.test/a.png", "https://site.test/b.pdf"}, res.Links)

	// Cross-check link extraction against an independent DOM query, so a
	// future change to the hand-rolled tokenizer walk can't silently
	// change which elements count as links without a test noticing.
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("img[src], a[href]").Length())
}

// Text outside <body> (e.g. <title>) must not be tokenized, per spec.md
// §4.3 step 4's "Traverse descendants of <body>".
func TestExtract_IgnoresTextOutsideBody(t *testing.T) {
	body := []byte(`<html><head><title>Admin Login</title></head><body><p>genuinecontent</p></body></html>`)
	pageURL, err := url.Parse("https://example.test/")
	require.NoError(t, err)

	res, err := Extract(body, pageURL)
	require.NoError(t, err)

	assert.Equal(t, []string{"genuinecontent"}, res.Tokens)
}

func TestExtract_EmptyBody(t *testing.T) {
	pageURL, _ := url.Parse("https://x.test/")
	res, err := Extract(nil, pageURL)
	require.NoError(t, err)
	assert.Empty(t, res.Tokens)
	assert.Empty(t, res.Links)
}

func TestFilterTokens_DropsDomainAndPathSegments(t *testing.T) {
	pageURL, _ := url.Parse("https://example.test/blog/example")
	out := FilterTokens([]string{"example", "blog", "genuinecontent"}, pageURL)
	assert.Equal(t, []string{"genuinecontent"}, out)
}

func TestIsDateException(t *testing.T) {
	cases := []string{"01/02/2024", "2024-01-02", "2024/01/02", "02-01-2024", "20240102", "2024.01.02", "02.01.2024", "2024-01-02T15:04:05Z"}
	for _, c := range cases {
		assert.True(t, isDateException(c), c)
	}
	assert.False(t, isDateException("language"))
}
