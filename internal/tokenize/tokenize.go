package tokenize

import (
	"net/url"
	"sort"
	"strings"
)

// Result is the output of Extract: the filtered token set and the
// deduplicated, sorted outbound links, per spec.md §4.3 steps 6-9.
type Result struct {
	Tokens []string
	Links  []string
}

// Extract runs spec.md §4.3 steps 3-9 over an HTML body fetched from
// pageURL: parse HTML, classify page/link MIME types, sort+dedup, filter
// tokens, and return the final token/link sets.
//
// An empty body yields an empty Result and no error (step 3).
func Extract(body []byte, pageURL *url.URL) (*Result, error) {
	if len(body) == 0 {
		return &Result{}, nil
	}

	var rawTokens []string
	var rawLinks []string

	if mimeType, ok := mimeForPath(stripQuery(pageURL.Path)); ok {
		// Step 6: the page itself is a non-HTML resource by extension;
		// emit its MIME type as the sole token instead of parsing text.
		rawTokens = append(rawTokens, mimeType)
	} else {
		parsed, err := ParseHTML(body, pageURL)
		if err != nil {
			return nil, err
		}
		rawTokens = append(rawTokens, parsed.Tokens...)
		for _, l := range parsed.Links {
			rawLinks = append(rawLinks, l.String())
			if mimeType, ok := mimeForPath(stripQuery(l.Path)); ok {
				rawTokens = append(rawTokens, mimeType)
			}
		}
	}

	// Step 7: sort + dedup both sets.
	tokens := sortedUniqueStrings(rawTokens)
	links := sortedUniqueStrings(rawLinks)

	// Step 8: token filtering.
	filtered := FilterTokens(tokens, pageURL)

	return &Result{Tokens: filtered, Links: links}, nil
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i != -1 {
		return p[:i]
	}
	return p
}

func sortedUniqueStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	cp := make([]string, len(in))
	copy(cp, in)
	sort.Strings(cp)
	out := cp[:0]
	var prev string
	first := true
	for _, v := range cp {
		if first || v != prev {
			out = append(out, v)
			prev = v
			first = false
		}
	}
	return out
}
