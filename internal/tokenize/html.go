package tokenize

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// skipTags are elements whose descendant text is never collected, per
// spec.md §4.3.4.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"svg": true, "canvas": true, "iframe": true, "template": true,
}

// linkAttrTags are the tag/attribute pairs spec.md §4.3.5 extracts outbound
// links from. audio/video "source" children are handled separately since
// their eligibility depends on the parent element.
var linkAttrTags = map[string]string{
	"a":      "href",
	"img":    "src",
	"audio":  "src",
	"video":  "src",
	"script": "src",
}

// ParsedPage holds the raw (pre-filter) tokens and absolute outbound links
// extracted from one HTML document.
type ParsedPage struct {
	Tokens []string
	Links  []*url.URL
}

// ParseHTML walks body as HTML relative to pageURL (used to resolve
// relative links), following spec.md §4.3 steps 4-5: collect visible text
// tokens found inside <body> and outside skipped elements, and collect
// outbound links from the fixed set of attribute positions (link
// extraction is not body-scoped; a <link rel=stylesheet> in <head> still
// counts).
func ParseHTML(body []byte, pageURL *url.URL) (*ParsedPage, error) {
	utf8Reader, err := charset.NewReader(bytes.NewReader(body), "text/html")
	if err != nil {
		return nil, err
	}
	tok := html.NewTokenizer(utf8Reader)

	var tokens []string
	var links []*url.URL
	var skipStack []string
	audioDepth, videoDepth := 0, 0
	inBody := false

	addLink := func(raw string) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return
		}
		u, err := url.Parse(raw)
		if err != nil {
			return
		}
		abs := u
		if !u.IsAbs() {
			abs = pageURL.ResolveReference(u)
		}
		links = append(links, abs)
	}

	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return &ParsedPage{Tokens: tokens, Links: links}, nil

		case html.TextToken:
			if inBody && len(skipStack) == 0 {
				text := string(tok.Text())
				for _, word := range strings.Fields(text) {
					w := strings.TrimFunc(word, func(r rune) bool {
						return !isAlphanumericRune(r)
					})
					if w == "" {
						continue
					}
					tokens = append(tokens, strings.ToLower(w))
				}
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			tagName := string(name)
			attrs := map[string]string{}
			if hasAttr {
				for {
					k, v, more := tok.TagAttr()
					attrs[string(k)] = string(v)
					if !more {
						break
					}
				}
			}

			switch tagName {
			case "audio":
				if src, ok := attrs["src"]; ok {
					addLink(src)
				}
			case "video":
				if src, ok := attrs["src"]; ok {
					addLink(src)
				}
			case "source":
				if (audioDepth > 0 || videoDepth > 0) {
					if src, ok := attrs["src"]; ok {
						addLink(src)
					}
				}
			case "link":
				if strings.EqualFold(attrs["rel"], "stylesheet") {
					if href, ok := attrs["href"]; ok {
						addLink(href)
					}
				}
			default:
				if attrName, ok := linkAttrTags[tagName]; ok {
					if v, ok := attrs[attrName]; ok {
						addLink(v)
					}
				}
			}

			if tagName == "body" {
				inBody = true
			}

			if tt != html.SelfClosingTagToken {
				if skipTags[tagName] {
					skipStack = append(skipStack, tagName)
				}
				if tagName == "audio" {
					audioDepth++
				}
				if tagName == "video" {
					videoDepth++
				}
			}

		case html.EndTagToken:
			name, _ := tok.TagName()
			tagName := string(name)
			if len(skipStack) > 0 && skipStack[len(skipStack)-1] == tagName {
				skipStack = skipStack[:len(skipStack)-1]
			}
			if tagName == "audio" && audioDepth > 0 {
				audioDepth--
			}
			if tagName == "video" && videoDepth > 0 {
				videoDepth--
			}
			if tagName == "body" {
				inBody = false
			}
		}
	}
}

func isAlphanumericRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r > 127) // permit non-ASCII letters through; trimming is conservative on ASCII punctuation only
}
