package tokenize

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ktheindifferent/crawlerd/internal/urlnorm"
)

// dateExceptionPatterns are the date regexes from spec.md §4.3.8b: a token
// matching any of these is retained even if it is also a stopword.
var dateExceptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),
	regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`),
	regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{4}$`),
	regexp.MustCompile(`^\d{8}$`),
	regexp.MustCompile(`^\d{4}\.\d{1,2}\.\d{1,2}$`),
	regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?(Z|[+-]\d{2}:\d{2})?)?$`),
}

func isDateException(token string) bool {
	for _, re := range dateExceptionPatterns {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// FilterTokens applies the full spec.md §4.3.8 token filtering pipeline, in
// order:
//
//	(a) discard stopwords, (b) except date-shaped tokens,
//	(c) discard length <= 2 or >= 20,
//	(d) discard tokens equal to a URL path segment,
//	(e) discard tokens equal to a domain label.
//
// candidates must already be lowercased, sorted and deduplicated (the
// caller does this once for the whole token set per spec.md §4.3.7).
func FilterTokens(candidates []string, pageURL *url.URL) []string {
	pathSegs := toSet(urlnorm.PathSegments(pageURL))
	domainLabels := toSet(urlnorm.DomainLabels(pageURL.Host))

	out := make([]string, 0, len(candidates))
	for _, tok := range candidates {
		if isStopword(tok) && !isDateException(tok) {
			continue
		}
		if len(tok) <= 2 || len(tok) >= 20 {
			continue
		}
		if _, ok := pathSegs[tok]; ok {
			continue
		}
		if _, ok := domainLabels[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = struct{}{}
	}
	return set
}
