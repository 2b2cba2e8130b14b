package model

import "sort"

// CrawledPage is one fetched URL with its extracted content. URL is the
// logical primary key; OID exists purely for cache addressing alongside
// CrawlJob.
type CrawledPage struct {
	OID         string
	CrawlJobOID string
	URL         string
	Tokens      []string
	Links       []string
	StatusCode  int  // 0 means "not fetched" (e.g. a pure FetchFailed record)
	HasStatus   bool // true iff StatusCode is meaningful
	Error       string
	Timestamp   int64 // epoch seconds of fetch
}

// NewCrawledPage builds a page record with sorted, deduplicated tokens and
// links, per the spec.md §3 CrawledPage invariant.
func NewCrawledPage(crawlJobOID, url string, tokens, links []string, statusCode int, hasStatus bool, errStr string, timestamp int64) *CrawledPage {
	return &CrawledPage{
		OID:         NewOID(),
		CrawlJobOID: crawlJobOID,
		URL:         url,
		Tokens:      sortedUnique(tokens),
		Links:       sortedUnique(links),
		StatusCode:  statusCode,
		HasStatus:   hasStatus,
		Error:       errStr,
		Timestamp:   timestamp,
	}
}

func sortedUnique(in []string) []string {
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
