package retrieval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktheindifferent/crawlerd/internal/model"
	"github.com/ktheindifferent/crawlerd/internal/store"
)

func TestQueryByRelevance_RanksAndTruncates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	now := time.Now().Unix()

	strong := model.NewCrawledPage("job", "https://rust-lang.test/rust", []string{"rust", "language"}, nil, 200, true, "", now)
	weak := model.NewCrawledPage("job", "https://example.test/other", []string{"other"}, nil, 200, true, "", now)

	require.NoError(t, s.InsertPage(ctx, strong))
	require.NoError(t, s.InsertPage(ctx, weak))

	results := QueryByRelevance(ctx, s, "rust", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, strong.URL, results[0].Page.URL)

	truncated := QueryByRelevance(ctx, s, "rust", 1)
	require.Len(t, truncated, 1)
	assert.Equal(t, strong.URL, truncated[0].Page.URL)
}

func TestQueryByRelevance_EmptyQueryYieldsEmptyResult(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	results := QueryByRelevance(ctx, s, "   ", 10)
	assert.Empty(t, results)
}

func TestQueryByRelevance_DiscardsNonPositiveScores(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	old := time.Now().Unix() - 2*staleWindowSeconds

	page := model.NewCrawledPage("job", "https://example.test/unrelated", nil, nil, 500, true, "boom", old)
	require.NoError(t, s.InsertPage(ctx, page))

	results := QueryByRelevance(ctx, s, "nomatch", 10)
	assert.Empty(t, results)
}

func TestSaturatingSub_ClampsAtZero(t *testing.T) {
	assert.Equal(t, 0, saturatingSub(0, 1))
	assert.Equal(t, 1, saturatingSub(2, 1))
}

func TestScored_DisplayTokensTruncatesToTwenty(t *testing.T) {
	tokens := make([]string, 25)
	for i := range tokens {
		tokens[i] = string(rune('a' + i))
	}
	page := &model.CrawledPage{Tokens: tokens}

	sc := Scored{Page: page, Score: 1}
	assert.Len(t, sc.DisplayTokens(), 20)
	assert.Equal(t, tokens[:20], sc.DisplayTokens())
}

func TestScored_DisplayTokensPassesThroughShortList(t *testing.T) {
	page := &model.CrawledPage{Tokens: []string{"a", "b"}}
	sc := Scored{Page: page, Score: 1}
	assert.Equal(t, []string{"a", "b"}, sc.DisplayTokens())
}
