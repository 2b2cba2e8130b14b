package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktheindifferent/crawlerd/internal/model"
	"github.com/ktheindifferent/crawlerd/internal/store"
)

type fakeWalker struct {
	crawled []string
}

func (f *fakeWalker) Crawl(ctx context.Context, jobOID, startURL string) error {
	f.crawled = append(f.crawled, startURL)
	return nil
}

type fakeResolver struct{}

func (fakeResolver) LookupBatch(ctx context.Context, domains []string) []string { return nil }

func TestLoop_RunsOperatorJobBeforeDiscovery(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	job := model.NewCrawlJob("https://pending.test/")
	require.NoError(t, s.InsertJob(ctx, job))

	w := &fakeWalker{}
	l := New(s, w, fakeResolver{})
	l.runOnce(ctx)

	require.Len(t, w.crawled, 1)
	assert.Equal(t, "https://pending.test/", w.crawled[0])

	got, err := s.GetJob(ctx, job.OID)
	require.NoError(t, err)
	assert.Equal(t, model.JobDone, got.Status)
}

func TestLoop_StartStopTransitionsStatus(t *testing.T) {
	s := store.NewMemoryStore()
	w := &fakeWalker{}
	l := New(s, w, fakeResolver{})
	l.LoopInterval = time.Hour

	assert.Equal(t, "stopped", l.Status())
	l.Start(context.Background())
	assert.Equal(t, "running", l.Status())
	l.Stop()
	assert.Equal(t, "stopped", l.Status())
	l.Wait()
}

// blockingWalker holds Crawl open until release is closed, so a test can
// observe whether Stop lets an in-flight crawl finish.
type blockingWalker struct {
	started  chan struct{}
	release  chan struct{}
	finished chan struct{}
}

func newBlockingWalker() *blockingWalker {
	return &blockingWalker{
		started:  make(chan struct{}),
		release:  make(chan struct{}),
		finished: make(chan struct{}),
	}
}

func (w *blockingWalker) Crawl(ctx context.Context, jobOID, startURL string) error {
	close(w.started)
	select {
	case <-w.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	close(w.finished)
	return nil
}

func TestLoop_StopDoesNotCancelInFlightCrawl(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	job := model.NewCrawlJob("https://pending.test/")
	require.NoError(t, s.InsertJob(ctx, job))

	w := newBlockingWalker()
	l := New(s, w, fakeResolver{})
	l.LoopInterval = time.Hour

	l.Start(ctx)
	<-w.started

	l.Stop()
	assert.Equal(t, "stopped", l.Status())

	select {
	case <-w.finished:
		t.Fatal("crawl finished before being released; Stop must not cancel the in-flight context")
	case <-time.After(20 * time.Millisecond):
	}

	close(w.release)
	<-w.finished
	l.Wait()
}
