// Package service implements C6, the long-running control loop: a
// one-shot start latch, a single-BFS mutex, and an interleaving of
// operator-submitted jobs with self-directed domain discovery. Grounded
// on the teacher's own active/started bookkeeping in fetcher.go
// (FetchManager.started, the keepAliveQuit channel) generalized to an
// atomic.Bool + sync.Once + sync.Mutex, the idiomatic Go shape for the
// same "latch once, toggle an active flag" lifecycle.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ktheindifferent/crawlerd/internal/dnscache"
	"github.com/ktheindifferent/crawlerd/internal/domaingen"
	"github.com/ktheindifferent/crawlerd/internal/logging"
	"github.com/ktheindifferent/crawlerd/internal/model"
	"github.com/ktheindifferent/crawlerd/internal/store"
)

// Walker is the subset of *walker.Walker the loop depends on.
type Walker interface {
	Crawl(ctx context.Context, jobOID, startURL string) error
}

// Loop is the service-loop singleton described in spec.md §4.6.
type Loop struct {
	Store    store.Store
	Walker   Walker
	DNSCache dnscache.Resolver

	// LoopInterval is the sleep between iterations; defaults to 10s.
	LoopInterval time.Duration

	active    atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
	bfsLock   sync.Mutex

	log logging.Logger

	stopCh chan struct{}
	done   chan struct{}
}

// New builds a Loop. LoopInterval defaults to 10 seconds if zero.
func New(s store.Store, w Walker, resolver dnscache.Resolver) *Loop {
	return &Loop{
		Store:        s,
		Walker:       w,
		DNSCache:     resolver,
		LoopInterval: 10 * time.Second,
		log:          logging.Default(),
	}
}

// Start latches the loop active and spawns its body on a goroutine. Only
// the first call has any effect, per spec.md §4.6's "a single-shot start
// latches the loop active". ctx is passed through to every crawl; Stop
// never cancels it, so an in-flight BFS always runs to completion.
func (l *Loop) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		l.stopCh = make(chan struct{})
		l.done = make(chan struct{})
		l.active.Store(true)
		go l.run(ctx)
	})
}

// Stop clears the active flag and wakes the loop if it is sleeping between
// iterations. It does not cancel the context handed to an in-flight BFS —
// per spec.md §4.6/§5, stopping the loop lets the current crawl run to
// completion; only the next iteration is suppressed.
func (l *Loop) Stop() {
	l.active.Store(false)
	l.stopOnce.Do(func() {
		if l.stopCh != nil {
			close(l.stopCh)
		}
	})
}

// Wait blocks until the loop's goroutine has exited — that is, until any
// in-flight BFS started before Stop completes. Callers that also hold the
// context passed to Start should call Wait before cancelling it, or they
// cut the in-flight crawl short despite Stop's own guarantee not to.
func (l *Loop) Wait() {
	if l.done != nil {
		<-l.done
	}
}

// Status reports "running" or "stopped".
func (l *Loop) Status() string {
	if l.active.Load() {
		return "running"
	}
	return "stopped"
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)
	interval := l.LoopInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	for l.active.Load() {
		l.bfsLock.Lock()
		l.runOnce(ctx)
		l.bfsLock.Unlock()

		if !l.active.Load() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-l.stopCh:
			return
		case <-time.After(interval):
		}
	}
}

// runOnce implements spec.md §4.6 steps 2-4: take one pending operator
// job if one exists, otherwise run the discovery path.
func (l *Loop) runOnce(ctx context.Context) {
	job, err := l.Store.NextPendingJob(ctx)
	if err != nil {
		l.log.Warnf("service: looking up pending job: %v", err)
		return
	}
	if job != nil {
		l.runOperatorJob(ctx, job)
		return
	}
	l.runDiscovery(ctx)
}

func (l *Loop) runOperatorJob(ctx context.Context, job *model.CrawlJob) {
	job.MarkRunning()
	if err := l.Store.UpdateJobStatus(ctx, job.OID, model.JobRunning); err != nil {
		l.log.Warnf("service: marking job %s running: %v", job.OID, err)
		return
	}

	if err := l.Walker.Crawl(ctx, job.OID, job.StartURL); err != nil {
		l.log.Warnf("service: crawling job %s: %v", job.OID, err)
	}

	job.MarkDone()
	if err := l.Store.UpdateJobStatus(ctx, job.OID, model.JobDone); err != nil {
		l.log.Warnf("service: marking job %s done: %v", job.OID, err)
	}
}

func (l *Loop) runDiscovery(ctx context.Context) {
	seeds := make([]string, len(seedURLs))
	copy(seeds, seedURLs)

	candidates := domaingen.Generate()
	resolved := domaingen.Resolve(ctx, l.DNSCache, candidates)
	for _, domain := range resolved {
		seeds = append(seeds, "https://"+domain+"/")
	}

	err := domaingen.RunSeeded(ctx, seeds, func(ctx context.Context, seedURL string) error {
		jobOID := model.NewOID()
		return l.Walker.Crawl(ctx, jobOID, seedURL)
	})
	if err != nil {
		l.log.Warnf("service: discovery pass: %v", err)
	}
}
