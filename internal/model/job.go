// Package model defines the two persistent entities the crawler core
// operates on (CrawlJob, CrawledPage) and the identity scheme they share.
package model

import (
	"crypto/rand"
	"time"
)

// JobStatus is the lifecycle state of a CrawlJob. Transitions are monotone:
// Pending -> Running -> Done. Error is reserved but never produced by the
// core itself.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobError   JobStatus = "error"
)

// CrawlJob is an operator-submitted seed URL awaiting (or having completed)
// a BFS crawl. Identity is OID, a 15-character alphanumeric string.
type CrawlJob struct {
	OID       string
	StartURL  string
	Status    JobStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

const oidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const oidLength = 15

// NewOID generates a 15-character alphanumeric object id. This mirrors the
// original crawler's `thread_rng().sample_iter(&Alphanumeric).take(15)`
// scheme; it is not a UUID and carries no uniqueness guarantee beyond the
// size of the alphabet, same as the source it's grounded on.
func NewOID() string {
	// Bytes at or above limit are discarded so every alphabet character is
	// equally likely (256 is not a multiple of the alphabet size).
	const limit = 256 - 256%len(oidAlphabet)
	buf := make([]byte, oidLength)
	out := make([]byte, 0, oidLength)
	for len(out) < oidLength {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand.Read on a supported platform does not fail in
			// practice; fall back to a degenerate but well-formed id rather
			// than panicking the caller.
			for i := range buf {
				buf[i] = oidAlphabet[0]
			}
			return string(buf)
		}
		for _, b := range buf {
			if int(b) < limit && len(out) < oidLength {
				out = append(out, oidAlphabet[int(b)%len(oidAlphabet)])
			}
		}
	}
	return string(out)
}

// NewCrawlJob creates a pending job for the given seed URL with a freshly
// generated OID and created/updated timestamps equal to now.
func NewCrawlJob(startURL string) *CrawlJob {
	now := time.Now().UTC()
	return &CrawlJob{
		OID:       NewOID(),
		StartURL:  startURL,
		Status:    JobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkRunning transitions the job to running, bumping UpdatedAt.
func (j *CrawlJob) MarkRunning() {
	j.Status = JobRunning
	j.UpdatedAt = time.Now().UTC()
}

// MarkDone transitions the job to done, bumping UpdatedAt.
func (j *CrawlJob) MarkDone() {
	j.Status = JobDone
	j.UpdatedAt = time.Now().UTC()
}
