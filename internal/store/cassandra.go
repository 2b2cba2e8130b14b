package store

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/gocql/gocql"

	"github.com/ktheindifferent/crawlerd/internal/logging"
	"github.com/ktheindifferent/crawlerd/internal/model"
)

// CassandraConfig configures the durable store, mirroring the fields the
// teacher reads off walker.Config.Cassandra in cassandra/helpers.go.
type CassandraConfig struct {
	Hosts             []string
	Keyspace          string
	ReplicationFactor int
	Timeout           time.Duration
	CQLVersion        string
	ProtoVersion      int
	Port              int
	NumConns          int
}

// clusterConfig builds a *gocql.ClusterConfig from c, the same translation
// the teacher's cassandra.GetConfig performs.
func (c CassandraConfig) clusterConfig() *gocql.ClusterConfig {
	cfg := gocql.NewCluster(c.Hosts...)
	cfg.Keyspace = c.Keyspace
	cfg.Timeout = c.Timeout
	if c.CQLVersion != "" {
		cfg.CQLVersion = c.CQLVersion
	}
	if c.ProtoVersion != 0 {
		cfg.ProtoVersion = c.ProtoVersion
	}
	if c.Port != 0 {
		cfg.Port = c.Port
	}
	if c.NumConns != 0 {
		cfg.NumConns = c.NumConns
	}
	return cfg
}

// CreateSchema creates the keyspace and tables described in schemaTemplate,
// same shape as the teacher's cassandra.CreateSchema (parse the DDL as a
// template, execute each semicolon-delimited statement against a
// keyspace-less session).
func CreateSchema(c CassandraConfig) error {
	cfg := c.clusterConfig()
	cfg.Keyspace = ""
	db, err := cfg.CreateSession()
	if err != nil {
		return fmt.Errorf("store: connecting to create schema: %w", err)
	}
	defer db.Close()

	tmpl, err := template.New("schema").Parse(schemaTemplate)
	if err != nil {
		return fmt.Errorf("store: parsing schema template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c); err != nil {
		return fmt.Errorf("store: executing schema template: %w", err)
	}

	for _, stmt := range splitStatements(buf.String()) {
		if stmt == "" {
			continue
		}
		if err := db.Query(stmt).Exec(); err != nil {
			return fmt.Errorf("store: running schema statement: %w", err)
		}
	}
	return nil
}

func splitStatements(ddl string) []string {
	var stmts []string
	var cur bytes.Buffer
	for _, r := range ddl {
		cur.WriteRune(r)
		if r == ';' {
			stmts = append(stmts, trimmed(cur.String()))
			cur.Reset()
		}
	}
	if t := trimmed(cur.String()); t != "" {
		stmts = append(stmts, t)
	}
	return stmts
}

func trimmed(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == '\n' || s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == '\n' || s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == ';') {
		end--
	}
	return s[start:end]
}

// cassandraStore is the durable Store implementation, grounded on the
// teacher's cassandra.Datastore session lifecycle and query shapes.
type cassandraStore struct {
	db  *gocql.Session
	log logging.Logger
}

// NewCassandraStore opens a session against c and returns a Store backed by
// it. Callers typically wrap the result with NewCachedStore.
func NewCassandraStore(c CassandraConfig) (Store, error) {
	db, err := c.clusterConfig().CreateSession()
	if err != nil {
		return nil, fmt.Errorf("store: creating cassandra session: %w", err)
	}
	return &cassandraStore{db: db, log: logging.Default()}, nil
}

func (s *cassandraStore) InsertJob(ctx context.Context, job *model.CrawlJob) error {
	q := s.db.Query(
		`INSERT INTO crawl_jobs (oid, start_url, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		job.OID, job.StartURL, string(job.Status), job.CreatedAt, job.UpdatedAt,
	).WithContext(ctx)
	if err := q.Exec(); err != nil {
		return fmt.Errorf("store: inserting job %s: %w", job.OID, err)
	}
	return nil
}

func (s *cassandraStore) UpdateJobStatus(ctx context.Context, oid string, status model.JobStatus) error {
	q := s.db.Query(
		`UPDATE crawl_jobs SET status = ?, updated_at = ? WHERE oid = ?`,
		string(status), time.Now().UTC(), oid,
	).WithContext(ctx)
	if err := q.Exec(); err != nil {
		return fmt.Errorf("store: updating job %s: %w", oid, err)
	}
	return nil
}

func (s *cassandraStore) GetJob(ctx context.Context, oid string) (*model.CrawlJob, error) {
	var job model.CrawlJob
	var status string
	itr := s.db.Query(
		`SELECT oid, start_url, status, created_at, updated_at FROM crawl_jobs WHERE oid = ?`, oid,
	).WithContext(ctx).Iter()
	ok := itr.Scan(&job.OID, &job.StartURL, &status, &job.CreatedAt, &job.UpdatedAt)
	if err := itr.Close(); err != nil {
		return nil, fmt.Errorf("store: getting job %s: %w", oid, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	job.Status = model.JobStatus(status)
	return &job, nil
}

func (s *cassandraStore) NextPendingJob(ctx context.Context) (*model.CrawlJob, error) {
	itr := s.db.Query(
		`SELECT oid, start_url, status, created_at, updated_at FROM crawl_jobs WHERE status = ? LIMIT 1 ALLOW FILTERING`,
		string(model.JobPending),
	).WithContext(ctx).Iter()

	var job model.CrawlJob
	var status string
	ok := itr.Scan(&job.OID, &job.StartURL, &status, &job.CreatedAt, &job.UpdatedAt)
	if err := itr.Close(); err != nil {
		return nil, fmt.Errorf("store: scanning for pending job: %w", err)
	}
	if !ok {
		return nil, nil
	}
	job.Status = model.JobStatus(status)
	return &job, nil
}

func (s *cassandraStore) HasVisited(ctx context.Context, url string) (bool, error) {
	itr := s.db.Query(
		`SELECT url FROM visited_urls WHERE url = ?`, url,
	).WithContext(ctx).Iter()
	var found string
	ok := itr.Scan(&found)
	if err := itr.Close(); err != nil {
		return false, fmt.Errorf("store: checking visited %s: %w", url, err)
	}
	return ok, nil
}

func (s *cassandraStore) GetPage(ctx context.Context, url string) (*model.CrawledPage, error) {
	var p model.CrawledPage
	var crawledAt time.Time
	itr := s.db.Query(
		`SELECT url, oid, crawl_job_oid, tokens, links, status_code, has_status, error, crawled_at FROM crawled_pages WHERE url = ?`, url,
	).WithContext(ctx).Iter()
	ok := itr.Scan(&p.URL, &p.OID, &p.CrawlJobOID, &p.Tokens, &p.Links, &p.StatusCode, &p.HasStatus, &p.Error, &crawledAt)
	if err := itr.Close(); err != nil {
		return nil, fmt.Errorf("store: getting page %s: %w", url, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	p.Timestamp = crawledAt.Unix()
	return &p, nil
}

// InsertPage upserts by url: crawled_pages.url is the table's PRIMARY KEY,
// so an INSERT for a url already on file overwrites that row in place
// rather than creating a duplicate (spec.md §3's url-keyed uniqueness).
func (s *cassandraStore) InsertPage(ctx context.Context, page *model.CrawledPage) error {
	batch := s.db.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(
		`INSERT INTO crawled_pages (url, oid, crawl_job_oid, tokens, links, status_code, has_status, error, crawled_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		page.URL, page.OID, page.CrawlJobOID, page.Tokens, page.Links, page.StatusCode, page.HasStatus, page.Error, time.Unix(page.Timestamp, 0).UTC(),
	)
	batch.Query(
		`INSERT INTO visited_urls (url) VALUES (?)`,
		page.URL,
	)
	if err := s.db.ExecuteBatch(batch); err != nil {
		return fmt.Errorf("store: inserting page %s: %w", page.URL, err)
	}
	return nil
}

func (s *cassandraStore) AllPages(ctx context.Context) ([]*model.CrawledPage, error) {
	itr := s.db.Query(
		`SELECT url, oid, crawl_job_oid, tokens, links, status_code, has_status, error, crawled_at FROM crawled_pages`,
	).WithContext(ctx).Iter()

	var pages []*model.CrawledPage
	for {
		var p model.CrawledPage
		var crawledAt time.Time
		if !itr.Scan(&p.URL, &p.OID, &p.CrawlJobOID, &p.Tokens, &p.Links, &p.StatusCode, &p.HasStatus, &p.Error, &crawledAt) {
			break
		}
		p.Timestamp = crawledAt.Unix()
		pages = append(pages, &p)
	}
	if err := itr.Close(); err != nil {
		return nil, fmt.Errorf("store: scanning crawled_pages: %w", err)
	}
	return pages, nil
}

// Close releases the underlying Cassandra session.
func (s *cassandraStore) Close() {
	s.db.Close()
}
