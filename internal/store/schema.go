package store

// schemaTemplate is the keyspace and table DDL for the crawl store,
// structured as a Go template the same way the teacher's cassandra package
// parameterizes keyspace name and replication factor. Adapted to the two
// tables SPEC_FULL.md's C1 section names instead of the teacher's
// links/domain_info/segments layout.
const schemaTemplate = `
CREATE KEYSPACE IF NOT EXISTS {{.Keyspace}}
WITH REPLICATION = { 'class': 'SimpleStrategy', 'replication_factor': {{.ReplicationFactor}} };

-- crawl_jobs records one row per operator-submitted crawl job. Discovery-path
-- crawls use a synthetic job id and do not create a row here.
CREATE TABLE IF NOT EXISTS {{.Keyspace}}.crawl_jobs (
	oid        text PRIMARY KEY,
	start_url  text,
	status     text,
	created_at timestamp,
	updated_at timestamp
);

CREATE INDEX IF NOT EXISTS ON {{.Keyspace}}.crawl_jobs (status);

-- crawled_pages records one row per distinct url, holding the filtered
-- token set and outbound links used by C7's retrieval. url is the logical
-- primary key per spec.md §3/§6: re-crawling a url overwrites its row
-- instead of accumulating a duplicate.
CREATE TABLE IF NOT EXISTS {{.Keyspace}}.crawled_pages (
	url           text PRIMARY KEY,
	oid           text,
	crawl_job_oid text,
	tokens        list<text>,
	links         list<text>,
	status_code   int,
	has_status    boolean,
	error         text,
	crawled_at    timestamp
);

CREATE INDEX IF NOT EXISTS ON {{.Keyspace}}.crawled_pages (crawled_at);

-- visited_urls lets HasVisited answer in a single point read instead of
-- scanning crawled_pages, mirroring the teacher's use of a purpose-built
-- table (domain_info) rather than deriving cursor state from the primary
-- fact table. Keyed by url alone (not job), so the short-circuit in
-- spec.md §4.4 applies across every job, not just the one that first
-- visited a url.
CREATE TABLE IF NOT EXISTS {{.Keyspace}}.visited_urls (
	url text PRIMARY KEY
);
`
