// Command crawlerd is the crawlerd CLI: start the service loop (it runs
// until SIGINT/SIGTERM; there is no stop subcommand), submit a one-off seed
// crawl, run a relevance search, or create the Cassandra schema. The status
// subcommand only points at the console's GET /status. Adapted from the
// teacher's cmd package — a single root cobra.Command with config/memory-store
// persistent flags and one subcommand per operator action — collapsed from a library (cmd.Execute)
// into a plain main package since SPEC_FULL.md does not ask for a
// pluggable-handler embedding API the way the teacher's cmd package does.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ktheindifferent/crawlerd/internal/config"
	"github.com/ktheindifferent/crawlerd/internal/console"
	"github.com/ktheindifferent/crawlerd/internal/dnscache"
	"github.com/ktheindifferent/crawlerd/internal/fetch"
	"github.com/ktheindifferent/crawlerd/internal/logging"
	"github.com/ktheindifferent/crawlerd/internal/model"
	"github.com/ktheindifferent/crawlerd/internal/retrieval"
	"github.com/ktheindifferent/crawlerd/internal/service"
	"github.com/ktheindifferent/crawlerd/internal/store"
	"github.com/ktheindifferent/crawlerd/internal/walker"
)

var configPath string
var noConsole bool
var memoryOnly bool

func main() {
	root := &cobra.Command{Use: "crawlerd"}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config file to load")
	root.PersistentFlags().BoolVar(&memoryOnly, "memory-store", false, "use an in-memory store instead of Cassandra")

	root.AddCommand(startCommand(), statusCommand(), searchCommand(), seedCommand(), schemaCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() {
	if configPath != "" {
		config.ConfigName = configPath
	}
	if err := config.Load(); err != nil {
		fatalf("loading config: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func openStore() store.Store {
	if memoryOnly {
		return store.NewMemoryStore()
	}
	cassandraCfg := store.CassandraConfig{
		Hosts:             config.Config.Cassandra.Hosts,
		Keyspace:          config.Config.Cassandra.Keyspace,
		ReplicationFactor: config.Config.Cassandra.ReplicationFactor,
	}
	if d, err := time.ParseDuration(config.Config.Cassandra.Timeout); err == nil {
		cassandraCfg.Timeout = d
	}
	backend, err := store.NewCassandraStore(cassandraCfg)
	if err != nil {
		fatalf("connecting to cassandra: %v", err)
	}
	cached, err := store.NewCachedStore(backend, config.Config.CacheCapacity)
	if err != nil {
		fatalf("building cached store: %v", err)
	}
	return cached
}

func startCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "start the crawl service loop (and, unless --no-console, its status API)",
		Run: func(cmd *cobra.Command, args []string) {
			loadConfig()
			log := logging.Default()

			s := openStore()
			f, err := fetchTimeout()
			if err != nil {
				fatalf("building fetcher: %v", err)
			}
			w := walker.New(s, f)

			dnsCache, err := dnscache.Load(config.Config.DNSCache.Path)
			if err != nil {
				fatalf("loading dns cache: %v", err)
			}

			loopInterval, err := time.ParseDuration(config.Config.Service.LoopInterval)
			if err != nil {
				fatalf("parsing service.loop_interval: %v", err)
			}
			loop := service.New(s, w, dnsCache)
			loop.LoopInterval = loopInterval

			ctx, cancel := context.WithCancel(context.Background())
			loop.Start(ctx)
			log.Infof("crawlerd: service loop started")

			if !noConsole {
				srv := console.New(s, loop)
				go func() {
					if err := srv.ListenAndServe(ctx, config.Config.Console.ListenAddr); err != nil {
						log.Warnf("crawlerd: console server stopped: %v", err)
					}
				}()
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig

			loop.Stop()
			loop.Wait()
			cancel()
		},
	}
	cmd.Flags().BoolVarP(&noConsole, "no-console", "C", false, "do not start the status/search console")
	return cmd
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "print where to query a running crawlerd's status (GET /status on its console)",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("status must be queried against a running crawlerd's console API (GET /status)")
		},
	}
}

var searchQuery string
var searchLimit int

func searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "run a relevance query against the stored pages",
		Run: func(cmd *cobra.Command, args []string) {
			loadConfig()
			s := openStore()
			results := retrieval.QueryByRelevance(context.Background(), s, searchQuery, searchLimit)
			for _, r := range results {
				fmt.Printf("%s\t%d\t%s\n", r.Page.URL, r.Score, strings.Join(r.DisplayTokens(), " "))
			}
		},
	}
	cmd.Flags().StringVarP(&searchQuery, "query", "q", "", "query string")
	cmd.Flags().IntVarP(&searchLimit, "limit", "l", 20, "max results")
	return cmd
}

var seedURL string

func seedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "submit a one-off pending crawl job for an operator-supplied URL",
		Run: func(cmd *cobra.Command, args []string) {
			loadConfig()
			if seedURL == "" {
				fatalf("--url is required")
			}
			s := openStore()
			job := model.NewCrawlJob(seedURL)
			if err := s.InsertJob(context.Background(), job); err != nil {
				fatalf("inserting job: %v", err)
			}
			fmt.Println(job.OID)
		},
	}
	cmd.Flags().StringVarP(&seedURL, "url", "u", "", "absolute URL to seed a crawl job for")
	return cmd
}

func schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "create the crawlerd keyspace and tables in Cassandra",
		Run: func(cmd *cobra.Command, args []string) {
			loadConfig()
			cassandraCfg := store.CassandraConfig{
				Hosts:             config.Config.Cassandra.Hosts,
				Keyspace:          config.Config.Cassandra.Keyspace,
				ReplicationFactor: config.Config.Cassandra.ReplicationFactor,
			}
			if d, err := time.ParseDuration(config.Config.Cassandra.Timeout); err == nil {
				cassandraCfg.Timeout = d
			}
			if err := store.CreateSchema(cassandraCfg); err != nil {
				fatalf("creating schema: %v", err)
			}
			fmt.Println("schema created")
		},
	}
}

func fetchTimeout() (*fetch.Fetcher, error) {
	d, err := time.ParseDuration(config.Config.HTTPTimeout)
	if err != nil {
		return nil, err
	}
	return fetch.New(d)
}
