// Package config is the YAML-backed global configuration surface, adapted
// from the teacher's config.go: a package-level Config var, a
// SetDefaultConfig defaulting pass, and an assertConfigInvariants
// validation pass run after unmarshaling — same shape, new fields for
// SPEC_FULL.md's components.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ktheindifferent/crawlerd/internal/logging"
)

// Config is the configuration instance the rest of crawlerd reads from.
var Config CrawlerConfig

// ConfigName is the path to the config file to read on Load.
var ConfigName = "crawlerd.yaml"

// CrawlerConfig defines the available global configuration parameters.
type CrawlerConfig struct {
	HTTPTimeout             string `yaml:"http_timeout"`
	MaxHTTPContentSizeBytes int64  `yaml:"max_http_content_size_bytes"`
	BlacklistPrivateIPs     bool   `yaml:"blacklist_private_ips"`

	Cassandra struct {
		Hosts             []string `yaml:"hosts"`
		Keyspace          string   `yaml:"keyspace"`
		ReplicationFactor int      `yaml:"replication_factor"`
		Timeout           string   `yaml:"timeout"`
	} `yaml:"cassandra"`

	// CacheCapacity bounds the in-memory write-through LRU tier in front
	// of the durable store (jobs and visited-URL entries each get their
	// own cache of this size).
	CacheCapacity int `yaml:"cache_capacity"`

	DNSCache struct {
		Path string `yaml:"path"`
	} `yaml:"dns_cache"`

	Service struct {
		LoopInterval string `yaml:"loop_interval"`
	} `yaml:"service"`

	Console struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"console"`
}

// SetDefaultConfig resets Config to its documented defaults.
func SetDefaultConfig() {
	// NOTE: go-yaml has a known bug (go-yaml/yaml#48) where unmarshaling
	// does not overwrite sequence values, it appends to them; Load works
	// around this the same way the teacher's readConfig does, by nilling
	// sequence fields before unmarshaling.
	Config.HTTPTimeout = "30s"
	Config.MaxHTTPContentSizeBytes = 20 * 1024 * 1024
	Config.BlacklistPrivateIPs = true

	Config.Cassandra.Hosts = []string{"localhost"}
	Config.Cassandra.Keyspace = "crawlerd"
	Config.Cassandra.ReplicationFactor = 1
	Config.Cassandra.Timeout = "2s"

	Config.CacheCapacity = 20000

	Config.DNSCache.Path = "/opt/crawlerd/dns.cache"

	Config.Service.LoopInterval = "10s"

	Config.Console.ListenAddr = ":8080"
}

// Load reads ConfigName into Config, applying defaults first. A missing
// file is not an error — Config is left at its defaults, logged at info
// level, same behavior as the teacher's readConfig.
func Load() error {
	SetDefaultConfig()
	Config.Cassandra.Hosts = nil

	data, err := os.ReadFile(ConfigName)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Default().Infof("config: no config file at %s, using defaults", ConfigName)
			if Config.Cassandra.Hosts == nil {
				Config.Cassandra.Hosts = []string{"localhost"}
			}
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", ConfigName, err)
	}

	if err := yaml.Unmarshal(data, &Config); err != nil {
		return fmt.Errorf("config: parsing %s: %w", ConfigName, err)
	}
	if len(Config.Cassandra.Hosts) == 0 {
		Config.Cassandra.Hosts = []string{"localhost"}
	}

	return assertConfigInvariants()
}

func assertConfigInvariants() error {
	var errs []string

	if _, err := time.ParseDuration(Config.HTTPTimeout); err != nil {
		errs = append(errs, fmt.Sprintf("http_timeout failed to parse: %v", err))
	}
	if _, err := time.ParseDuration(Config.Service.LoopInterval); err != nil {
		errs = append(errs, fmt.Sprintf("service.loop_interval failed to parse: %v", err))
	}
	if Config.MaxHTTPContentSizeBytes <= 0 {
		errs = append(errs, "max_http_content_size_bytes must be greater than 0")
	}
	if Config.CacheCapacity < 1 {
		errs = append(errs, "cache_capacity must be greater than 0")
	}
	if Config.DNSCache.Path == "" {
		errs = append(errs, "dns_cache.path must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
