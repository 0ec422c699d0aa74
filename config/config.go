// config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Feed          FeedConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI      string
	Username string
	Password string
}

// RedisConfiguration stores data for the feed cache store
type RedisConfiguration struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	OpTimeout    time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL   string
	Index string
}

// FeedConfiguration holds the tunables of feed computation and invalidation.
type FeedConfiguration struct {
	CacheTTL        time.Duration
	MaxCached       int
	DefaultLimit    int
	WarmOnBoot      bool
	Workers         int
	QueueSize       int
	WarmConcurrency int
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	config = load()
	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.dir", "logging")

	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.username", "neo4j")
	viper.SetDefault("neo4j.password", "")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dialTimeout", "1s")
	viper.SetDefault("redis.readTimeout", "250ms")
	viper.SetDefault("redis.writeTimeout", "250ms")
	viper.SetDefault("redis.poolSize", 20)
	viper.SetDefault("redis.opTimeout", "250ms")
	viper.SetDefault("redis.reconnect.initialInterval", "100ms")
	viper.SetDefault("redis.reconnect.maxInterval", "5s")
	viper.SetDefault("redis.breaker.failureThreshold", 5)
	viper.SetDefault("redis.breaker.timeout", "10s")

	viper.SetDefault("elasticsearch.url", "")
	viper.SetDefault("elasticsearch.index", "feed-events")

	viper.SetDefault("feed.cacheTTL", "3600s")
	viper.SetDefault("feed.maxCached", 100)
	viper.SetDefault("feed.defaultLimit", 10)
	viper.SetDefault("feed.warmOnBoot", true)
	viper.SetDefault("feed.workers", 8)
	viper.SetDefault("feed.queueSize", 1024)
	viper.SetDefault("feed.warmConcurrency", 16)

	viper.SetDefault("auth.jwtSecret", "")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.per", "1m")
}

func load() *Configuration {
	return &Configuration{
		Server: ServerConfiguration{Port: viper.GetString("server.port")},
		Neo4j: DatabaseConfiguration{
			URI:      viper.GetString("neo4j.uri"),
			Username: viper.GetString("neo4j.username"),
			Password: viper.GetString("neo4j.password"),
		},
		Redis: RedisConfiguration{
			Addr:         viper.GetString("redis.addr"),
			Password:     viper.GetString("redis.password"),
			DB:           viper.GetInt("redis.db"),
			DialTimeout:  viper.GetDuration("redis.dialTimeout"),
			ReadTimeout:  viper.GetDuration("redis.readTimeout"),
			WriteTimeout: viper.GetDuration("redis.writeTimeout"),
			PoolSize:     viper.GetInt("redis.poolSize"),
			OpTimeout:    viper.GetDuration("redis.opTimeout"),
		},
		Elasticsearch: ElasticsearchConfiguration{
			URL:   viper.GetString("elasticsearch.url"),
			Index: viper.GetString("elasticsearch.index"),
		},
		Feed: Feed(),
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// Feed returns a snapshot of the feed settings.
func Feed() FeedConfiguration {
	return FeedConfiguration{
		CacheTTL:        viper.GetDuration("feed.cacheTTL"),
		MaxCached:       viper.GetInt("feed.maxCached"),
		DefaultLimit:    viper.GetInt("feed.defaultLimit"),
		WarmOnBoot:      viper.GetBool("feed.warmOnBoot"),
		Workers:         viper.GetInt("feed.workers"),
		QueueSize:       viper.GetInt("feed.queueSize"),
		WarmConcurrency: viper.GetInt("feed.warmConcurrency"),
	}
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
