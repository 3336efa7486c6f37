package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	EnvFile    string
	DebugMode  bool
}

type Route struct {
	Method  string
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

// Persistence.FilePath may be left empty to keep the ledger in memory only.
type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type LedgerConfig struct {
	Owner         string        `yaml:"owner" validate:"required"`
	GenesisHeight uint64        `yaml:"genesisHeight"`
	BlockInterval time.Duration `yaml:"blockInterval" validate:"required|min:1"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type AuthConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTTL"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Ledger      LedgerConfig  `yaml:"ledger"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Auth        AuthConfig    `yaml:"auth"`
}
