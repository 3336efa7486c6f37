package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"wxledger/internal/structures"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppName      = "WeatherLedger"
	DefaultOwner = "CONTRACT_OWNER"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	if flags.EnvFile != "" {
		if err := godotenv.Load(flags.EnvFile); err != nil {
			return nil, fmt.Errorf("unable to load env file %s: %w", flags.EnvFile, err)
		}
	}

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("ledger.owner", DefaultOwner)
	v.SetDefault("ledger.blockInterval", "10s")
	v.SetDefault("cache.ttl", "5s")
	v.SetDefault("auth.tokenTTL", "24h")

	v.BindEnv("ledger.owner", "WXL_OWNER")
	v.BindEnv("ledger.blockInterval", "WXL_BLOCK_INTERVAL")
	v.BindEnv("logger.level", "WXL_LOG_LEVEL")
	v.BindEnv("persistence.saveInterval", "WXL_SAVE_INTERVAL")
	v.BindEnv("cache.enabled", "WXL_CACHE_ENABLED")
	v.BindEnv("cache.size", "WXL_CACHE_SIZE")
	v.BindEnv("auth.secret", "WXL_AUTH_SECRET")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
