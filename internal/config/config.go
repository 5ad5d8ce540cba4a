package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Mode       string        `mapstructure:"mode"`
	Port       int           `mapstructure:"port"`
	ReadLimit  int64         `mapstructure:"read_limit"`
	PingPeriod time.Duration `mapstructure:"ping_period"`
	Secret     string        `mapstructure:"secret"`

	// Client side.
	RelayURL    string        `mapstructure:"relay_url"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	STUNServers []string      `mapstructure:"stun_servers"`

	// External REST collaborators.
	AuthBaseURL string `mapstructure:"auth_base_url"`
	APIBaseURL  string `mapstructure:"api_base_url"`

	// Relay join throttling.
	JoinLimit    int           `mapstructure:"join_limit"`
	JoinInterval time.Duration `mapstructure:"join_interval"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 9092)
	v.SetDefault("read_limit", 65536)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("relay_url", "ws://localhost:9092/ws/signal")
	v.SetDefault("dial_timeout", "10s")
	v.SetDefault("stun_servers", []string{
		"stun:stun.l.google.com:19302",
		"stun:stun1.l.google.com:19302",
	})
	v.SetDefault("auth_base_url", "http://localhost:8081")
	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("join_limit", 10)
	v.SetDefault("join_interval", "1m")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("⚠️ Config file not found (%s), using defaults\n", fileName)
	} else {
		fmt.Printf("✅ Loaded config: %s\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
