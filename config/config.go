package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type catalog struct {
	Endpoint string `mapstructure:"endpoint"`
	Limit    int    `mapstructure:"limit"`
}

type notifications struct {
	FadeAfter  time.Duration `mapstructure:"fade_after"`
	ClearAfter time.Duration `mapstructure:"clear_after"`
}

type topics struct {
	InteractionEvents string `mapstructure:"interaction_events"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
}

type Config struct {
	LogLevel       slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr string        `mapstructure:"http_server_addr"`
	PageSize       int           `mapstructure:"page_size"`
	Catalog        catalog       `mapstructure:"catalog"`
	Notifications  notifications `mapstructure:"notifications"`
	Broker         broker        `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	PageSize=%d

	Catalog:
	Endpoint=%q
	Limit=%d

	Notifications:
	FadeAfter=%q
	ClearAfter=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		InteractionEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.PageSize,
		c.Catalog.Endpoint,
		c.Catalog.Limit,
		c.Notifications.FadeAfter,
		c.Notifications.ClearAfter,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.InteractionEvents,
	)
}
