// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-proxy server and CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-proxy/internal/eutils"
	"github.com/pdiddy/pubmed-proxy/internal/secrets"
	"github.com/pdiddy/pubmed-proxy/internal/tracing"
	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds NCBI credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

const (
	defaultAddress         = "0.0.0.0:5000"
	defaultShutdownTimeout = 10 * time.Second
	defaultTimeout         = 30 * time.Second
	defaultTool            = "pubmed-proxy"
)

// rootCmd is the base command for the pubmed-proxy CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-proxy",
	Short: "Proxy and reshape PubMed E-utilities responses",
	Long: `pubmed-proxy serves a small web front end over PubMed's E-utilities API.
It searches esearch, shapes esummary metadata into a paginated results page,
and exposes abstract and keyword lookups for single articles.

The serve subcommand runs the HTTP server. search, abstract, and keywords run
the same flows once from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-proxy.yaml or ~/.config/pubmed-proxy/pubmed-proxy.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// configureViper sets defaults and environment binding. Nested keys map to
// underscored variables, so server.address reads PUBMED_PROXY_SERVER_ADDRESS.
func configureViper() {
	viper.SetDefault("server.address", defaultAddress)
	viper.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)
	viper.SetDefault("eutils.base_url", types.DefaultEUtilsBase)
	viper.SetDefault("eutils.tool", defaultTool)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", "pubmed-proxy/"+version)
	viper.SetDefault("search.page_size", types.DefaultPageSize)
	viper.SetDefault("tracing.exporter", tracing.ExporterNone)
	viper.SetDefault("log_level", "info")

	viper.SetEnvPrefix("PUBMED_PROXY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initConfig() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-proxy")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-proxy"))
		}
	}

	configureViper()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the service configuration from viper, then fills
// credentials left empty from .secrets/.
func loadConfig() types.Config {
	cfg := types.Config{
		Server: types.ServerConfig{
			Address:         viper.GetString("server.address"),
			ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		},
		EUtils: types.EUtilsConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http.timeout"),
				UserAgent: viper.GetString("http.user_agent"),
			},
			BaseURL: viper.GetString("eutils.base_url"),
			APIKey:  viper.GetString("eutils.api_key"),
			Tool:    viper.GetString("eutils.tool"),
			Email:   viper.GetString("eutils.email"),
		},
		Search: types.SearchConfig{
			PageSize: viper.GetInt("search.page_size"),
		},
		Tracing: types.TracingConfig{
			Exporter: viper.GetString("tracing.exporter"),
		},
		LogLevel: viper.GetString("log_level"),
	}
	secrets.Apply(&cfg.EUtils, loadedSecrets)
	return cfg
}

// newClient builds the E-utilities client used by every subcommand.
func newClient(cfg types.Config) *eutils.Client {
	return eutils.NewClient(cfg.EUtils, nil)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
