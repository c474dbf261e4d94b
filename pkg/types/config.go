package types

import "time"

const (
	// DefaultPageSize is the number of records requested per results page.
	DefaultPageSize = 10

	// DefaultEUtilsBase is the NCBI E-utilities endpoint root.
	DefaultEUtilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
)

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent upstream (e.g. "pubmed-proxy/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// EUtilsConfig holds settings for the E-utilities client.
type EUtilsConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the E-utilities root; esearch.fcgi etc. are appended to it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey raises the NCBI rate limit from 3 to 10 requests per second.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Tool and Email identify this deployment to NCBI.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
}

// SearchConfig holds settings for the search flow.
type SearchConfig struct {
	// PageSize is shared by the offset and the page-count computation.
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`
}

// ServerConfig holds settings for the HTTP listener.
type ServerConfig struct {
	// Address is the listen address (default "0.0.0.0:5000").
	Address string `json:"address" yaml:"address" mapstructure:"address"`

	// ShutdownTimeout bounds the drain period on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// TracingConfig selects where E-utilities client spans are exported.
type TracingConfig struct {
	// Exporter is "none" (default) or "stdout".
	Exporter string `json:"exporter" yaml:"exporter" mapstructure:"exporter"`
}

// Config groups all service settings.
type Config struct {
	Server   ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	EUtils   EUtilsConfig  `json:"eutils" yaml:"eutils" mapstructure:"eutils"`
	Search   SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Tracing  TracingConfig `json:"tracing" yaml:"tracing" mapstructure:"tracing"`
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
