// Package config loads and carries the CLI configuration. Values are
// resolved from, in increasing precedence: built-in defaults, the YAML
// config file under $HOME/.config/crit, a local .env file, and CRIT_*
// environment variables.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// ConfigDirName is the directory under $HOME/.config holding the
	// config file.
	ConfigDirName = "crit"
	// ConfigFileName is the YAML config file name (without extension).
	ConfigFileName = "config"

	envPrefix = "CRIT"
)

// DefaultEndpoint is the chat-completions endpoint used when none is
// configured.
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

// FilterConfig holds the comment filters applied after aggregation.
type FilterConfig struct {
	MinLength    int
	IncludeFiles []string
	ExcludeFiles []string
}

// VCSConfig holds the code-hosting settings used by `crit post`.
type VCSConfig struct {
	Platform string // "github" or "gitlab"
	Token    string
	BaseURL  string
	Project  string // e.g. "owner/repo"
	Number   int    // pull/merge request number
}

// Config contains the entire cli dependencies.
type Config struct {
	Version string

	Provider        string
	Endpoint        string
	APIKey          string
	Model           string
	GenerateSummary bool
	Debug           bool

	Filters FilterConfig
	VCS     VCSConfig

	// Viper keeps the raw store so provider factories can read their own
	// scoped subtree (providers.<name>.*).
	Viper *viper.Viper

	// io writers useful for testing
	InReader  io.Reader
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Load resolves the full configuration. A missing config file or .env is
// not an error; defaults apply.
func Load(version string) (Config, error) {
	// .env is picked up from the working directory, holding API keys that
	// should not live in the config file.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")

	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", ConfigDirName))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return fromViper(v, version), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "openai")
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
	v.SetDefault("summary", true)
	v.SetDefault("debug", false)

	v.SetDefault("filters.min_length", 0)
	v.SetDefault("filters.include", []string{})
	v.SetDefault("filters.exclude", []string{})

	v.SetDefault("vcs.platform", "github")
	v.SetDefault("vcs.token", "")
	v.SetDefault("vcs.base_url", "")
	v.SetDefault("vcs.project", "")
	v.SetDefault("vcs.number", 0)
}

func fromViper(v *viper.Viper, version string) Config {
	return Config{
		Version:         version,
		Provider:        v.GetString("provider"),
		Endpoint:        v.GetString("endpoint"),
		APIKey:          v.GetString("api_key"),
		Model:           v.GetString("model"),
		GenerateSummary: v.GetBool("summary"),
		Debug:           v.GetBool("debug"),
		Filters: FilterConfig{
			MinLength:    v.GetInt("filters.min_length"),
			IncludeFiles: v.GetStringSlice("filters.include"),
			ExcludeFiles: v.GetStringSlice("filters.exclude"),
		},
		VCS: VCSConfig{
			Platform: v.GetString("vcs.platform"),
			Token:    v.GetString("vcs.token"),
			BaseURL:  v.GetString("vcs.base_url"),
			Project:  v.GetString("vcs.project"),
			Number:   v.GetInt("vcs.number"),
		},
		Viper:     v,
		InReader:  os.Stdin,
		OutWriter: os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// ProviderSettings returns the viper subtree scoped to the named provider
// (providers.<name>.*), or nil when absent.
func (c Config) ProviderSettings(name string) *viper.Viper {
	if c.Viper == nil {
		return nil
	}
	return c.Viper.Sub("providers." + name)
}

// Redacted returns the api key and token with all but the last four
// characters masked, for display.
func Redacted(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
