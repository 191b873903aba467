package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/postmcp/postman"
	"github.com/postmcp/server"
)

const (
	EnvPrefix = "POSTMCP"

	KeyPostmanAPIKey   = "postman_api_key"
	KeySharedSecret    = "shared_secret"
	KeyAddr            = "addr"
	KeyPostmanBaseURL  = "postman_base_url"
	KeyPostmanTimeout  = "postman_timeout"
	KeyDispatchTimeout = "dispatch_timeout"
)

// Config is the process configuration, merged from flags, environment and an
// optional YAML file, in that order of precedence.
type Config struct {
	PostmanAPIKey   string        `mapstructure:"postman_api_key"`
	SharedSecret    string        `mapstructure:"shared_secret"`
	Addr            string        `mapstructure:"addr"`
	PostmanBaseURL  string        `mapstructure:"postman_base_url"`
	PostmanTimeout  time.Duration `mapstructure:"postman_timeout"`
	DispatchTimeout time.Duration `mapstructure:"dispatch_timeout"`
}

// Init registers defaults and environment bindings on v and reads the config
// file, if any. cfgFile overrides the default search of $HOME/.postmcp.yaml
// and ./.postmcp.yaml.
func Init(v *viper.Viper, cfgFile string) error {
	v.SetDefault(KeyPostmanAPIKey, "")
	v.SetDefault(KeySharedSecret, "")
	v.SetDefault(KeyAddr, server.DefaultAddr)
	v.SetDefault(KeyPostmanBaseURL, postman.DefaultBaseURL)
	v.SetDefault(KeyPostmanTimeout, postman.DefaultTimeout)
	v.SetDefault(KeyDispatchTimeout, time.Duration(0))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// unprefixed names are accepted for the two secrets
	if err := v.BindEnv(KeyPostmanAPIKey, EnvPrefix+"_POSTMAN_API_KEY", "POSTMAN_API_KEY"); err != nil {
		return err
	}
	if err := v.BindEnv(KeySharedSecret, EnvPrefix+"_SHARED_SECRET", "SHARED_SECRET"); err != nil {
		return err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".postmcp")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load decodes v into a Config. It does not require the API key so that
// commands which never reach the remote API can run without one.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

func (c *Config) validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.PostmanTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.DispatchTimeout, validation.Min(time.Duration(0))),
	)
}

// Postman returns the remote client settings. A missing API key is reported
// here, when the client is about to be built.
func (c *Config) Postman() (postman.Config, error) {
	if c.PostmanAPIKey == "" {
		return postman.Config{}, postman.ErrMissingAPIKey
	}
	return postman.Config{
		BaseURL: c.PostmanBaseURL,
		APIKey:  c.PostmanAPIKey,
		Timeout: c.PostmanTimeout,
	}, nil
}
