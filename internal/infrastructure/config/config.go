package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	sharedConfig "repoaccess/internal/shared/config"
	"repoaccess/internal/shared/errors"
)

type Config struct {
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Access     sharedConfig.AccessConfig     `mapstructure:"access"`
	Download   sharedConfig.DownloadConfig   `mapstructure:"download"`
	Permission sharedConfig.PermissionConfig `mapstructure:"permission"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex

	validate = validator.New()
)

// Load loads configuration from file and environment variables.
// An empty path searches for config.yaml in the usual configs directories;
// a missing file is not an error, defaults and ACCESS_* variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("ACCESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Validate checks the struct tags of a loaded configuration.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.WrapConfigurationError(err, "invalid configuration")
	}
	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Default returns the configuration built from defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.debug", false)

	// Access status defaults
	v.SetDefault("access.metadata_field", "dcterms.accessRights")
	v.SetDefault("access.canonical_bundle", "ORIGINAL")
	v.SetDefault("access.accepted_bundles", []string{"ORIGINAL"})
	v.SetDefault("access.controlled_types", []string{"openaccess", "embargo", "administrator", "restricted"})
	v.SetDefault("access.priorities", []map[string]any{
		{"name": "administrator", "weight": 40},
		{"name": "restricted", "weight": 30},
		{"name": "embargo", "weight": 20},
		{"name": "openaccess", "weight": 10},
	})
	v.SetDefault("access.default_weight", 0)

	// Download URL defaults
	v.SetDefault("download.algorithm", "MD5")
	v.SetDefault("download.secret", "")
	v.SetDefault("download.server_url", "http://localhost:8080/server")
	v.SetDefault("download.path_prefix", "/api/bitstream")
	v.SetDefault("download.promoter_field", "advisors.email")

	// Permission defaults
	v.SetDefault("permission.manager_role", "reviewer")
	v.SetDefault("permission.admin_role", "admin")
}
