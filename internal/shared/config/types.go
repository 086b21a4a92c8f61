package config

import "strings"

type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
	Debug      bool   `mapstructure:"debug"`
}

// PriorityConfig is one entry of the resource policy priority table.
type PriorityConfig struct {
	Name   string `mapstructure:"name" validate:"required"`
	Weight int    `mapstructure:"weight"`
}

type AccessConfig struct {
	// MetadataField holds the fallback access value when no policy decides.
	MetadataField   string           `mapstructure:"metadata_field" validate:"required"`
	CanonicalBundle string           `mapstructure:"canonical_bundle" validate:"required"`
	AcceptedBundles []string         `mapstructure:"accepted_bundles" validate:"required,min=1,dive,required"`
	ControlledTypes []string         `mapstructure:"controlled_types" validate:"dive,required"`
	Priorities      []PriorityConfig `mapstructure:"priorities" validate:"dive"`
	DefaultWeight   int              `mapstructure:"default_weight"`
}

type DownloadConfig struct {
	Algorithm     string `mapstructure:"algorithm" validate:"required"`
	Secret        string `mapstructure:"secret"`
	ServerURL     string `mapstructure:"server_url" validate:"required,url"`
	PathPrefix    string `mapstructure:"path_prefix" validate:"required,startswith=/"`
	PromoterField string `mapstructure:"promoter_field" validate:"required"`
}

// GetServerURL returns the server URL without a trailing slash.
func (d *DownloadConfig) GetServerURL() string {
	return strings.TrimRight(d.ServerURL, "/")
}

type PermissionConfig struct {
	ManagerRole string `mapstructure:"manager_role" validate:"required"`
	AdminRole   string `mapstructure:"admin_role" validate:"required"`
}
