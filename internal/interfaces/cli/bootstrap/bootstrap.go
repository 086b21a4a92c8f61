// Package bootstrap wires configuration, logging and the access services
// shared by the command line tools.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"repoaccess/internal/application/accesstype"
	"repoaccess/internal/application/download"
	"repoaccess/internal/domain/access"
	vo "repoaccess/internal/domain/access/valueobjects"
	"repoaccess/internal/domain/capability"
	"repoaccess/internal/infrastructure/config"
	"repoaccess/internal/infrastructure/digest"
	"repoaccess/internal/infrastructure/permission"
	sharedConfig "repoaccess/internal/shared/config"
	"repoaccess/internal/shared/errors"
	"repoaccess/internal/shared/logger"
	"repoaccess/internal/shared/mapper"
)

type Env struct {
	Config *config.Config
	Logger logger.Interface
	Engine *access.Engine
	Tokens *capability.Service
}

// ConfigPath reads the persistent --config flag when the command has one.
func ConfigPath(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil {
		return f.Value.String()
	}
	return ""
}

func Init(configPath string) (*Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(cfg, logger.NewLogger())
}

// New builds the services from an already loaded configuration.
func New(cfg *config.Config, log logger.Interface) (*Env, error) {
	engine, err := NewEngine(&cfg.Access)
	if err != nil {
		return nil, err
	}

	dl := cfg.Download
	hasher := digest.NewWithFallback(dl.Algorithm, dl.Secret, log.Named("digest"))
	tokens := capability.NewService(hasher, dl.GetServerURL(), dl.PathPrefix, log.Named("capability"))

	return &Env{
		Config: cfg,
		Logger: log,
		Engine: engine,
		Tokens: tokens,
	}, nil
}

// NewEngine builds the access engine from its configuration section.
func NewEngine(cfg *sharedConfig.AccessConfig) (*access.Engine, error) {
	priorities := mapper.MapSlice(cfg.Priorities, func(p sharedConfig.PriorityConfig) vo.Priority {
		return vo.Priority{Name: p.Name, Weight: p.Weight}
	})

	table, err := vo.NewPriorityTable(priorities, cfg.DefaultWeight)
	if err != nil {
		return nil, errors.WrapConfigurationError(err, "invalid priority table")
	}

	engine, err := access.NewEngine(access.EngineConfig{
		Priorities:      table,
		MetadataField:   cfg.MetadataField,
		CanonicalBundle: cfg.CanonicalBundle,
		AcceptedBundles: cfg.AcceptedBundles,
		ControlledTypes: cfg.ControlledTypes,
	})
	if err != nil {
		return nil, errors.WrapConfigurationError(err, "invalid access settings")
	}
	return engine, nil
}

// Directory builds the manager directory and fills it with memberships.
func (e *Env) Directory(m permission.Memberships) (*permission.Directory, error) {
	d, err := permission.NewDirectory(e.Config.Permission.ManagerRole, e.Config.Permission.AdminRole, e.Logger.Named("permission"))
	if err != nil {
		return nil, err
	}
	if err := d.Load(m); err != nil {
		return nil, err
	}
	return d, nil
}

func (e *Env) Downloads(directory *permission.Directory) *download.Service {
	return download.NewService(e.Tokens, directory, e.Config.Download.PromoterField, e.Logger.Named("download"))
}

func (e *Env) Refresher() *accesstype.Refresher {
	return accesstype.NewRefresher(e.Engine, e.Logger.Named("accesstype"))
}

// ParseNow returns the evaluation instant: value as RFC 3339 or a plain
// date, or the current time when value is empty.
func ParseNow(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationError("invalid --now value", value)
}
