// Package app provides the application container that wires every
// dependency together.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/dao"
	"github.com/marcomarassi/note-keeper-service/pkg/storage"
	"github.com/marcomarassi/note-keeper-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	File     string         `yaml:"-"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database dao.Config     `yaml:"database"`
	App      AppSettings    `yaml:"app"`
	User     UserConfig     `yaml:"user"`
	Security SecurityConfig `yaml:"security"`
	Storage  storage.Config `yaml:"storage"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

type LogConfig struct {
	// Level follows zapcore.ParseLevel.
	Level string `yaml:"level" default:"warn"`
	// File is the log file path.
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production switches the file sink to JSON output.
	Production bool `yaml:"production" default:"true"`
}

type ServerConfig struct {
	RunMode      string `yaml:"run-mode" default:"release"`
	HttpPort     string `yaml:"http-port" default:":9000"`
	ReadTimeout  int    `yaml:"read-timeout" default:"60"`
	WriteTimeout int    `yaml:"write-timeout" default:"60"`
}

type SecurityConfig struct {
	AuthTokenKey string `yaml:"auth-token-key" default:"note-keeper-Auth-Token"`
	// TokenExpiry accepts 7d, 24h, 30m style values.
	TokenExpiry string `yaml:"token-expiry" default:"30d"`
}

type UserConfig struct {
	RegisterIsEnable bool `yaml:"register-is-enable" default:"true"`
}

type AppSettings struct {
	// DefaultContextTimeout bounds request handling, in seconds.
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// TempPath holds in-flight uploads.
	TempPath string `yaml:"temp-path" default:"storage/temp"`
	// BannerTTL is how long a status banner stays visible.
	BannerTTL string `yaml:"banner-ttl" default:"5s"`
	// SessionIdleTimeout evicts sessions with no requests for this long.
	SessionIdleTimeout string `yaml:"session-idle-timeout" default:"24h"`
}

type TracerConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Header  string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig reads the config file, filling defaults for anything the
// file leaves out.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// Fill fields the YAML mentions but leaves empty.
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save writes the config back to its file.
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	if err := os.WriteFile(c.File, data, 0644); err != nil {
		return errors.Wrap(err, "write config file failed")
	}
	return nil
}

func (c *AppConfig) GetTokenExpiry() time.Duration {
	if expiry, err := util.ParseDuration(c.Security.TokenExpiry); err == nil {
		return expiry
	}
	return 30 * 24 * time.Hour
}

func (c *AppConfig) GetBannerTTL() time.Duration {
	if ttl, err := util.ParseDuration(c.App.BannerTTL); err == nil {
		return ttl
	}
	return 5 * time.Second
}

func (c *AppConfig) GetSessionIdleTimeout() time.Duration {
	if d, err := util.ParseDuration(c.App.SessionIdleTimeout); err == nil {
		return d
	}
	return 24 * time.Hour
}
