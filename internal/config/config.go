// Package config resolves procview's runtime options from flags, environment
// variables and an optional config file.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/prabalesh/procview/internal/collector"
	"github.com/prabalesh/procview/internal/export"
)

// EnvPrefix prefixes every environment override, e.g. PROCVIEW_PROC_ROOT.
const EnvPrefix = "PROCVIEW"

const (
	keyConfig    = "config"
	keyInterval  = "interval"
	keyProcRoot  = "proc-root"
	keyOSRelease = "os-release"
	keyPasswd    = "passwd"
	keyOutput    = "output"
	keyLimit     = "limit"
	keyLogLevel  = "log-level"
	keyLogFile   = "log-file"
)

// Config carries runtime options for procview.
type Config struct {
	Interval  time.Duration
	ProcRoot  string
	OSRelease string
	Passwd    string
	// Output selects one-shot export ("json" or "yaml"); empty runs the
	// interactive view.
	Output   string
	Limit    int
	LogLevel string
	LogFile  string
}

func Default() Config {
	return Config{
		Interval:  time.Second,
		ProcRoot:  collector.DefaultProcRoot,
		OSRelease: collector.DefaultOSRelease,
		Passwd:    collector.DefaultPasswd,
		Output:    "",
		Limit:     0,
		LogLevel:  "info",
		LogFile:   "",
	}
}

// RegisterFlags adds every option to fs with its default value.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(keyConfig, "", "config file (yaml, json or toml); flags and environment take precedence")
	fs.Duration(keyInterval, def.Interval, "refresh interval of the interactive view")
	fs.String(keyProcRoot, def.ProcRoot, "procfs mount point")
	fs.String(keyOSRelease, def.OSRelease, "os-release file")
	fs.String(keyPasswd, def.Passwd, "user database used to resolve process owners")
	fs.StringP(keyOutput, "o", def.Output, "print one snapshot as json|yaml and exit")
	fs.Int(keyLimit, def.Limit, "maximum processes to show, 0 for all")
	fs.String(keyLogLevel, def.LogLevel, "log level: debug|info|warn|error")
	fs.String(keyLogFile, def.LogFile, "write logs to this file; the interactive view discards logs otherwise")
}

// NewViper returns a viper instance bound to fs and the PROCVIEW_ environment.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// Load reads the config file named by the "config" key, if any, and returns
// the validated configuration.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := Config{
		Interval:  v.GetDuration(keyInterval),
		ProcRoot:  v.GetString(keyProcRoot),
		OSRelease: v.GetString(keyOSRelease),
		Passwd:    v.GetString(keyPasswd),
		Output:    strings.ToLower(strings.TrimSpace(v.GetString(keyOutput))),
		Limit:     v.GetInt(keyLimit),
		LogLevel:  v.GetString(keyLogLevel),
		LogFile:   v.GetString(keyLogFile),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Interval <= 0 {
		return errors.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.ProcRoot == "" {
		return errors.New("proc-root must not be empty")
	}
	if c.Output != "" && !export.Valid(c.Output) {
		return errors.Errorf("unknown output %q, want %s or %s", c.Output, export.FormatJSON, export.FormatYAML)
	}
	if c.Limit < 0 {
		return errors.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "parsing log-level")
	}
	return nil
}

// Interactive reports whether the terminal view should run.
func (c Config) Interactive() bool { return c.Output == "" }
