// Package config defines the on-disk/flag configuration consumed by
// cmd/sidechainctl. The ledger core itself is configuration-free: every
// knob it needs (the custom validation Hook, the initial state) is
// passed in by the embedding caller, not read from a file. This
// package exists only because a CLI front-end needs somewhere to put
// its log level, data directory, and log directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	// DefaultConfigFilename is the name of the config file loaded from
	// DataDir when none is given on the command line.
	DefaultConfigFilename = "sidechainctl.conf"

	// DefaultLogFilename is the name of the rotating log file created
	// under LogDir.
	DefaultLogFilename = "sidechainctl.log"

	// DefaultLogLevel is the level every subsystem logs at unless
	// overridden individually via DebugLevel.
	DefaultLogLevel = "info"

	// DefaultMaxLogFileSize is the size, in megabytes, a log file may
	// reach before it is rotated.
	DefaultMaxLogFileSize = 10

	// DefaultMaxLogFiles is the number of rotated log files retained
	// alongside the active one.
	DefaultMaxLogFiles = 3
)

// DefaultDataDir and DefaultLogDir are resolved relative to the user's
// home directory at package init via os.UserHomeDir.
var (
	DefaultDataDir string
	DefaultLogDir  string
)

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	DefaultDataDir = filepath.Join(home, ".sidechainctl", "data")
	DefaultLogDir = filepath.Join(home, ".sidechainctl", "logs")
}

// Config holds every knob cmd/sidechainctl exposes. Fields are tagged
// for github.com/jessevdk/go-flags so the same struct serves both the
// INI config file and command-line overrides.
type Config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`

	DataDir string `short:"b" long:"datadir" description:"Data directory for sidechainctl (created at startup; no command stores files in it)"`
	LogDir  string `long:"logdir" description:"Directory to log output"`

	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`

	MaxLogFileSize int `long:"maxlogfilesize" description:"Maximum size of a log file, in megabytes, before rotation"`
	MaxLogFiles    int `long:"maxlogfiles" description:"Maximum number of rotated log files to keep"`

	NoFileLogging bool `long:"nofilelogging" description:"Disable logging to a rotating log file"`
}

// DefaultConfig returns a Config populated with the package's default
// values, for callers to parse flags over before using them.
func DefaultConfig() Config {
	return Config{
		ConfigFile:     filepath.Join(DefaultDataDir, DefaultConfigFilename),
		DataDir:        DefaultDataDir,
		LogDir:         DefaultLogDir,
		DebugLevel:     DefaultLogLevel,
		MaxLogFileSize: DefaultMaxLogFileSize,
		MaxLogFiles:    DefaultMaxLogFiles,
	}
}

// LoadConfig parses the config file (if present) and then command-line
// arguments over top of DefaultConfig's values, command line flags
// always taking precedence, matching the two-pass IniParse-then-Parse
// structure go-flags-based daemons in this family use.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	// IgnoreUnknown: sidechainctl's own flag/subcommand parsing (via
	// urfave/cli) shares os.Args with this pass, so positional
	// arguments like the subcommand name must not fail config parsing.
	const opts = flags.HelpFlag | flags.PassDoubleDash | flags.IgnoreUnknown

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, opts)
	if _, err := preParser.Parse(); err != nil {
		return nil, err
	}
	if preCfg.ConfigFile != "" {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		fileParser := flags.NewParser(&cfg, opts)
		if err := flags.NewIniParser(fileParser).ParseFile(cfg.ConfigFile); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", cfg.ConfigFile, err)
		}
	}

	parser := flags.NewParser(&cfg, opts)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("config: failed to create data directory: %w", err)
	}
	if !cfg.NoFileLogging {
		if err := os.MkdirAll(cfg.LogDir, 0o700); err != nil {
			return nil, fmt.Errorf("config: failed to create log directory: %w", err)
		}
	}

	return &cfg, nil
}

// LogFile returns the full path of the rotating log file this Config
// points at.
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, DefaultLogFilename)
}
