/*
Package config manages the TOML config for wordglob front ends.

	[web]
	addr = "0.0.0.0:5000"
	rate_limit = 120
	access_log = true

	[dict]
	path = ""

	[cli]
	color = true
	panel_width = 80
	show_instructions = true

	[log]
	level = "warn"
	file = ""

An empty dict.path means the bundled word list. Flags given on the command line
override whatever the file says.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordglob/internal/utils"
	"github.com/charmbracelet/log"
)

const fileHeader = "# wordglob config. Delete this file to regenerate defaults."

// Config holds the entire config structure
type Config struct {
	Web  WebConfig  `toml:"web"`
	Dict DictConfig `toml:"dict"`
	CLI  CliConfig  `toml:"cli"`
	Log  LogConfig  `toml:"log"`
}

// WebConfig has HTTP front end options.
type WebConfig struct {
	Addr      string `toml:"addr"`
	RateLimit int    `toml:"rate_limit"`
	AccessLog bool   `toml:"access_log"`
	Title     string `toml:"title"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds interactive prompt options.
type CliConfig struct {
	Color            bool `toml:"color"`
	PanelWidth       int  `toml:"panel_width"`
	ShowInstructions bool `toml:"show_instructions"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Web: WebConfig{
			Addr:      "0.0.0.0:5000",
			RateLimit: 120,
			AccessLog: true,
			Title:     "Wordle Glob",
		},
		Dict: DictConfig{
			Path: "",
		},
		CLI: CliConfig{
			Color:            true,
			PanelWidth:       80,
			ShowInstructions: true,
		},
		Log: LogConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. the platform config dir (XDG_CONFIG_HOME or ~/.config on linux, APPDATA on windows)
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := utils.UserConfigDir(homeDir)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: ~/.config/wordglob/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, salvaging valid sections when the file is partly broken
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file section by section
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "web"); ok {
		extractWebConfig(section, &config.Web)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "log"); ok {
		extractLogConfig(section, &config.Log)
	}
	return config, nil
}

func extractWebConfig(data map[string]any, web *WebConfig) {
	if val, ok := utils.ExtractString(data, "addr"); ok {
		web.Addr = val
	}
	if val, ok := utils.ExtractInt64(data, "rate_limit"); ok {
		web.RateLimit = val
	}
	if val, ok := utils.ExtractBool(data, "access_log"); ok {
		web.AccessLog = val
	}
	if val, ok := utils.ExtractString(data, "title"); ok {
		web.Title = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
	if val, ok := utils.ExtractInt64(data, "panel_width"); ok {
		cli.PanelWidth = val
	}
	if val, ok := utils.ExtractBool(data, "show_instructions"); ok {
		cli.ShowInstructions = val
	}
}

func extractLogConfig(data map[string]any, logCfg *LogConfig) {
	if val, ok := utils.ExtractString(data, "level"); ok {
		logCfg.Level = val
	}
	if val, ok := utils.ExtractString(data, "file"); ok {
		logCfg.File = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath, fileHeader)
}

// Override applies command line values on top of the loaded config.
// Empty strings and zero values leave the config untouched.
func (c *Config) Override(addr, dictPath string, noColor bool) {
	if addr != "" {
		c.Web.Addr = addr
	}
	if dictPath != "" {
		c.Dict.Path = dictPath
	}
	if noColor {
		c.CLI.Color = false
	}
}
