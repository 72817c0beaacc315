package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/zowe-tools/zedc/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Configuration keys.
const (
	KeyNpmBin        = "npm.bin"
	KeyCLIPackage    = "cli.package"
	KeyCLIInstallDir = "cli.install_dir"
	KeyVSCodeBin     = "vscode.bin"
	KeyLogLevel      = "log.level"
)

// Default values applied before the config file and environment.
const (
	DefaultCLIPackage    = "@zowe/cli"
	DefaultCLIInstallDir = "node_modules"
	DefaultLogLevel      = "info"
)

// Dir returns the path to the zedc config directory (~/.zedc/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.zedc/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// EnvVar returns the environment variable that overrides key,
// e.g. cli.install_dir → ZEDC_CLI_INSTALL_DIR.
func EnvVar(key string) string {
	return branding.EnvVar(envKeyReplacer.Replace(key))
}

// Load initializes Viper to read from the config file and environment.
// Keys map to env vars as named by EnvVar.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	viper.SetDefault(KeyCLIPackage, DefaultCLIPackage)
	viper.SetDefault(KeyCLIInstallDir, DefaultCLIInstallDir)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
