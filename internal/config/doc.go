// Package config manages user-level settings stored at ~/.zedc/config.yaml.
// It provides functions to load, read, and write keys such as the npm binary,
// the Zowe CLI package name and its install directory, and the default
// VS Code binary used by the test commands.
package config
