package npm

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersion is returned for version strings npm would not resolve.
var ErrInvalidVersion = errors.New("invalid version")

// distTag matches npm dist-tags such as "latest" or "zowe-v2-lts".
var distTag = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

// Binary returns the npm executable name for the current platform.
func Binary() string {
	return BinaryFor(runtime.GOOS)
}

// BinaryFor returns the npm executable name for goos. On Windows npm ships
// as a batch shim that os/exec cannot resolve without the extension.
func BinaryFor(goos string) string {
	if goos == "windows" {
		return "npm.cmd"
	}
	return "npm"
}

// ValidateVersion accepts a semver version (a leading "v" is tolerated),
// a semver range such as "^7" or ">=7.0.0 <8", or a dist-tag.
func ValidateVersion(version string) error {
	v := strings.TrimSpace(version)
	if v == "" {
		return fmt.Errorf("%w: version must not be empty", ErrInvalidVersion)
	}
	if v != version {
		return fmt.Errorf("%w %q: surrounding whitespace", ErrInvalidVersion, version)
	}
	if _, err := semver.NewVersion(strings.TrimPrefix(v, "v")); err == nil {
		return nil
	}
	if distTag.MatchString(v) {
		return nil
	}
	if _, err := semver.NewConstraint(v); err == nil {
		return nil
	}
	return fmt.Errorf("%w %q: expected a semver version, range or dist-tag", ErrInvalidVersion, version)
}

// PackageSpec returns "<pkg>@<version>" after validating version.
func PackageSpec(pkg, version string) (string, error) {
	if strings.TrimSpace(pkg) == "" {
		return "", errors.New("package name must not be empty")
	}
	if err := ValidateVersion(version); err != nil {
		return "", err
	}
	return pkg + "@" + version, nil
}

// GlobalInstallArgs returns the arguments for a global install confined to
// prefix that leaves any package.json untouched.
func GlobalInstallArgs(prefix, spec string) []string {
	return []string{"install", "-g", "--no-save", "--prefix", prefix, spec}
}
