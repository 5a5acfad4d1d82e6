package discovery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wagiedev/gnuplot-go/internal/config"
	"github.com/wagiedev/gnuplot-go/internal/errors"
)

const (
	// MinimumVersion is the oldest gnuplot release with named data blocks.
	MinimumVersion = "5.0"

	// VersionCheckTimeout is the timeout for the gnuplot --version command.
	VersionCheckTimeout = 2 * time.Second
)

var versionPattern = regexp.MustCompile(`gnuplot\s+([0-9]+)\.([0-9]+)(?:\s+patchlevel\s+(\S+))?`)

// Config holds configuration for gnuplot discovery.
type Config struct {
	// Executable is an explicit path that skips every other lookup.
	Executable string

	// SkipVersionCheck skips version validation during discovery.
	SkipVersionCheck bool

	// Logger is an optional logger for discovery operations.
	// If nil, a discarding logger is used.
	Logger *slog.Logger
}

// Discoverer locates and validates the gnuplot executable.
type Discoverer interface {
	// Discover returns the path of the gnuplot executable or a *errors.NotFoundError.
	Discover(ctx context.Context) (string, error)
}

type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new gnuplot discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the gnuplot executable and validates its version.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	d.log.Debug("Discovering gnuplot executable")

	path, err := d.find()
	if err != nil {
		d.log.Error("Failed to find gnuplot", "error", err)

		return "", err
	}

	d.log.Debug("Found gnuplot executable", "path", path)

	d.checkVersion(ctx, path)

	return path, nil
}

func (d *discoverer) find() (string, error) {
	if d.cfg.Executable != "" {
		return lookup(d.cfg.Executable)
	}

	searched := make([]string, 0, 5)

	if env := os.Getenv(config.ExecutableEnv); env != "" {
		d.log.Debug("Using gnuplot from environment", "env", config.ExecutableEnv, "path", env)

		return lookup(env)
	}

	searched = append(searched, "$"+config.ExecutableEnv)

	if path, err := exec.LookPath(config.DefaultExecutable); err == nil {
		return path, nil
	}

	searched = append(searched, "$PATH")

	for _, path := range []string{
		"/usr/local/bin/gnuplot",
		"/usr/bin/gnuplot",
		"/opt/homebrew/bin/gnuplot",
	} {
		searched = append(searched, path)

		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	d.log.Warn("gnuplot not found in any searched paths", "searched_paths", searched)

	return "", &errors.NotFoundError{SearchedPaths: searched}
}

// lookup resolves an explicit executable. Bare names go through PATH,
// anything with a separator must exist as given.
func lookup(name string) (string, error) {
	if !strings.ContainsRune(name, os.PathSeparator) {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}

		return "", &errors.NotFoundError{SearchedPaths: []string{name}}
	}

	if _, err := os.Stat(name); err != nil {
		return "", &errors.NotFoundError{SearchedPaths: []string{name}}
	}

	return name, nil
}

func (d *discoverer) checkVersion(ctx context.Context, path string) {
	if d.cfg.SkipVersionCheck {
		d.log.Debug("Skipping gnuplot version check (configured)")

		return
	}

	if os.Getenv(config.SkipVersionCheckEnv) != "" {
		d.log.Debug("Skipping gnuplot version check", "env", config.SkipVersionCheckEnv)

		return
	}

	version, err := Version(ctx, path)
	if err != nil {
		d.log.Debug("gnuplot version check failed", "error", err)

		return
	}

	if compareVersions(version, MinimumVersion) < 0 {
		d.log.Warn("gnuplot version does not support named data blocks",
			"version", version,
			"minimum_required", MinimumVersion,
		)

		return
	}

	d.log.Debug("gnuplot version check passed", "version", version, "minimum", MinimumVersion)
}

// Version runs "gnuplot --version" and returns the "major.minor" release.
func Version(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, VersionCheckTimeout)
	defer cancel()

	//nolint:gosec // G204: the executable path is resolved by discovery
	output, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("run %s --version: %w", path, err)
	}

	return ParseVersion(string(output))
}

// ParseVersion extracts "major.minor" from gnuplot's version banner,
// e.g. "gnuplot 5.4 patchlevel 8".
func ParseVersion(banner string) (string, error) {
	match := versionPattern.FindStringSubmatch(strings.TrimSpace(banner))
	if match == nil {
		return "", fmt.Errorf("unrecognized gnuplot version %q", strings.TrimSpace(banner))
	}

	return match[1] + "." + match[2], nil
}

// compareVersions compares two dotted versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func compareVersions(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	for i := range max(len(aParts), len(bParts)) {
		aNum := 0
		bNum := 0

		if i < len(aParts) {
			aNum, _ = strconv.Atoi(aParts[i])
		}

		if i < len(bParts) {
			bNum, _ = strconv.Atoi(bParts[i])
		}

		if aNum < bNum {
			return -1
		}

		if aNum > bNum {
			return 1
		}
	}

	return 0
}
