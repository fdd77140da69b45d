package builder

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services"
)

var commandContext = exec.CommandContext

// Builder turns a wallpaper description file into the final artifact.
type Builder interface {
	Build(ctx context.Context, descriptionPath, outputPath, speed string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the kdynamicwallpaperbuilder command line.
type CLI struct {
	binary string
}

// NewCLI constructs a client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "kdynamicwallpaperbuilder"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Build runs the builder against a description file, writing the wallpaper to
// outputPath. Speed passes through unchanged.
func (c *CLI) Build(ctx context.Context, descriptionPath, outputPath, speed string) error {
	if strings.TrimSpace(descriptionPath) == "" {
		return errors.New("description path required")
	}
	if strings.TrimSpace(outputPath) == "" {
		return errors.New("output path required")
	}
	if strings.TrimSpace(speed) == "" {
		return errors.New("speed required")
	}

	args := []string{"--output", outputPath, "--speed", speed, descriptionPath}
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	if out, err := cmd.CombinedOutput(); err != nil {
		return services.Wrap(services.ErrExternalTool, "build", "kdynamicwallpaperbuilder", strings.TrimSpace(string(out)), err)
	}
	return nil
}

var _ Builder = (*CLI)(nil)
