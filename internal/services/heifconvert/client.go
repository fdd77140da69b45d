package heifconvert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services"
)

var commandContext = exec.CommandContext

// Splitter extracts every frame of a HEIC container into numbered image
// files derived from an output template such as /tmp/work/image.jpg.
type Splitter interface {
	Split(ctx context.Context, inputPath, outputTemplate string) ([]string, error)
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

// CLI wraps the heif-convert command-line decoder.
type CLI struct {
	binary string
}

// NewCLI constructs a client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "heif-convert"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Split runs heif-convert and returns the produced image paths ordered by
// frame number. heif-convert derives the numbered names from the template
// extension, so the template must carry one.
func (c *CLI) Split(ctx context.Context, inputPath, outputTemplate string) ([]string, error) {
	if strings.TrimSpace(inputPath) == "" {
		return nil, errors.New("input path required")
	}
	template := strings.TrimSpace(outputTemplate)
	if template == "" {
		return nil, errors.New("output template required")
	}
	ext := filepath.Ext(template)
	if ext == "" {
		return nil, fmt.Errorf("output template %q has no image extension", template)
	}

	cmd := commandContext(ctx, c.binary, inputPath, template) //nolint:gosec
	if out, err := cmd.CombinedOutput(); err != nil {
		detail := strings.TrimSpace(string(out))
		if detail != "" {
			return nil, services.Wrap(services.ErrExternalTool, "split", "heif-convert", detail, err)
		}
		return nil, services.Wrap(services.ErrExternalTool, "split", "heif-convert", "", err)
	}

	return collectOutputs(template, ext)
}

// collectOutputs gathers the numbered files heif-convert produced. The tool
// drops the number suffix for single-frame containers; that case is renamed
// so callers always see names numbered from 1.
func collectOutputs(template, ext string) ([]string, error) {
	stem := strings.TrimSuffix(template, ext)

	var files []string
	for n := 1; ; n++ {
		path := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if _, err := os.Stat(path); err != nil {
			break
		}
		files = append(files, path)
	}
	if len(files) > 0 {
		return files, nil
	}

	if _, err := os.Stat(template); err == nil {
		single := fmt.Sprintf("%s-1%s", stem, ext)
		if err := os.Rename(template, single); err != nil {
			return nil, fmt.Errorf("number single frame: %w", err)
		}
		return []string{single}, nil
	}

	return nil, services.Wrap(services.ErrExternalTool, "split", "heif-convert", "no images produced", nil)
}

var _ Splitter = (*CLI)(nil)
