package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/fileutil"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/heicmeta"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/logging"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services/builder"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services/heifconvert"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/wallpaper"
)

const (
	descriptionFileName = "wallpaper.json"
	builtDirName        = "out"
)

// Options describes one conversion request.
type Options struct {
	InputPath   string
	OutputPath  string
	CrossFade   bool
	ImageFormat string
	Speed       string
}

// Option configures the pipeline.
type Option func(*Pipeline)

// WithWorkspaceRoot places conversion workspaces under dir instead of the
// system temp directory (primarily for tests).
func WithWorkspaceRoot(dir string) Option {
	return func(p *Pipeline) {
		p.workRoot = dir
	}
}

// Pipeline converts one Apple dynamic wallpaper at a time.
type Pipeline struct {
	splitter heifconvert.Splitter
	builder  builder.Builder
	logger   *slog.Logger
	workRoot string
}

// New constructs a pipeline over the given tool integrations.
func New(splitter heifconvert.Splitter, bldr builder.Builder, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	if splitter == nil {
		return nil, errors.New("splitter required")
	}
	if bldr == nil {
		return nil, errors.New("builder required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pipeline{splitter: splitter, builder: bldr, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run executes the conversion end to end and writes the final artifact to
// opts.OutputPath.
func (p *Pipeline) Run(ctx context.Context, opts Options) (err error) {
	if err := validateOptions(opts); err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx = services.WithRequestID(ctx, runID)
	log := p.logger.With(slog.String("request_id", runID))

	raw, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "read", "", fmt.Sprintf("input %q", opts.InputPath), err)
	}

	kind, dict, err := heicmeta.Extract(raw)
	if err != nil {
		return err
	}
	log.Info("extracted wallpaper metadata", slog.String("kind", kind.String()))

	schedule, err := wallpaper.Translate(kind, dict, wallpaper.Config{
		CrossFade:   opts.CrossFade,
		ImageFormat: opts.ImageFormat,
	})
	if err != nil {
		return err
	}
	log.Info("translated schedule",
		slog.String("type", schedule.Type()),
		slog.Int("entries", schedule.Len()),
	)

	ws, err := newWorkspace(p.workRoot)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ws.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("remove workspace: %w", cerr)
		}
	}()

	files, err := p.splitter.Split(services.WithStep(ctx, "split"), opts.InputPath, ws.Join("image."+opts.ImageFormat))
	if err != nil {
		return err
	}
	log.Info("split container", slog.Int("images", len(files)))

	if err := verifyImages(ws, schedule.FileNames(), len(files)); err != nil {
		return err
	}

	descriptionPath := ws.Join(descriptionFileName)
	data, err := json.MarshalIndent(schedule, "", "    ")
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := os.WriteFile(descriptionPath, data, 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}

	if err := os.Mkdir(ws.Join(builtDirName), 0o755); err != nil {
		return fmt.Errorf("create build directory: %w", err)
	}
	builtPath := filepath.Join(ws.Join(builtDirName), filepath.Base(opts.OutputPath))
	if err := p.builder.Build(services.WithStep(ctx, "build"), descriptionPath, builtPath, opts.Speed); err != nil {
		return err
	}

	if err := fileutil.CopyFile(builtPath, opts.OutputPath); err != nil {
		return fmt.Errorf("install wallpaper to %q: %w", opts.OutputPath, err)
	}
	log.Info("wrote wallpaper", slog.String("output", opts.OutputPath))
	return nil
}

func validateOptions(opts Options) error {
	if opts.InputPath == "" {
		return services.Wrap(services.ErrValidation, "convert", "", "input path required", nil)
	}
	if opts.OutputPath == "" || filepath.Base(opts.OutputPath) == "." {
		return services.Wrap(services.ErrValidation, "convert", "", "output path required", nil)
	}
	switch opts.ImageFormat {
	case "jpg", "png":
	default:
		return services.Wrap(services.ErrValidation, "convert", "", fmt.Sprintf("image format must be jpg or png, got %q", opts.ImageFormat), nil)
	}
	if opts.Speed == "" {
		return services.Wrap(services.ErrValidation, "convert", "", "speed required", nil)
	}
	return nil
}

// verifyImages makes sure every image the schedule references came out of the
// container before the builder is asked to consume it.
func verifyImages(ws *workspace, names []string, produced int) error {
	for _, name := range names {
		if _, err := os.Stat(ws.Join(name)); err != nil {
			detail := fmt.Sprintf("schedule references %s but the container produced %d images", name, produced)
			return services.Wrap(services.ErrValidation, "split", "", detail, nil)
		}
	}
	return nil
}
