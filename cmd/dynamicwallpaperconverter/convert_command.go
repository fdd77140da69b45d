package main

import (
	"github.com/spf13/cobra"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/convert"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/deps"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services/builder"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services/heifconvert"
)

// convertFlags holds the conversion flags of the root command. Values fall
// back to the configuration file unless the flag was set explicitly.
type convertFlags struct {
	output    string
	crossFade bool
	format    string
	speed     string
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "wallpaper.avif", "Path of the converted wallpaper")
	cmd.Flags().BoolVar(&f.crossFade, "crossfade", false, "Blend between scheduled images instead of cutting")
	cmd.Flags().StringVar(&f.format, "format", "jpg", "Intermediate image format (jpg or png)")
	cmd.Flags().StringVar(&f.speed, "speed", "5", "Builder speed parameter")
}

func runConvert(cmd *cobra.Command, ctx *commandContext, inputPath string, flags *convertFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	log, err := ctx.logger()
	if err != nil {
		return err
	}

	statuses := deps.Check(deps.Defaults(cfg.Tools.HeifConvert, cfg.Tools.WallpaperBuilder))
	if missing, found := deps.FirstMissing(statuses); found {
		return services.Wrap(services.ErrNotFound, "preflight", missing.Name, missing.Detail, nil)
	}

	opts := convert.Options{
		InputPath:   inputPath,
		OutputPath:  cfg.Output.Path,
		CrossFade:   cfg.Output.CrossFade,
		ImageFormat: cfg.Output.ImageFormat,
		Speed:       cfg.Output.Speed,
	}
	if cmd.Flags().Changed("output") {
		opts.OutputPath = flags.output
	}
	if cmd.Flags().Changed("crossfade") {
		opts.CrossFade = flags.crossFade
	}
	if cmd.Flags().Changed("format") {
		opts.ImageFormat = flags.format
	}
	if cmd.Flags().Changed("speed") {
		opts.Speed = flags.speed
	}

	pipeline, err := convert.New(
		heifconvert.NewCLI(heifconvert.WithBinary(cfg.Tools.HeifConvert)),
		builder.NewCLI(builder.WithBinary(cfg.Tools.WallpaperBuilder)),
		log,
	)
	if err != nil {
		return err
	}
	return pipeline.Run(cmd.Context(), opts)
}
