package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:           "dynamicwallpaperconverter [flags] <input.heic>",
		Short:         "Convert Apple dynamic wallpapers for kdynamicwallpaperbuilder",
		Long: `dynamicwallpaperconverter reads the schedule metadata embedded in an Apple
dynamic-wallpaper HEIC file, splits the container into its images, and runs
kdynamicwallpaperbuilder to produce a wallpaper usable by the Plasma dynamic
wallpaper plugin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ctx.logFormat, "log-format", "", "Log format override (console, json)")

	flags.register(rootCmd)

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
