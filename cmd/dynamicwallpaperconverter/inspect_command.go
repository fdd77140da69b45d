package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/heicmeta"
	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/wallpaper"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <input.heic>",
		Short: "Decode the embedded schedule metadata without converting",
		Long: `inspect runs only the metadata extraction and translation steps and prints
the resulting schedule. No external tools are invoked and nothing is written
to disk, which makes it useful for checking what a conversion would produce.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			kind, dict, err := heicmeta.Extract(raw)
			if err != nil {
				return err
			}
			schedule, err := wallpaper.Translate(kind, dict, wallpaper.Config{
				CrossFade:   cfg.Output.CrossFade,
				ImageFormat: cfg.Output.ImageFormat,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(schedule, "", "    ")
				if err != nil {
					return fmt.Errorf("encode schedule: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "Metadata kind: %s\n", kind)
			fmt.Fprintf(out, "Schedule type: %s\n", schedule.Type())
			fmt.Fprintf(out, "Entries:       %d\n", schedule.Len())
			fmt.Fprintln(out, scheduleTable(schedule))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw schedule document instead of a table")
	return cmd
}

func scheduleTable(s *wallpaper.Schedule) string {
	switch s.Kind {
	case heicmeta.KindSolar:
		rows := make([][]string, 0, len(s.Solar))
		for _, e := range s.Solar {
			rows = append(rows, []string{
				e.FileName,
				strconv.FormatFloat(e.SolarElevation, 'g', -1, 64),
				strconv.FormatFloat(e.SolarAzimuth, 'g', -1, 64),
				strconv.FormatBool(e.CrossFade),
			})
		}
		return renderTable([]string{"Image", "Elevation", "Azimuth", "Cross-fade"}, rows)
	case heicmeta.KindTime:
		rows := make([][]string, 0, len(s.Times))
		for _, e := range s.Times {
			rows = append(rows, []string{e.FileName, e.Time, strconv.FormatBool(e.CrossFade)})
		}
		return renderTable([]string{"Image", "Time", "Cross-fade"}, rows)
	default:
		rows := make([][]string, 0, len(s.DayNight))
		for _, e := range s.DayNight {
			rows = append(rows, []string{e.FileName, e.TimeOfDay})
		}
		return renderTable([]string{"Image", "Time of day"}, rows)
	}
}
