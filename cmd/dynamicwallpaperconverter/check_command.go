package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the external tools the converter needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(deps.Defaults(cfg.Tools.HeifConvert, cfg.Tools.WallpaperBuilder))

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
				}
				detail := status.Detail
				if detail == "" {
					detail = status.Description
				}
				rows = append(rows, []string{status.Name, status.Command, state, detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Tool", "Command", "Status", "Detail"}, rows))

			if missing, found := deps.FirstMissing(statuses); found {
				return fmt.Errorf("required tool unavailable: %s (%s)", missing.Name, missing.Detail)
			}
			return nil
		},
	}
}
