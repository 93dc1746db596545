package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/podfiler/internal/app"
	"go.trai.ch/podfiler/internal/core/domain"
)

func (c *CLI) newParseLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse-lock",
		Short: "Write the pod locks of Podfile.lock files as YAML",
		Long: "Parses a Podfile.lock and writes the checksum, version and source of every pod to a YAML file.\n" +
			"Without --lock and --output, the locks listed in the configuration file are processed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lock, _ := cmd.Flags().GetString("lock")
			output, _ := cmd.Flags().GetString("output")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			watch, _ := cmd.Flags().GetBool("watch")

			var jobs []domain.LockJob
			if lock != "" {
				jobs = []domain.LockJob{{Lock: lock, Output: output}}
			} else {
				configPath, _ := cmd.Flags().GetString("config")
				loaded, err := c.app.LoadJobs(configPath)
				if err != nil {
					return err
				}
				jobs = loaded
			}

			opts := app.RunOptions{NoCache: noCache}
			if watch {
				err := c.app.Watch(cmd.Context(), jobs, opts)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			_, err := c.app.ParseLock(cmd.Context(), jobs, opts)
			return err
		},
	}
	cmd.Flags().StringP("lock", "l", "", "Path to the Podfile.lock to parse")
	cmd.Flags().StringP("output", "o", "", "Path of the YAML file to write")
	cmd.Flags().BoolP("no-cache", "n", false, "Regenerate outputs even when the lock file is unchanged")
	cmd.Flags().BoolP("watch", "w", false, "Keep running and regenerate outputs when lock files change")
	cmd.MarkFlagsRequiredTogether("lock", "output")
	return cmd
}
