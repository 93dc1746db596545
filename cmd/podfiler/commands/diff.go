package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Show how the pods of two Podfile.lock files differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := c.app.Diff(args[0], args[1])
			if err != nil {
				return err
			}

			printDiff(cmd.OutOrStdout(), diff)

			exitCode, _ := cmd.Flags().GetBool("exit-code")
			if exitCode && !diff.IsEmpty() {
				return zerr.With(zerr.Wrap(domain.ErrLocksDiffer, "diff found changes"), "changes", diff.TotalChanges())
			}
			return nil
		},
	}
	cmd.Flags().Bool("exit-code", false, "Exit with status 1 when the lock files differ")
	return cmd
}

func printDiff(w io.Writer, diff *domain.LockDiff) {
	if diff.IsEmpty() {
		_, _ = fmt.Fprintln(w, "No changes")
		return
	}

	for _, p := range diff.Added {
		_, _ = fmt.Fprintf(w, "+ %s %s\n", p.Name, p.Version)
	}
	for _, p := range diff.Removed {
		_, _ = fmt.Fprintf(w, "- %s %s\n", p.Name, p.Version)
	}
	for _, p := range diff.Upgraded {
		_, _ = fmt.Fprintf(w, "↑ %s %s -> %s\n", p.Name, p.OldVersion, p.NewVersion)
	}
	for _, p := range diff.Downgraded {
		_, _ = fmt.Fprintf(w, "↓ %s %s -> %s\n", p.Name, p.OldVersion, p.NewVersion)
	}
	for _, s := range diff.SourceChanged {
		_, _ = fmt.Fprintf(w, "~ %s %s -> %s\n", s.Name, s.OldSource.Kind(), s.NewSource.Kind())
	}
	_, _ = fmt.Fprintf(w, "%d changes\n", diff.TotalChanges())
}
