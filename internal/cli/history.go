package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/reckon/internal/history"
)

// NewHistoryCommand creates the history command group: list, replay, and
// clear stored calculations.
func NewHistoryCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect stored calculations",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", defaultHistoryPath(), "SQLite history database")

	list := &cobra.Command{
		Use:   "list",
		Short: "List recent calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range entries {
				if opts.Verbose {
					fmt.Fprintf(out, "%s  %s  %s = %s\n",
						entry.ID, entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.Expression, entry.Result)
				} else {
					fmt.Fprintf(out, "%s = %s\n", entry.Expression, entry.Result)
				}
			}
			return nil
		},
	}
	list.Flags().Int("limit", 20, "maximum entries to show (0 for all)")

	replay := &cobra.Command{
		Use:   "replay <entry-id>",
		Short: "Re-compute a stored expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := store.Replay(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries\n", n)
			return nil
		},
	}

	cmd.AddCommand(list, replay, clear)
	return cmd
}

// defaultHistoryPath places the database under the user config dir,
// falling back to the working directory when none is available.
func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "reckon-history.db"
	}
	return filepath.Join(dir, "reckon", "history.db")
}
