package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/reckon"
	"github.com/roach88/reckon/internal/history"
)

// NewReplCommand creates the repl command: an interactive
// read-evaluate-print loop over stdin.
func NewReplCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive expression loop",
		Long: "Reads expressions from stdin, one per line. Directives:\n" +
			"  :history   show recent calculations (requires --db)\n" +
			"  :quit      exit the loop",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var store *history.Store
			if dbPath != "" {
				var err error
				store, err = history.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				switch {
				case line == "":
					continue
				case line == ":quit" || line == ":q":
					return scanner.Err()
				case line == ":history":
					if err := printHistory(cmd, store); err != nil {
						fmt.Fprintf(out, "error: %v\n", err)
					}
					continue
				}

				value, err := reckon.Compute(line)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				formatted := reckon.Format(value)
				if err := writeResult(out, opts, line, formatted); err != nil {
					return err
				}
				if store != nil {
					if _, err := store.Append(cmd.Context(), line, formatted); err != nil {
						fmt.Fprintf(out, "error: %v\n", err)
					}
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite history database (empty disables persistence)")
	return cmd
}

func printHistory(cmd *cobra.Command, store *history.Store) error {
	if store == nil {
		return fmt.Errorf("history is disabled; start the repl with --db")
	}
	entries, err := store.List(cmd.Context(), 10)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Fprintf(out, "%s = %s\n", entries[i].Expression, entries[i].Result)
	}
	return nil
}
