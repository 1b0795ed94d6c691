package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/pkg/coord"
)

var tablesConcurrency int

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build the coordinate tables and report on them",
	Long: `Build every transition and pruning table and print a report of each:
its phase, entry count, memory, maximum pruning depth and depth histogram.

The tables are built in memory on every run and are never written to disk.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().IntVar(&tablesConcurrency, "concurrency", 0, "Tables built at once (default: GOMAXPROCS)")
}

func runTables(cmd *cobra.Command, args []string) error {
	t, err := buildTables(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	writeTableReport(cmd.OutOrStdout(), t.Stats())
	return nil
}

// buildTables builds the tables, showing progress on w.
func buildTables(ctx context.Context, w io.Writer) (*coord.Tables, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progress := newBuildProgress(ctx, w, cancel)
	opts := []coord.BuildOption{
		coord.WithObserver(progress.Observe),
		coord.WithLogger(logger),
	}
	if tablesConcurrency > 0 {
		opts = append(opts, coord.WithConcurrency(tablesConcurrency))
	}

	start := time.Now()
	progress.Start(coord.TableNames())
	t, err := coord.Build(ctx, opts...)
	progress.Complete()
	if err != nil {
		return nil, fmt.Errorf("failed to build tables: %w", err)
	}
	logger.Debug("tables ready", "elapsed", time.Since(start))
	return t, nil
}

func writeTableReport(w io.Writer, stats []coord.TableStats) {
	header := fmt.Sprintf("%-24s %-7s %12s %10s %5s  %s", "TABLE", "PHASE", "ENTRIES", "MEMORY", "DEPTH", "HISTOGRAM")
	fmt.Fprintln(w, titleStyle.Render(header))

	total := 0
	for _, s := range stats {
		total += s.Bytes
		depth := "-"
		if s.Depth >= 0 {
			depth = fmt.Sprint(s.Depth)
		}
		fmt.Fprintf(w, "%-24s %-7s %12s %10s %5s  %s\n",
			s.Name, s.Phase, humanize.Comma(int64(s.Entries)), humanize.Bytes(uint64(s.Bytes)), depth, formatHistogram(s.Histogram))
	}
	fmt.Fprintf(w, "\n%d tables, %s\n", len(stats), humanize.Bytes(uint64(total)))
}

// formatHistogram renders counts as depth:count pairs.
func formatHistogram(h []int) string {
	parts := make([]string, 0, len(h))
	for d, n := range h {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d:%s", d, humanize.Comma(int64(n))))
		}
	}
	return strings.Join(parts, " ")
}
