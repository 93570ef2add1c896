package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gomodel/pkg/analysis"
)

var statsKeepGoing bool

var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Summarize many model files",
	Long: `Import model files concurrently and print one summary row per file.
The number of parallel imports is stats.workers from the config file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVarP(&statsKeepGoing, "keep-going", "k", false, "Report unreadable files instead of failing")
}

type fileStats struct {
	file    string
	summary analysis.Summary
	err     error
}

// collectStats imports every file with at most workers imports in flight.
// Each goroutine owns its model. Results keep the order of files.
func collectStats(ctx context.Context, files []string, workers int, keepGoing bool) ([]fileStats, error) {
	results := make([]fileStats, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].file = file
			m, err := loadModel(file)
			if err != nil {
				if keepGoing {
					logger.Warn("skipping model", zap.String("file", file), zap.Error(err))
					results[i].err = err
					return nil
				}
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i].summary = analysis.Summarize(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statsCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	statsTotalStyle  = statsCellStyle.Bold(true)
)

func statsTable(results []fileStats) *table.Table {
	var total analysis.Summary
	rows := make([][]string, 0, len(results)+1)
	for _, r := range results {
		if r.err != nil {
			rows = append(rows, []string{r.file, "error: " + r.err.Error(), "", "", "", "", "", ""})
			continue
		}
		s := r.summary
		rows = append(rows, []string{
			r.file,
			s.Name,
			fmt.Sprint(s.FaceCount),
			fmt.Sprint(s.LineCount),
			fmt.Sprint(s.UniquePoints),
			fmt.Sprintf("%.6f", s.Area),
			fmt.Sprintf("%.6f", s.Length),
			fmt.Sprintf("%.6f", s.Volume),
		})
		total.FaceCount += s.FaceCount
		total.LineCount += s.LineCount
		total.Area += s.Area
		total.Length += s.Length
	}
	rows = append(rows, []string{
		"TOTAL", "",
		fmt.Sprint(total.FaceCount),
		fmt.Sprint(total.LineCount),
		"",
		fmt.Sprintf("%.6f", total.Area),
		fmt.Sprintf("%.6f", total.Length),
		"",
	})

	last := len(rows) - 1
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("FILE", "NAME", "FACES", "LINES", "POINTS", "AREA", "LENGTH", "VOLUME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return statsHeaderStyle
			case last:
				return statsTotalStyle
			}
			return statsCellStyle
		})
}

func runStats(cmd *cobra.Command, args []string) error {
	results, err := collectStats(commandContext(cmd), args, cfg.Stats.Workers, statsKeepGoing)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), statsTable(results).String())
	return nil
}
