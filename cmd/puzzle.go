package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/config"
	"github.com/PanoramicPanda/gridkit/input"
)

// answer is one labelled result row.
type answer struct {
	Label string
	Value int
}

// run carries everything a solver needs.
type run struct {
	ctx    context.Context
	lines  []string
	cfg    config.Config
	logger *slog.Logger
}

// puzzle describes one subcommand.
type puzzle struct {
	use   string
	short string
	day   int
	title string
	solve func(r run) ([]answer, error)
}

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func errInvalidFlag(name string, v any) error {
	return fmt.Errorf("%w: --%s %v", config.ErrInvalidValue, name, v)
}

// newPuzzleCmd wraps p in a cobra command taking an optional input file.
func newPuzzleCmd(p puzzle) *cobra.Command {
	return &cobra.Command{
		Use:   p.use + " [file]",
		Short: p.short,
		Long:  fmt.Sprintf("%s\n\nWithout a file argument the input is read from <input-dir>/day_%02d.txt.", p.short, p.day),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg.LogLevel).With("puzzle", p.use)

			path := input.DayFile(cfg.InputDir, p.day)
			if len(args) == 1 {
				path = args[0]
			}
			lines, err := input.LoadLines(path)
			if err != nil {
				logger.Error("load input", "path", path, "err", err)
				return err
			}
			logger.Debug("loaded input", "path", path, "lines", len(lines))

			start := time.Now()
			answers, err := p.solve(run{ctx: cmd.Context(), lines: lines, cfg: cfg, logger: logger})
			if err != nil {
				logger.Error("solve", "err", err)
				return fmt.Errorf("%s: %w", p.use, err)
			}
			elapsed := time.Since(start)
			logger.Info("solved", "answers", len(answers), "elapsed", elapsed)

			return render(cmd.OutOrStdout(), p, answers, elapsed)
		},
	}
}

// render prints the banner followed by the answer table.
func render(w io.Writer, p puzzle, answers []answer, elapsed time.Duration) error {
	var tableBuffer bytes.Buffer
	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Part", "Answer"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, a := range answers {
		table.Append([]string{a.Label, strconv.Itoa(a.Value)})
	}
	table.Render()

	banner := bannerStyle.Render(fmt.Sprintf("Day %02d: %s", p.day, p.title))
	_, err := fmt.Fprintf(w, "%s\n\n%s%s\n", banner, tableBuffer.String(),
		dimStyle.Render("solved in "+elapsed.Round(time.Microsecond).String()))
	return err
}
