package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"splitdiff/internal/app"
	"splitdiff/internal/clipboard"
	"splitdiff/internal/config"
	"splitdiff/internal/diffview"
	gitint "splitdiff/internal/git"
	"splitdiff/internal/linenumbers"
	"splitdiff/internal/syntax"
	"splitdiff/internal/theme"
)

var (
	renderMode   string
	renderCopy   bool
	renderWidth  string
	renderMarker bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "splitdiff",
		Short: "Interactive side-by-side viewer for a git working tree's changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := app.NewModel()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
	root.AddCommand(renderCmd())
	return root
}

// renderCmd prints one file's side-by-side diff to stdout without starting
// the TUI, for use in scripts and editor integrations.
func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render one file's working-tree diff to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0])
		},
	}
	cmd.Flags().StringVar(&renderMode, "mode", "all", `diff mode: "all", "staged", or "unstaged"`)
	cmd.Flags().BoolVar(&renderCopy, "copy", false, "also copy the rendered output to the system clipboard")
	cmd.Flags().StringVar(&renderWidth, "width", "", `override configured width ("auto" or a column count)`)
	cmd.Flags().BoolVar(&renderMarker, "keep-markers", false, "show a literal +/- column instead of relying on background color")
	return cmd
}

func runRender(path string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	mode, err := parseDiffMode(renderMode)
	if err != nil {
		return err
	}

	ctx := context.Background()
	raw, err := gitint.NewDiffService().Diff(ctx, cwd, path, mode)
	if err != nil {
		return fmt.Errorf("diff %s: %w", path, err)
	}
	if strings.TrimSpace(raw) == "" {
		fmt.Printf("no diff for %s\n", path)
		return nil
	}

	rows, err := diffview.ParseUnifiedDiff([]byte(raw))
	if err != nil {
		return fmt.Errorf("parse diff for %s: %w", path, err)
	}

	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	if renderWidth != "" {
		cfg.SideBySide.Width = renderWidth
	}
	if renderMarker {
		cfg.SideBySide.KeepMarkers = true
	}

	width, err := cfg.SideBySide.ToWidth()
	if err != nil {
		return err
	}
	fillMethod, err := cfg.SideBySide.ToFillMethod()
	if err != nil {
		return err
	}

	digits := cfg.SideBySide.LineNumberDigits
	if digits == 0 {
		digits = linenumbers.DigitsFor(highestLineNumber(rows))
	}
	format := linenumbers.Format{Digits: digits, Separator: " "}

	palette := theme.Default()
	highlighter := syntax.New("monokai", palette.Styles().Context)

	termWidth := 0
	if w, ok := envTerminalWidth(); ok {
		termWidth = w
	}

	rendered := diffview.RenderSideBySide(rows, diffview.RenderOptions{
		Declared:      width,
		TerminalWidth: termWidth,
		FillMethod:    fillMethod,
		KeepMarkers:   cfg.SideBySide.KeepMarkers,
		Wrap:          cfg.SideBySide.ToWrapConfig(),
		Styles:        palette.Styles(),
		GutterFormat:  diffview.LeftRight[linenumbers.Format]{Left: format, Right: format},
		Divider:       " │ ",
		Highlight:     highlighter.Highlight,
	})

	fmt.Print(rendered)

	if renderCopy {
		if err := clipboard.CopyText(ctx, rendered); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

func parseDiffMode(s string) (gitint.DiffMode, error) {
	switch s {
	case "", "all":
		return gitint.DiffModeAll, nil
	case "staged":
		return gitint.DiffModeStaged, nil
	case "unstaged":
		return gitint.DiffModeUnstaged, nil
	default:
		return 0, fmt.Errorf(`--mode must be one of "all", "staged", "unstaged", got %q`, s)
	}
}

func highestLineNumber(rows []diffview.DiffRow) int {
	max := 0
	for _, r := range rows {
		if r.OldLine != nil && *r.OldLine > max {
			max = *r.OldLine
		}
		if r.NewLine != nil && *r.NewLine > max {
			max = *r.NewLine
		}
	}
	return max
}

// envTerminalWidth reports stdout's column count when it's a real terminal,
// so render falls back to a fixed-width layout when piped into a file.
func envTerminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
