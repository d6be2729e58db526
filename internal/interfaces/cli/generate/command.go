package generate

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"weekplan/internal/application/generation"
	"weekplan/internal/domain/planner"
	"weekplan/internal/infrastructure/config"
	"weekplan/internal/infrastructure/document/htmldoc"
	"weekplan/internal/infrastructure/document/pdf"
	"weekplan/internal/interfaces/cli/prompt"
	"weekplan/internal/shared/logger"
)

var (
	year       int
	fromWeek   int
	weeks      int
	breakAfter int
	language   string
	fontFamily string
	fontSize   float64
	output     string
	force      bool
	verbose    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a printable weekly planner",
		Long: `Generate a work-week planner grid (Monday to Friday) for a span of ISO
weeks, with localized day names and date ranges. The output format follows
the file extension of --output: .html produces a standalone HTML page,
anything else a PDF. Without --output the document goes to a temp file and
is left there for inspection.`,
		RunE: run,
	}

	now := time.Now()
	currentYear, currentWeek := now.ISOWeek()

	cmd.Flags().IntVarP(&year, "year", "y", currentYear, "Calendar year of the first week")
	cmd.Flags().IntVarP(&fromWeek, "week", "w", currentWeek, "ISO week number to start from (1-53)")
	cmd.Flags().IntVarP(&weeks, "weeks", "n", 12, "Number of weeks to generate (1-52)")
	cmd.Flags().IntVar(&breakAfter, "break-after", 0, "Page break interval in weeks, 0 keeps weeks flowing (default from config)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Language tag for day names and date ranges (default from config)")
	cmd.Flags().StringVar(&fontFamily, "font-family", "", "Font family (default from config)")
	cmd.Flags().Float64Var(&fontSize, "font-size", 0, "Font size in points (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file; empty writes to a temp file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing destination without asking")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logger.Level = "debug"
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// config fills everything the flags left unset
	if !cmd.Flags().Changed("break-after") {
		breakAfter = cfg.Planner.BreakAfter
	}
	if language == "" {
		language = cfg.Planner.Language
	}
	if fontFamily == "" {
		fontFamily = cfg.Font.Family
	}
	if fontSize == 0 {
		fontSize = cfg.Font.Size
	}

	progress := func(percent int, message string) {
		logger.Info(message, "percent", percent)
	}

	svc := generation.NewService(backendFor(output), prompt.NewTerminalConfirmer(), progress, logger.Get())

	location, err := svc.Generate(generation.Request{
		Year:          year,
		FromWeek:      fromWeek,
		NumberOfWeeks: weeks,
		BreakAfter:    breakAfter,
		Language:      language,
		FontFamily:    fontFamily,
		FontSize:      fontSize,
		OutputPath:    output,
		Force:         force,
	})
	if err != nil {
		return err
	}

	if output == "" {
		logger.Info("document left open for inspection", "path", location)
	} else {
		logger.Info("document written", "path", location)
	}
	return nil
}

func backendFor(path string) planner.Backend {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return htmldoc.NewBackend()
	default:
		return pdf.NewBackend()
	}
}
