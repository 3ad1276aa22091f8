// Command draftdeck renders project documents to HTML or PDF from the
// command line, using the same pipeline as the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/draftdeck/draftdeck/internal"
	"github.com/draftdeck/draftdeck/internal/assemble"
	"github.com/draftdeck/draftdeck/internal/browser"
	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/format"
	"github.com/draftdeck/draftdeck/internal/render"
	"github.com/spf13/cobra"
)

// renderInput mirrors the HTTP request body so the same JSON documents
// work in both places.
type renderInput struct {
	Content  any                `json:"content"`
	Metadata domain.Metadata    `json:"metadata"`
	Options  *domain.PDFOptions `json:"options"`
}

type app struct {
	rootCmd   *cobra.Command
	renderCmd *cobra.Command

	docType    string
	inputFile  string
	outputFile string
	htmlOnly   bool
	project    string
	company    string
	theme      string
	chromePath string
	timeout    time.Duration
}

func newApp() *app {
	a := &app{}

	a.rootCmd = &cobra.Command{
		Use:          "draftdeck",
		Short:        "Generate project management documents as HTML or PDF",
		Long:         "Renders structured project data (charters, risk registers, backlogs and more) into print-ready PDF documents.",
		SilenceUsage: true,
	}

	a.renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a JSON document file to HTML or PDF",
		RunE:  a.run,
	}

	a.rootCmd.AddCommand(a.renderCmd, newTypesCmd())
	a.setupFlags()

	return a
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported document types",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, dt := range domain.AllDocumentTypes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", dt, dt.Title())
			}
		},
	}
}

func (a *app) setupFlags() {
	flags := a.renderCmd.Flags()
	flags.StringVarP(&a.docType, "type", "t", "", "Document type, e.g. charter, risk_register, backlog (required)")
	flags.StringVarP(&a.inputFile, "in", "i", "", "Path to the JSON document file (required)")
	flags.StringVarP(&a.outputFile, "out", "o", "", "Path for the output file (required)")
	flags.BoolVar(&a.htmlOnly, "html", false, "Emit the assembled HTML page instead of a PDF")
	flags.StringVar(&a.project, "project", "", "Override the project name")
	flags.StringVar(&a.company, "company", "", "Override the company name")
	flags.StringVar(&a.theme, "theme", "", "Color theme: default, slate, emerald, burgundy")
	flags.StringVar(&a.chromePath, "chrome", "", "Path to the Chrome binary (auto-detected when empty)")
	flags.DurationVar(&a.timeout, "timeout", 60*time.Second, "Render timeout")

	_ = a.renderCmd.MarkFlagRequired("type")
	_ = a.renderCmd.MarkFlagRequired("in")
	_ = a.renderCmd.MarkFlagRequired("out")
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	logger := internal.NewLogger(os.Stderr, "development", "info")

	docType := domain.DocumentType(a.docType)
	if !docType.IsValid() {
		return fmt.Errorf("unknown document type %q (see %v)", a.docType, domain.AllDocumentTypes())
	}

	input, err := a.loadInput()
	if err != nil {
		return err
	}
	if a.project != "" {
		input.Metadata.ProjectName = a.project
	}
	if a.company != "" {
		input.Metadata.CompanyName = a.company
	}

	opts := domain.DefaultPDFOptions()
	if input.Options != nil {
		opts = *input.Options
	}
	if a.theme != "" {
		opts.Theme = a.theme
	}

	registry := format.NewRegistry(logger)
	fragment := registry.Format(docType, input.Content, input.Metadata, opts.FormatterOptions)
	page := assemble.New(opts.Theme).Document(docType, fragment, input.Metadata, opts.FormatterOptions)

	if a.htmlOnly {
		if err := os.WriteFile(a.outputFile, []byte(page), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("HTML written", "path", a.outputFile, "bytes", len(page))
		return nil
	}

	pool := browser.NewPool(browser.PoolConfig{
		MaxBrowsers:   1,
		IdleTimeout:   time.Second,
		ChromePath:    a.chromePath,
		LaunchTimeout: 30 * time.Second,
	}, logger)

	ctx := cmd.Context()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = pool.Shutdown(shutdownCtx)
	}()

	renderer := render.New(pool, render.Config{Timeout: a.timeout}, logger)
	result, err := renderer.Render(ctx, page, input.Metadata, opts)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if err := os.WriteFile(a.outputFile, result.Buffer, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("PDF written", "path", a.outputFile, "bytes", result.Size, "pages", result.PageCount)
	return nil
}

func (a *app) loadInput() (*renderInput, error) {
	data, err := os.ReadFile(a.inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var input renderInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	return &input, nil
}

func main() {
	if err := newApp().rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
