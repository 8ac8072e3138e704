package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/config"
	"github.com/satishbabariya/pslcheck/cli/internal/ui"
	"github.com/satishbabariya/pslcheck/cli/internal/watch"
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/validation"
)

// ErrSchemaInvalid is returned when validation reports at least one error.
var ErrSchemaInvalid = errors.New("schema is invalid")

type validateOptions struct {
	schemaPath  string
	parallelism int
	format      string
	watch       bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(cfg *config.Config) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [schema-path]",
		Short: "Validate a Prisma schema file",
		Long: `Validate a Prisma schema file against its datasource's connector.

Every index is checked for a supported algorithm, operator classes that
belong to that algorithm, and fields whose native and logical types the
operator class (or the algorithm's default class) can index.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := resolveValidateOptions(cmd, opts, cfg, args)
			if resolved.watch {
				return runWatch(cmd, resolved)
			}
			return runValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), resolved)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "Path to schema file")
	cmd.Flags().IntVarP(&opts.parallelism, "parallel", "p", 0, "Number of models validated concurrently")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: pretty or json")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-validate whenever the schema file changes")

	return cmd
}

// resolveValidateOptions fills unset flags from the loaded configuration.
func resolveValidateOptions(cmd *cobra.Command, opts validateOptions, cfg *config.Config, args []string) validateOptions {
	switch {
	case len(args) > 0:
		opts.schemaPath = args[0]
	case opts.schemaPath == "":
		opts.schemaPath = cfg.ResolvedSchemaPath()
	}
	if !cmd.Flags().Changed("parallel") {
		opts.parallelism = cfg.Parallelism
	}
	if opts.format == "" {
		opts.format = cfg.Format
	}
	return opts
}

func runValidate(stdout, stderr io.Writer, opts validateOptions) error {
	content, err := afero.ReadFile(config.AppFs, opts.schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	file := psl.NewSourceFile(opts.schemaPath, string(content))
	result := psl.Validate(file, validation.WithParallelism(opts.parallelism))
	debug.Info("Validated schema",
		"schema", opts.schemaPath,
		"errors", len(result.Diagnostics.Errors()),
		"warnings", len(result.Diagnostics.Warnings()),
	)

	switch opts.format {
	case config.FormatJSON:
		report := newReport(opts.schemaPath, file.Data, result.Diagnostics)
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	case config.FormatPretty:
		printPretty(stdout, stderr, opts.schemaPath, file.Data, result)
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	if result.Diagnostics.HasErrors() {
		return fmt.Errorf("%w: %d error(s) in %s", ErrSchemaInvalid, len(result.Diagnostics.Errors()), opts.schemaPath)
	}
	return nil
}

// printPretty writes diagnostics, each group under its header, to stderr and
// the success summary to stdout.
func printPretty(stdout, stderr io.Writer, path, text string, result validation.ValidatedSchema) {
	diags := result.Diagnostics
	if len(diags.Warnings()) > 0 {
		ui.FprintWarning(stderr, "Schema has warnings:")
		fmt.Fprintln(stderr, diags.WarningsToPrettyString(path, text))
	}
	if diags.HasErrors() {
		ui.FprintError(stderr, "Validating %s failed:", path)
		fmt.Fprintln(stderr, diags.ToPrettyString(path, text))
		return
	}

	ui.FprintSuccess(stdout, "Schema is valid: %s", path)
	if result.Db == nil {
		return
	}

	models := result.Db.WalkModels()
	indexes := 0
	for _, model := range models {
		indexes += len(model.Indexes())
	}
	connector := "none"
	if result.Connector != nil {
		connector = result.Connector.Name()
	}
	ui.FprintList(stdout, []string{
		fmt.Sprintf("connector: %s", connector),
		fmt.Sprintf("%d model(s)", len(models)),
		fmt.Sprintf("%d index(es)", indexes),
	})
}

func runWatch(cmd *cobra.Command, opts validateOptions) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	w, err := watch.NewWatcher(opts.schemaPath, watch.DefaultDebounce, func() error {
		ui.PrintInfo("Validating %s", opts.schemaPath)
		err := runValidate(stdout, stderr, opts)
		if errors.Is(err, ErrSchemaInvalid) {
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}

	ui.PrintInfo("Watching %s for changes. Press Ctrl+C to stop.", opts.schemaPath)
	return w.Run(cmd.Context())
}

// report is the JSON output of validate.
type report struct {
	Schema   string             `json:"schema"`
	Valid    bool               `json:"valid"`
	Errors   []reportDiagnostic `json:"errors"`
	Warnings []reportDiagnostic `json:"warnings"`
}

type reportDiagnostic struct {
	Message   string                 `json:"message"`
	Kind      diagnostics.ErrorKind  `json:"kind,omitempty"`
	Attribute string                 `json:"attribute,omitempty"`
	Span      diagnostics.Span       `json:"span"`
	Start     diagnostics.LineColumn `json:"start"`
	End       diagnostics.LineColumn `json:"end"`
}

func newReport(path, text string, diags diagnostics.Diagnostics) report {
	r := report{
		Schema:   path,
		Valid:    !diags.HasErrors(),
		Errors:   []reportDiagnostic{},
		Warnings: []reportDiagnostic{},
	}
	for _, err := range diags.Errors() {
		start, end := err.Span().Position(text)
		r.Errors = append(r.Errors, reportDiagnostic{
			Message:   err.Message(),
			Kind:      err.Kind(),
			Attribute: err.Attribute(),
			Span:      err.Span(),
			Start:     start,
			End:       end,
		})
	}
	for _, warning := range diags.Warnings() {
		start, end := warning.Span().Position(text)
		r.Warnings = append(r.Warnings, reportDiagnostic{
			Message: warning.Message(),
			Span:    warning.Span(),
			Start:   start,
			End:     end,
		})
	}
	return r
}
