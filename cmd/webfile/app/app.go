// Package app contains the webfile command.
//
// The command exports a function on the host that inspects the files selected in a
// file input and settles with the rendered report. Exporting is delegated to an
// Exporter so that the command can run outside of a browser.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"ocm.software/open-component-model/bindings/go/webfile"
	"ocm.software/open-component-model/bindings/go/webfile/host"
	"ocm.software/open-component-model/bindings/go/webfile/inspect"
	"ocm.software/open-component-model/bindings/go/webfile/internal/flags/enum"
	"ocm.software/open-component-model/bindings/go/webfile/internal/flags/log"
)

const (
	InputFlagName       = "input"
	ExportFlagName      = "export"
	OutputFlagName      = "output"
	ConcurrencyFlagName = "concurrency"

	DefaultInput  = "files"
	DefaultExport = "webfileInspect"
)

// ErrNoFiles is returned when the input has no files associated.
var ErrNoFiles = errors.New("no files selected")

// Handler produces the result of one invocation of the exported function.
type Handler func(ctx context.Context) (string, error)

// Exporter makes handler callable from the host under name.
// The returned release function undoes the export.
type Exporter func(ctx context.Context, name string, handler Handler) (release func())

// Options are the dependencies of the command.
type Options struct {
	Environment host.Environment
	Export      Exporter
}

// New creates the webfile command.
func New(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webfile",
		Short: "Inspect files selected in a browser file input",
		Long: `webfile exports a function on the host. Every call reads the files that are
selected in the configured file input and settles with a report that contains
size, media type, digest and, for JSON files, the decoded document of each file.`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	log.RegisterLoggingFlags(cmd.PersistentFlags())
	cmd.Flags().String(InputFlagName, DefaultInput, "element id of the file input to inspect")
	cmd.Flags().String(ExportFlagName, DefaultExport, "name of the exported function")
	cmd.Flags().Int(ConcurrencyFlagName, 4, "maximum number of files read at the same time")
	enum.Var(cmd.Flags(), OutputFlagName, []string{
		inspect.FormatJSON.String(),
		inspect.FormatYAML.String(),
		inspect.FormatNDJSON.String(),
		inspect.FormatTable.String(),
	}, "format of the report")

	return cmd
}

func run(cmd *cobra.Command, opts Options) error {
	if opts.Export == nil {
		return errors.New("no exporter configured")
	}
	env := opts.Environment
	if env == nil {
		env = webfile.DefaultEnvironment()
	}

	logger, err := log.GetBaseLogger(cmd)
	if err != nil {
		return err
	}
	ctx := slogcontext.NewCtx(cmd.Context(), logger)

	input, err := cmd.Flags().GetString(InputFlagName)
	if err != nil {
		return err
	}
	name, err := cmd.Flags().GetString(ExportFlagName)
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt(ConcurrencyFlagName)
	if err != nil {
		return err
	}
	output, err := enum.Get(cmd.Flags(), OutputFlagName)
	if err != nil {
		return err
	}
	format, err := inspect.ParseFormat(output)
	if err != nil {
		return err
	}

	release := opts.Export(ctx, name, func(ctx context.Context) (string, error) {
		return Inspect(ctx, env, input, format, webfile.WithConcurrency(concurrency))
	})
	defer release()

	slogcontext.Log(ctx, slog.LevelInfo, "exported inspection", slog.String("function", name), slog.String("input", input))
	<-ctx.Done()
	return nil
}

// Inspect reports on the files selected in the input with id and renders the report in format.
func Inspect(ctx context.Context, env host.Environment, id string, format inspect.Format, opts ...webfile.ReadAllOption) (string, error) {
	element, ok := env.InputByID(id)
	if !ok {
		return "", fmt.Errorf("no file input with id %q", id)
	}
	list, ok := webfile.NewFileList(element)
	if !ok || list.Len() == 0 {
		return "", fmt.Errorf("input %q: %w", id, ErrNoFiles)
	}

	report, err := inspect.Files(ctx, list, append([]webfile.ReadAllOption{webfile.WithEnvironment(env)}, opts...)...)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := inspect.Render(&buf, report, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}
