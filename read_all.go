package webfile

import (
	"context"
	"fmt"
	"log/slog"

	slogcontext "github.com/veqryn/slog-context"
	"golang.org/x/sync/errgroup"
)

// ReadAll reads every file of list as text, using one FileReader per file.
// Reads run concurrently, limited by WithConcurrency. The first failure cancels the
// context passed to the remaining reads and is returned.
// The returned contents are in list order.
func ReadAll(ctx context.Context, list *FileList, opts ...ReadAllOption) ([]string, error) {
	options := ReadAllOptions{ReaderOptions: ReaderOptions{Environment: DefaultEnvironment()}}
	for _, opt := range opts {
		opt.ApplyToReadAll(&options)
	}

	files := list.Slice()
	contents := make([]string, len(files))

	eg, egctx := errgroup.WithContext(ctx)
	if options.Concurrency > 0 {
		eg.SetLimit(options.Concurrency)
	}

	slogcontext.Log(ctx, slog.LevelDebug, "reading files", slog.Int("files", len(files)), slog.Int("concurrency", options.Concurrency))

	for i, f := range files {
		eg.Go(func() error {
			// a queued read must not reach the host once another read failed
			if err := egctx.Err(); err != nil {
				return err
			}
			text, err := ReadAsString(egctx, f, WithEnvironment(options.Environment))
			if err != nil {
				return fmt.Errorf("failed to read file %q: %w", f.Name(), err)
			}
			contents[i] = text
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}
