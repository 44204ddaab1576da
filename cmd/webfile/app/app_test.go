package app_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocm.software/open-component-model/bindings/go/webfile"
	"ocm.software/open-component-model/bindings/go/webfile/cmd/webfile/app"
	"ocm.software/open-component-model/bindings/go/webfile/host/memory"
	"ocm.software/open-component-model/bindings/go/webfile/inspect"
)

func testEnvironment() *memory.Environment {
	env := memory.New()
	env.SetInput("files", memory.NewInput(memory.NewFileList(
		memory.NewFile("a.json", []byte(`{"a":1}`), webfile.MediaTypeJSON, time.Time{}),
		memory.NewFile("b.txt", []byte("b"), "text/plain", time.Time{}),
	)))
	env.SetInput("empty", memory.NewInput(memory.NewFileList()))
	env.SetInput("unselected", memory.NewInput(nil))
	return env
}

func TestInspect(t *testing.T) {
	env := testEnvironment()

	t.Run("renders report", func(t *testing.T) {
		r := require.New(t)
		out, err := app.Inspect(t.Context(), env, "files", inspect.FormatJSON)
		r.NoError(err)

		var report inspect.Report
		r.NoError(json.Unmarshal([]byte(out), &report))
		r.Len(report.Files, 2)
		r.Equal("a.json", report.Files[0].Name)
		r.Equal(int64(8), report.TotalSize)
	})

	t.Run("renders table", func(t *testing.T) {
		r := require.New(t)
		out, err := app.Inspect(t.Context(), env, "files", inspect.FormatTable)
		r.NoError(err)
		r.Contains(out, "CLASSIFICATION")
		r.Contains(out, "a.json")
		r.Contains(out, "b.txt")
	})

	t.Run("unknown input", func(t *testing.T) {
		_, err := app.Inspect(t.Context(), env, "missing", inspect.FormatJSON)
		assert.ErrorContains(t, err, `no file input with id "missing"`)
	})

	for _, id := range []string{"empty", "unselected"} {
		t.Run(id, func(t *testing.T) {
			_, err := app.Inspect(t.Context(), env, id, inspect.FormatYAML)
			assert.ErrorIs(t, err, app.ErrNoFiles)
		})
	}
}

func TestCommand(t *testing.T) {
	r := require.New(t)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	type call struct {
		out string
		err error
	}
	calls := make(chan call, 1)
	var exported string
	released := false

	cmd := app.New(app.Options{
		Environment: testEnvironment(),
		Export: func(ctx context.Context, name string, handler app.Handler) func() {
			exported = name
			go func() {
				out, err := handler(ctx)
				calls <- call{out: out, err: err}
				cancel()
			}()
			return func() { released = true }
		},
	})
	cmd.SetArgs([]string{"--export", "inspectFiles", "--output", "yaml", "--concurrency", "1", "--loglevel", "error"})

	r.NoError(cmd.ExecuteContext(ctx))
	r.Equal("inspectFiles", exported)
	r.True(released)

	c := <-calls
	r.NoError(c.err)
	r.Contains(c.out, "name: a.json")
	r.Contains(c.out, "totalSize: 8")
}

func TestCommandRejectsInvalidFlags(t *testing.T) {
	cmd := app.New(app.Options{Environment: testEnvironment()})
	cmd.SetArgs([]string{"--output", "toml"})
	cmd.SetErr(&discard{})
	assert.Error(t, cmd.ExecuteContext(t.Context()))
}

func TestCommandWithoutExporter(t *testing.T) {
	cmd := app.New(app.Options{Environment: testEnvironment()})
	cmd.SetArgs([]string{})
	cmd.SetErr(&discard{})
	assert.ErrorContains(t, cmd.ExecuteContext(t.Context()), "no exporter configured")
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
