// Package inspect builds reports about the files of a file input.
package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/opencontainers/go-digest"
	slogcontext "github.com/veqryn/slog-context"
	"sigs.k8s.io/yaml"

	"ocm.software/open-component-model/bindings/go/webfile"
)

// Entry describes a single file.
type Entry struct {
	Name           string    `json:"name"`
	Size           int64     `json:"size"`
	MediaType      string    `json:"mediaType,omitempty"`
	Classification string    `json:"classification"`
	LastModified   time.Time `json:"lastModified,omitzero"`
	Digest         string    `json:"digest"`
	// Document is the decoded content of a file classified as JSON.
	Document any `json:"document,omitempty"`
	// Error is set if a file classified as JSON does not contain valid JSON.
	Error string `json:"error,omitempty"`
}

// Report describes all files of a list.
type Report struct {
	Files     []Entry `json:"files"`
	TotalSize int64   `json:"totalSize"`
}

// Files reads every file of list and reports on it.
// Read failures abort the report, invalid JSON content is recorded on the entry.
func Files(ctx context.Context, list *webfile.FileList, opts ...webfile.ReadAllOption) (*Report, error) {
	contents, err := webfile.ReadAll(ctx, list, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read files: %w", err)
	}

	report := &Report{Files: make([]Entry, 0, list.Len())}
	for i, f := range list.Slice() {
		entry := newEntry(f, contents[i])
		report.Files = append(report.Files, entry)
		report.TotalSize += entry.Size
		slogcontext.Log(ctx, slog.LevelDebug, "inspected file",
			slog.String("name", entry.Name), slog.String("digest", entry.Digest), slog.String("classification", entry.Classification))
	}
	return report, nil
}

func newEntry(f *webfile.File, content string) Entry {
	mediaType, _ := f.MediaType()
	entry := Entry{
		Name:           f.Name(),
		Size:           f.Size(),
		MediaType:      mediaType,
		Classification: f.MimeType().String(),
		LastModified:   f.LastModified(),
		Digest:         digest.FromString(content).String(),
	}
	if f.MimeType() == webfile.MimeTypeApplicationJSON {
		var doc any
		if err := json.Unmarshal([]byte(content), &doc); err != nil {
			entry.Error = fmt.Sprintf("invalid json: %v", err)
		} else {
			entry.Document = doc
		}
	}
	return entry
}

// Render writes report to w in format.
func Render(w io.Writer, report *Report, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(report, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(report)
	case FormatNDJSON:
		data, err = renderNDJSON(report)
	case FormatTable:
		data = renderTable(report)
	default:
		return fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to render report as %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

func renderNDJSON(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for _, entry := range report.Files {
		if err := encoder.Encode(entry); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func renderTable(report *Report) []byte {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"Name", "Size", "MediaType", "Classification", "Digest"})
	for _, entry := range report.Files {
		t.AppendRow(table.Row{entry.Name, entry.Size, entry.MediaType, entry.Classification, entry.Digest})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return buf.Bytes()
}
