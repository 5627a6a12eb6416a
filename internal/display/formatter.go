// Package display renders normalized symbol records for human or machine
// consumption.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"symq/internal/symbol"
)

// View selects the text layout for a record list.
type View string

const (
	ViewFindSymbol   View = "find-symbol"
	ViewFileOverview View = "file-overview"
	ViewReferences   View = "references"
)

// Placeholder rendered for fields a record does not carry. Missing data is a
// display concern, never an error.
const missing = "?"

// Options controls output formatting
type Options struct {
	Format    string // "text" or "json"
	NameWidth int    // column width for symbol names
	KindWidth int    // column width for symbol kinds
	Writer    io.Writer
}

// Formatter renders record lists and key/value views
type Formatter struct {
	options Options
}

// NewFormatter creates a new formatter
func NewFormatter(options Options) *Formatter {
	if options.NameWidth <= 0 {
		options.NameWidth = 30
	}
	if options.KindWidth <= 0 {
		options.KindWidth = 15
	}
	return &Formatter{options: options}
}

// Symbols renders a list of normalized records in the layout of the given
// view. JSON mode always emits the {"results": [...]} envelope.
func (f *Formatter) Symbols(view View, records []symbol.Record) error {
	if f.options.Format == "json" {
		if records == nil {
			records = []symbol.Record{}
		}
		return f.writeJSON(map[string]any{"results": records})
	}

	switch view {
	case ViewFileOverview:
		return f.fileOverviewText(records)
	case ViewReferences:
		return f.referencesText(records)
	default:
		return f.findSymbolText(records)
	}
}

// findSymbolText renders one aligned line per symbol: name, kind,
// file:start_line.
func (f *Formatter) findSymbolText(records []symbol.Record) error {
	if len(records) == 0 {
		return f.writeLine("No symbols found.")
	}
	for _, rec := range records {
		line := fmt.Sprintf("%-*s %-*s %s:%s",
			f.options.NameWidth, stringField(rec, "name"),
			f.options.KindWidth, stringField(rec, "kind"),
			stringField(rec, "file"), startLineField(rec))
		if err := f.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// fileOverviewText renders one line per symbol: kind, name, (Line N).
func (f *Formatter) fileOverviewText(records []symbol.Record) error {
	if len(records) == 0 {
		return f.writeLine("No symbols found in file.")
	}
	for _, rec := range records {
		line := fmt.Sprintf("%-*s %-*s (Line %s)",
			f.options.KindWidth, stringField(rec, "kind"),
			f.options.NameWidth, stringField(rec, "name"),
			startLineField(rec))
		if err := f.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// referencesText renders one block per reference with an optional indented
// snippet.
func (f *Formatter) referencesText(records []symbol.Record) error {
	if len(records) == 0 {
		return f.writeLine("No references found.")
	}
	for _, rec := range records {
		line := fmt.Sprintf("Referenced in %s:%s", stringField(rec, "file"), startLineField(rec))
		if err := f.writeLine(line); err != nil {
			return err
		}
		if snippet, ok := rec["content_around_reference"].(string); ok {
			if snippet = strings.TrimSpace(snippet); snippet != "" {
				if err := f.writeLine("  Code:\n" + indent(snippet, "  ") + "\n"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Field is one key/value pair of a project view, rendered in order.
type Field struct {
	Key   string
	Value any
}

// Fields renders a project view: "Key: value" lines in text mode, a plain
// JSON object in JSON mode.
func (f *Formatter) Fields(fields []Field) error {
	if f.options.Format == "json" {
		obj := make(map[string]any, len(fields))
		for _, field := range fields {
			obj[jsonKey(field.Key)] = field.Value
		}
		return f.writeJSON(obj)
	}
	for _, field := range fields {
		if err := f.writeLine(fmt.Sprintf("%s: %v", field.Key, field.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Messages renders the server's textual confirmation blocks: one line each in
// text mode, a {"messages": [...]} envelope in JSON mode.
func (f *Formatter) Messages(blocks []string) error {
	if f.options.Format == "json" {
		if blocks == nil {
			blocks = []string{}
		}
		return f.writeJSON(map[string]any{"messages": blocks})
	}
	for _, block := range blocks {
		if err := f.writeLine(block); err != nil {
			return err
		}
	}
	return nil
}

// Error renders an error in JSON mode as {"error": "..."}. Text-mode errors
// go to stderr and are not this formatter's concern.
func (f *Formatter) Error(err error) error {
	if f.options.Format != "json" {
		return nil
	}
	return f.writeJSON(map[string]any{"error": err.Error()})
}

func (f *Formatter) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.options.Writer, string(data))
	return err
}

func (f *Formatter) writeLine(line string) error {
	_, err := fmt.Fprintln(f.options.Writer, line)
	return err
}

// stringField returns a record's string field or the missing placeholder.
func stringField(rec symbol.Record, key string) string {
	if s, ok := rec[key].(string); ok && s != "" {
		return s
	}
	return missing
}

// startLineField returns the normalized start line or the missing placeholder.
func startLineField(rec symbol.Record) string {
	if line, ok := symbol.StartLine(rec); ok {
		return fmt.Sprintf("%d", line)
	}
	return missing
}

// jsonKey converts a display label like "Project Root" to project_root.
func jsonKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
