package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned for a format name no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(t *Table) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*Table) ([]byte, error)
}

func (ff FormatterFunc) Format(t *Table) ([]byte, error) { return ff.F(t) }
func (ff FormatterFunc) Name() string                    { return ff.ID }

var nowFunc = time.Now

// TimestampedName builds "<prefix>_<unix millis>.<ext>", the naming used by
// the console for downloaded files.
func TimestampedName(prefix, ext string) string {
	return fmt.Sprintf("%s_%d.%s", prefix, nowFunc().UnixMilli(), ext)
}

// WriteFormatted runs a formatter and writes output to a timestamped file in
// dir named after the table title. It returns the file path.
func WriteFormatted(f Formatter, t *Table, dir, ext string) (string, error) {
	data, err := f.Format(t)
	if err != nil {
		return "", err
	}
	prefix := t.Title
	if prefix == "" {
		prefix = "export"
	}
	filename := filepath.Join(dir, TimestampedName(prefix, ext))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// Render formats t with the named formatter and writes it to w.
func Render(w io.Writer, format string, t *Table) error {
	f, err := NewFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(t)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	TableFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NewFormatter is GetFormatterByName with an error listing the choices.
func NewFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console": "table",
	"text":    "table",
	"txt":     "table",
	"yml":     "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
