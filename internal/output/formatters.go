package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// page is the structured shape of a table: the same {total, rows} pair the
// backend returns for paginated lists.
type page struct {
	Total int64 `json:"total" yaml:"total"`
	Rows  any   `json:"rows" yaml:"rows"`
}

func (t *Table) page() page {
	rows := t.Records
	if rows == nil {
		rows = []any{}
	}
	return page{Total: t.Total, Rows: rows}
}

// TableFormatter aligns the flattened rows for a terminal.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(t *Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	if len(t.Columns) > 0 {
		w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
		writeTabRow(w, t.Columns)
		for _, row := range t.Rows {
			writeTabRow(w, row)
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(buf, "total: %d\n", t.Total)
	return buf.Bytes(), nil
}

func writeTabRow(w *tabwriter.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

// JSONFormatter serializes the page as pretty-printed JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(t *Table) ([]byte, error) {
	out, err := json.MarshalIndent(t.page(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// CSVFormatter writes the flattened rows with a header line.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(t *Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAMLFormatter serializes the page as YAML using the records' yaml tags.
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(t *Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(t.page()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
