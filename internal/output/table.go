package output

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Table is a page of records prepared for rendering. Columns and Rows hold
// the flattened scalar view used by the table and csv formatters; Records
// keeps the original values for the structured formats.
type Table struct {
	Title   string
	Total   int64
	Columns []string
	Rows    [][]string
	Records any
}

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textType     = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// NewTable flattens a slice of records. Struct fields are named after their
// JSON tags, embedded structs are inlined, and nested collections are left
// to the structured formats.
func NewTable(title string, total int64, records any) (*Table, error) {
	t := &Table{Title: title, Total: total, Records: records}
	if records == nil {
		return t, nil
	}
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("table records must be a slice, got %T", records)
	}

	elem := v.Type().Elem()
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	switch {
	case elem.Kind() == reflect.Struct && !isScalar(elem):
		cols := structColumns(elem, nil)
		for _, c := range cols {
			t.Columns = append(t.Columns, c.name)
		}
		for i := 0; i < v.Len(); i++ {
			row := indirect(v.Index(i))
			cells := make([]string, len(cols))
			if row.IsValid() {
				for j, c := range cols {
					cells[j] = fieldCell(row, c.index)
				}
			}
			t.Rows = append(t.Rows, cells)
		}
	case elem.Kind() == reflect.Map && elem.Key().Kind() == reflect.String:
		t.Columns = mapColumns(v)
		for i := 0; i < v.Len(); i++ {
			m := indirect(v.Index(i))
			cells := make([]string, len(t.Columns))
			for j, name := range t.Columns {
				if m.IsValid() {
					cells[j] = cell(m.MapIndex(reflect.ValueOf(name)))
				}
			}
			t.Rows = append(t.Rows, cells)
		}
	default:
		t.Columns = []string{"value"}
		for i := 0; i < v.Len(); i++ {
			t.Rows = append(t.Rows, []string{cell(v.Index(i))})
		}
	}
	if t.Total == 0 {
		t.Total = int64(len(t.Rows))
	}
	return t, nil
}

type column struct {
	name  string
	index []int
}

func structColumns(typ reflect.Type, parent []int) []column {
	var cols []column
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		index := append(append([]int(nil), parent...), i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct && !isScalar(f.Type) {
			cols = append(cols, structColumns(f.Type, index)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if !isScalar(f.Type) {
			continue
		}
		if name == "" {
			name = f.Name
		}
		cols = append(cols, column{name: name, index: index})
	}
	return cols
}

func mapColumns(v reflect.Value) []string {
	seen := map[string]bool{}
	var names []string
	for i := 0; i < v.Len(); i++ {
		m := indirect(v.Index(i))
		if !m.IsValid() {
			continue
		}
		for _, k := range m.MapKeys() {
			if !seen[k.String()] {
				seen[k.String()] = true
				names = append(names, k.String())
			}
		}
	}
	sort.Strings(names)
	return names
}

func isScalar(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Implements(stringerType) || t.Implements(textType) ||
		reflect.PointerTo(t).Implements(textType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func fieldCell(row reflect.Value, index []int) string {
	f, err := row.FieldByIndexErr(index)
	if err != nil {
		return ""
	}
	return cell(f)
}

func cell(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return ""
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case fmt.Stringer:
			return x.String()
		case encoding.TextMarshaler:
			b, err := x.MarshalText()
			if err == nil {
				return string(b)
			}
		}
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return boolToString(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intToString(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintToString(v.Uint())
	case reflect.Float32, reflect.Float64:
		return floatToString(v.Float())
	}
	return fmt.Sprint(v.Interface())
}
