package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmsconsole/wms-console/internal/domain"
)

type skuRow struct {
	ID     domain.ID          `json:"id" yaml:"id"`
	Name   string             `json:"skuName" yaml:"sku_name"`
	Price  decimal.Decimal    `json:"price" yaml:"price"`
	Remain *decimal.Decimal   `json:"remain,omitempty" yaml:"remain,omitempty"`
	Tags   []string           `json:"tags" yaml:"tags"`
	Status domain.OrderStatus `json:"status" yaml:"status"`
	Hidden string             `json:"-" yaml:"-"`
	domain.BaseEntity         `yaml:",inline"`
}

func buildTestRows() []skuRow {
	created, _ := domain.ParseDateTime("2024-10-28 09:15:02")
	remain := decimal.RequireFromString("3.5")
	return []skuRow{
		{ID: "1", Name: "red", Price: decimal.RequireFromString("12.50"), Tags: []string{"a"}, BaseEntity: domain.BaseEntity{CreateBy: "admin", CreateTime: created}},
		{ID: "2", Name: "blue", Price: decimal.NewFromInt(8), Remain: &remain, Status: domain.StatusFinished},
	}
}

func buildSmallTable() *Table {
	return &Table{
		Title:   "warehouse",
		Total:   2,
		Columns: []string{"id", "name"},
		Rows:    [][]string{{"1", "Shanghai"}, {"22", "BJ"}},
		Records: []map[string]string{{"id": "1", "name": "Shanghai"}, {"id": "22", "name": "BJ"}},
	}
}

func TestNewTable_Structs(t *testing.T) {
	table, err := NewTable("itemSku", 7, buildTestRows())
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "skuName", "price", "remain", "status", "createBy", "createTime", "updateBy", "updateTime"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "red", "12.5", "", "pending", "admin", "2024-10-28 09:15:02", "", ""}, table.Rows[0])
	assert.Equal(t, []string{"2", "blue", "8", "3.5", "finished", "", "", "", ""}, table.Rows[1])
	assert.Equal(t, int64(7), table.Total)
}

func TestNewTable_Pointers(t *testing.T) {
	rows := buildTestRows()
	table, err := NewTable("itemSku", 0, []*skuRow{&rows[1], nil})
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "blue", table.Rows[0][1])
	assert.Equal(t, make([]string, len(table.Columns)), table.Rows[1], "nil record renders blank")
	assert.Equal(t, int64(2), table.Total, "total falls back to the row count")
}

func TestNewTable_Maps(t *testing.T) {
	table, err := NewTable("raw", 0, []map[string]any{{"b": 1, "a": "x"}, {"c": true}})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Columns)
	assert.Equal(t, [][]string{{"x", "1", ""}, {"", "", "true"}}, table.Rows)
}

func TestNewTable_Scalars(t *testing.T) {
	table, err := NewTable("codes", 0, []string{"RK10280042", "CK10280042"})
	require.NoError(t, err)

	assert.Equal(t, []string{"value"}, table.Columns)
	assert.Equal(t, [][]string{{"RK10280042"}, {"CK10280042"}}, table.Rows)
}

func TestNewTable_NotASlice(t *testing.T) {
	_, err := NewTable("bad", 0, skuRow{})
	assert.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	out, err := TableFormatter{}.Format(buildSmallTable())
	require.NoError(t, err)
	assert.Equal(t, "id  name\n1   Shanghai\n22  BJ\ntotal: 2\n", string(out))
}

func TestTableFormatter_Empty(t *testing.T) {
	out, err := TableFormatter{}.Format(&Table{})
	require.NoError(t, err)
	assert.Equal(t, "total: 0\n", string(out))
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildSmallTable())
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,Shanghai\n22,BJ\n", string(out))
}

func TestJSONFormatter(t *testing.T) {
	table, err := NewTable("itemSku", 2, buildTestRows()[1:])
	require.NoError(t, err)

	out, err := JSONFormatter{}.Format(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"total": 2,
		"rows": [{
			"id": "2", "skuName": "blue", "price": "8", "remain": "3.5", "tags": null,
			"status": 1, "createTime": null, "updateTime": null
		}]
	}`, string(out))
}

func TestJSONFormatter_NoRecords(t *testing.T) {
	out, err := JSONFormatter{}.Format(&Table{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":0,"rows":[]}`, string(out))
}

func TestYAMLFormatter(t *testing.T) {
	table, err := NewTable("itemSku", 0, buildTestRows()[:1])
	require.NoError(t, err)

	out, err := YAMLFormatter{}.Format(table)
	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "total: 1\nrows:\n"), content)
	assert.Contains(t, content, "sku_name: red")
	assert.Contains(t, content, "price: \"12.5\"")
	assert.Contains(t, content, "create_time: \"2024-10-28 09:15:02\"")
}

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "table", "yaml"}, AvailableFormatterNames())
	assert.Equal(t, []string{"console", "text", "txt", "yml"}, AvailableFormatAliases())

	testCases := []struct {
		name     string
		expected string
	}{
		{name: "table", expected: "table"},
		{name: " TEXT ", expected: "table"},
		{name: "console", expected: "table"},
		{name: "yml", expected: "yaml"},
		{name: "JSON", expected: "json"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := GetFormatterByName(tc.name)
			require.NotNil(t, f)
			assert.Equal(t, tc.expected, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("xml"))
	_, err := NewFormatter("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorContains(t, err, "aliases: console, text, txt, yml")
}

func TestRender(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, "csv", buildSmallTable()))
	assert.Equal(t, "id,name\n1,Shanghai\n22,BJ\n", buf.String())

	err := Render(buf, "html", buildSmallTable())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "count", F: func(t *Table) ([]byte, error) {
		return []byte(strings.Repeat("#", len(t.Rows))), nil
	}}
	out, err := f.Format(buildSmallTable())
	require.NoError(t, err)
	assert.Equal(t, "##", string(out))
	assert.Equal(t, "count", f.Name())
}

func TestWriteFormatted(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.UnixMilli(1730000000000) }
	t.Cleanup(func() { nowFunc = orig })

	assert.Equal(t, "receiptOrder_1730000000000.xlsx", TimestampedName("receiptOrder", "xlsx"))

	dir := t.TempDir()
	path, err := WriteFormatted(CSVFormatter{}, buildSmallTable(), dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "warehouse_1730000000000.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,Shanghai\n22,BJ\n", string(data))
}
