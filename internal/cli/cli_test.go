package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/wmsconsole/wms-console/internal/domain"
	"github.com/wmsconsole/wms-console/internal/wmsapi"
	"github.com/wmsconsole/wms-console/internal/wmsapi/wmsapitest"
	"github.com/wmsconsole/wms-console/pkg/doccode"
)

func fixedGenerator() *doccode.Generator {
	return doccode.New(
		doccode.WithClock(doccode.ClockFunc(func() time.Time {
			return time.Date(2024, time.October, 28, 9, 30, 0, 0, time.Local)
		})),
		doccode.WithSource(doccode.SourceFunc(func(int) int { return 42 })),
	)
}

func writeConfig(t *testing.T, srv *wmsapitest.Server, format string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wmsctl.yaml")
	body := fmt.Sprintf("api:\n  base_url: %s\n  token: %s\n  timeout: 5s\noutput:\n  format: %s\n", srv.URL, srv.Token, format)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(WithLogger(zaptest.NewLogger(t)), WithGenerator(fixedGenerator()))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newBackend(t *testing.T) *wmsapitest.Server {
	srv := wmsapitest.New(t)
	srv.Token = "cli-token"
	return srv
}

func TestCodeCommand(t *testing.T) {
	testCases := []struct {
		desc    string
		args    []string
		want    string
		wantErr string
	}{
		{desc: "plain", args: []string{"code"}, want: "10280042\n"},
		{desc: "receipt", args: []string{"code", "receipt"}, want: "RK10280042\n"},
		{desc: "check upper case", args: []string{"code", "CHECK"}, want: "PK10280042\n"},
		{desc: "count", args: []string{"code", "-n", "2", "shipment"}, want: "CK10280042\nCK10280042\n"},
		{desc: "unknown kind", args: []string{"code", "pallet"}, wantErr: "unknown document kind"},
		{desc: "bad count", args: []string{"code", "-n", "0"}, wantErr: "count must be positive"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := execute(t, tc.args...)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSubCommand(t *testing.T) {
	testCases := []struct {
		desc string
		args []string
		want string
	}{
		{desc: "classic drift", args: []string{"sub", "0.3", "0.1"}, want: "0.2\n"},
		{desc: "integers", args: []string{"sub", "5", "3"}, want: "2\n"},
		{desc: "negative operand", args: []string{"sub", "--", "-1.5", "0.25"}, want: "-1.75\n"},
		{desc: "mixed precision", args: []string{"sub", "1.005", "0.1"}, want: "0.905\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := execute(t, "sub", "abc", "1")
	assert.ErrorContains(t, err, `invalid num1 "abc"`)
}

func TestFooterAndTopBar(t *testing.T) {
	out, err := execute(t, "footer", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "key,title,href,blankTarget\n")
	assert.Contains(t, out, "github,")
	assert.Contains(t, out, "https://weilai.com")

	out, err = execute(t, "topbar", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "home"`)
	assert.Contains(t, out, `"total": 3`)
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "footer", "--format", "xml")
	assert.ErrorContains(t, err, "xml")
}

func TestRootRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "footer")
	assert.ErrorContains(t, err, "failed to read file")
}

func TestResourcesCommand(t *testing.T) {
	out, err := execute(t, "resources")
	require.NoError(t, err)
	assert.Contains(t, out, "receiptOrderDetail\n")
	assert.Len(t, bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n")), len(wmsapi.ResourceNames()))
}

func TestListCommand(t *testing.T) {
	srv := newBackend(t)
	srv.Seed(wmsapi.NameWarehouse,
		domain.Warehouse{WarehouseCode: "WH-SH", WarehouseName: "Shanghai"},
		domain.Warehouse{WarehouseCode: "WH-BJ", WarehouseName: "Beijing"},
	)
	cfg := writeConfig(t, srv, "csv")

	out, err := execute(t, "--config", cfg, "list", "warehouse", "--param", "warehouseCode=WH-BJ", "--size", "5", "--page", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Beijing")
	assert.NotContains(t, out, "Shanghai")

	req := srv.LastRequest()
	assert.Equal(t, "/api/wms/warehouse/list", req.Path)
	assert.Equal(t, "5", req.Query.Get("pageSize"))
	assert.Equal(t, "1", req.Query.Get("current"))
	assert.Equal(t, "Bearer cli-token", req.Header.Get("Authorization"))
}

func TestListCommandUnknownResource(t *testing.T) {
	srv := newBackend(t)
	_, err := execute(t, "--config", writeConfig(t, srv, "table"), "list", "pallet")
	assert.ErrorIs(t, err, wmsapi.ErrUnknownResource)
	assert.Empty(t, srv.Requests())
}

func TestGetCommand(t *testing.T) {
	srv := newBackend(t)
	ids := srv.Seed(wmsapi.NameItemBrand, domain.ItemBrand{BrandName: "Acme"})
	cfg := writeConfig(t, srv, "json")

	out, err := execute(t, "--config", cfg, "get", "itemBrand", ids[0])
	require.NoError(t, err)
	assert.Contains(t, out, `"brandName": "Acme"`)

	_, err = execute(t, "--config", cfg, "get", "itemBrand", "404")
	assert.ErrorIs(t, err, wmsapi.ErrNotFound)
}

func TestDeleteCommand(t *testing.T) {
	srv := newBackend(t)
	ids := srv.Seed(wmsapi.NameMerchant,
		domain.Merchant{MerchantName: "a"},
		domain.Merchant{MerchantName: "b"},
		domain.Merchant{MerchantName: "c"},
	)
	cfg := writeConfig(t, srv, "table")

	out, err := execute(t, "--config", cfg, "delete", "merchant", ids[0]+","+ids[1], ids[2])
	require.NoError(t, err)
	assert.Equal(t, "deleted 3 merchant record(s)\n", out)
	assert.Empty(t, srv.Records(wmsapi.NameMerchant))
	assert.Equal(t, "/api/wms/merchant/"+ids[0]+","+ids[1]+","+ids[2], srv.LastRequest().Path)
}

func TestExportCommand(t *testing.T) {
	srv := newBackend(t)
	srv.SetExport(wmsapi.NameInventory, []byte("xlsx-bytes"))
	cfg := writeConfig(t, srv, "table")
	dest := filepath.Join(t.TempDir(), "inventory.xlsx")

	out, err := execute(t, "--config", cfg, "export", "inventory", "-o", dest, "-p", "warehouseId=1")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("wrote 10 bytes to %s\n", dest), out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(data))
	assert.Contains(t, string(srv.LastRequest().Body), "warehouseId=1")
}

func TestExportCommandFailureRemovesFile(t *testing.T) {
	srv := newBackend(t)
	srv.Fail("POST", "/api/wms/inventory/export", 500, 500, "export failed")
	cfg := writeConfig(t, srv, "table")
	dest := filepath.Join(t.TempDir(), "inventory.xlsx")

	_, err := execute(t, "--config", cfg, "export", "inventory", "-o", dest)
	assert.ErrorContains(t, err, "export failed")
	assert.NoFileExists(t, dest)
}
