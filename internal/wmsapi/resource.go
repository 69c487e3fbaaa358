package wmsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/wmsconsole/wms-console/internal/domain"
)

// Resource is one CRUD endpoint family, such as /api/wms/warehouse. T is the
// entity and P its list parameters.
type Resource[T any, P any] struct {
	client *Client
	name   string
}

func newResource[T any, P any](c *Client, name string) *Resource[T, P] {
	return &Resource[T, P]{client: c, name: name}
}

// Name is the path segment of the resource.
func (r *Resource[T, P]) Name() string { return r.name }

func (r *Resource[T, P]) op(action string) string { return r.name + " " + action }

// List returns one page of records matching params.
func (r *Resource[T, P]) List(ctx context.Context, params P) (*domain.PageResult[T], error) {
	query, err := domain.EncodeQuery(params)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, query)
}

func (r *Resource[T, P]) list(ctx context.Context, query map[string]string) (*domain.PageResult[T], error) {
	out := new(domain.PageResult[T])
	if err := r.client.call(ctx, r.op("list"), http.MethodGet, resourcePath(r.name, "list"), query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListNoPage returns every record matching params.
func (r *Resource[T, P]) ListNoPage(ctx context.Context, params P) ([]T, error) {
	query, err := domain.EncodeQuery(params)
	if err != nil {
		return nil, err
	}
	out := new(domain.DataResult[[]T])
	if err := r.client.call(ctx, r.op("list all"), http.MethodGet, resourcePath(r.name, "listNoPage"), query, nil, out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Get fetches one record. A null payload is reported as ErrNotFound.
func (r *Resource[T, P]) Get(ctx context.Context, id domain.ID) (*T, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%s: id is required", r.op("get"))
	}
	out := new(domain.DataResult[*T])
	if err := r.client.call(ctx, r.op("get"), http.MethodGet, resourcePath(r.name, url.PathEscape(id.String())), nil, nil, out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("%s %s: %w", r.name, id, ErrNotFound)
	}
	return out.Data, nil
}

// Add validates and creates a record.
func (r *Resource[T, P]) Add(ctx context.Context, entity *T) error {
	return r.write(ctx, "add", http.MethodPost, resourcePath(r.name), entity)
}

// Update validates and saves a record.
func (r *Resource[T, P]) Update(ctx context.Context, entity *T) error {
	return r.write(ctx, "update", http.MethodPut, resourcePath(r.name), entity)
}

func (r *Resource[T, P]) write(ctx context.Context, action, method, path string, entity any) error {
	if err := domain.Validate(entity); err != nil {
		return fmt.Errorf("%s: %w", r.op(action), err)
	}
	return r.client.call(ctx, r.op(action), method, path, nil, entity, new(domain.Result))
}

// Delete removes the records with the given ids in one call.
func (r *Resource[T, P]) Delete(ctx context.Context, ids ...domain.ID) error {
	if len(ids) == 0 {
		return fmt.Errorf("%s: at least one id is required", r.op("delete"))
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			return fmt.Errorf("%s: empty id", r.op("delete"))
		}
		parts = append(parts, url.PathEscape(id.String()))
	}
	return r.client.call(ctx, r.op("delete"), http.MethodDelete, resourcePath(r.name, strings.Join(parts, ",")), nil, nil, new(domain.Result))
}

// Export streams the spreadsheet of the records matching params into w and
// returns the number of bytes written.
func (r *Resource[T, P]) Export(ctx context.Context, params P, w io.Writer) (int64, error) {
	query, err := domain.EncodeQuery(params)
	if err != nil {
		return 0, err
	}
	return r.export(ctx, query, w)
}

func (r *Resource[T, P]) export(ctx context.Context, form map[string]string, w io.Writer) (int64, error) {
	op := r.op("export")
	resp, err := r.client.request(ctx).
		SetFormData(form).
		SetDoNotParseResponse(true).
		Post(resourcePath(r.name, "export"))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	body := resp.RawBody()
	defer body.Close()

	// Failures come back as a JSON envelope, sometimes with status 200.
	if resp.StatusCode() >= http.StatusBadRequest || strings.Contains(resp.Header().Get("Content-Type"), "json") {
		data, _ := io.ReadAll(io.LimitReader(body, 64<<10))
		var res domain.Result
		_ = json.Unmarshal(data, &res)
		return 0, &APIError{Op: op, Status: resp.StatusCode(), Code: res.Code, Msg: res.Msg}
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("%s: copy body: %w", op, err)
	}
	r.client.logger.Debug("export written", zap.String("resource", r.name), zap.Int64("bytes", n))
	return n, nil
}

// listByOrder fetches the lines of one order from <name>/list/{orderId}.
func (r *Resource[T, P]) listByOrder(ctx context.Context, orderID domain.ID) ([]T, error) {
	if orderID.IsZero() {
		return nil, fmt.Errorf("%s: order id is required", r.op("list by order"))
	}
	out := new(domain.DataResult[[]T])
	path := resourcePath(r.name, "list", url.PathEscape(orderID.String()))
	if err := r.client.call(ctx, r.op("list by order"), http.MethodGet, path, nil, nil, out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListRaw is List with pre-encoded query pairs and untyped rows.
func (r *Resource[T, P]) ListRaw(ctx context.Context, query map[string]string) (int64, any, error) {
	page, err := r.list(ctx, query)
	if err != nil {
		return 0, nil, err
	}
	rows := page.Rows
	if rows == nil {
		rows = []T{}
	}
	return page.Total, rows, nil
}

// GetRaw is Get returning the record as a one-element slice for rendering.
func (r *Resource[T, P]) GetRaw(ctx context.Context, id domain.ID) (any, error) {
	entity, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return []T{*entity}, nil
}

// ExportRaw is Export with pre-encoded form fields.
func (r *Resource[T, P]) ExportRaw(ctx context.Context, form map[string]string, w io.Writer) (int64, error) {
	return r.export(ctx, form, w)
}
