package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// PageQuery selects one page of a list endpoint. Zero values are omitted and
// the backend applies its defaults.
type PageQuery struct {
	PageSize int `json:"pageSize,omitempty" yaml:"page_size,omitempty"`
	Current  int `json:"current,omitempty" yaml:"current,omitempty"`
}

// AuditQuery holds the filters every list endpoint accepts.
type AuditQuery struct {
	SearchValue string `json:"searchValue,omitempty" yaml:"search_value,omitempty"`
	CreateBy    string `json:"createBy,omitempty" yaml:"create_by,omitempty"`
	CreateTime  string `json:"createTime,omitempty" yaml:"create_time,omitempty"`
	UpdateBy    string `json:"updateBy,omitempty" yaml:"update_by,omitempty"`
	UpdateTime  string `json:"updateTime,omitempty" yaml:"update_time,omitempty"`
}

var queryJSON = jsoniter.Config{
	EscapeHTML:             false,
	UseNumber:              true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// EncodeQuery flattens a list-params struct into query-string pairs keyed by
// the JSON field names. Empty fields (omitempty) and nulls are left out.
// Nested values are sent as their JSON text.
func EncodeQuery(params any) (map[string]string, error) {
	out := map[string]string{}
	if params == nil {
		return out, nil
	}
	raw, err := queryJSON.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode query params: %w", err)
	}
	var fields map[string]any
	if err := queryJSON.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("query params must encode to an object: %w", err)
	}
	for k, v := range fields {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		case bool:
			out[k] = strconv.FormatBool(val)
		case json.Number:
			out[k] = val.String()
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			nested, err := queryJSON.MarshalToString(val)
			if err != nil {
				return nil, fmt.Errorf("encode query param %s: %w", k, err)
			}
			out[k] = nested
		}
	}
	return out, nil
}
