package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wmsconsole/wms-console/pkg/dateutil"
)

// ID is a backend identifier. The backend serializes 64-bit keys as JSON
// strings, but some endpoints still send plain numbers; both are accepted.
// The empty ID means "not assigned yet".
type ID string

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool { return id == "" }

func (id ID) String() string { return string(id) }

// MarshalJSON always writes the ID as a JSON string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(string(id))), nil
}

// UnmarshalJSON accepts a JSON string, an integer, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	default:
		if _, err := strconv.ParseInt(string(data), 10, 64); err != nil {
			return fmt.Errorf("invalid id %s: %w", data, err)
		}
		*id = ID(data)
		return nil
	}
}

// DateTime is a backend timestamp. It is written in the backend's
// "2006-01-02 15:04:05" layout and read from that layout, a bare date, or
// RFC 3339. Layouts without a zone are interpreted in local time.
type DateTime struct {
	time.Time
}

var dateTimeLayouts = []string{dateutil.Layout, dateutil.DateLayout, time.RFC3339Nano}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime { return DateTime{Time: t} }

// ParseDateTime parses s using the accepted layouts.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateTime{}, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid date time %q", s)
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateutil.Layout)
}

// MarshalJSON writes null for the zero value.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = DateTime{}
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date time %s: %w", data, err)
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText is used by the YAML and CSV renderers.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// BaseEntity carries the audit columns shared by every backend record.
type BaseEntity struct {
	CreateBy   string   `json:"createBy,omitempty" yaml:"create_by,omitempty"`
	CreateTime DateTime `json:"createTime" yaml:"create_time"`
	UpdateBy   string   `json:"updateBy,omitempty" yaml:"update_by,omitempty"`
	UpdateTime DateTime `json:"updateTime" yaml:"update_time"`
}
