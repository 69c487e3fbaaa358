package wmsapi

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wmsconsole/wms-console/internal/domain"
)

// Generic is the untyped view of a resource, used where the resource is
// chosen at run time.
type Generic interface {
	Name() string
	ListRaw(ctx context.Context, query map[string]string) (total int64, rows any, err error)
	GetRaw(ctx context.Context, id domain.ID) (any, error)
	Delete(ctx context.Context, ids ...domain.ID) error
	ExportRaw(ctx context.Context, form map[string]string, w io.Writer) (int64, error)
}

var registry = map[string]func(*Client) Generic{
	NameWarehouse:           func(c *Client) Generic { return c.Warehouses() },
	NameArea:                func(c *Client) Generic { return c.Areas() },
	NameItemBrand:           func(c *Client) Generic { return c.ItemBrands() },
	NameItemCategory:        func(c *Client) Generic { return c.ItemCategories() },
	NameItem:                func(c *Client) Generic { return c.Items() },
	NameItemSku:             func(c *Client) Generic { return c.ItemSkus() },
	NameMerchant:            func(c *Client) Generic { return c.Merchants() },
	NameInventory:           func(c *Client) Generic { return c.Inventories() },
	NameInventoryDetail:     func(c *Client) Generic { return c.InventoryDetails() },
	NameInventoryHistory:    func(c *Client) Generic { return c.InventoryHistories() },
	NameReceiptOrder:        func(c *Client) Generic { return c.ReceiptOrders() },
	NameReceiptOrderDetail:  func(c *Client) Generic { return c.ReceiptOrderDetails() },
	NameShipmentOrder:       func(c *Client) Generic { return c.ShipmentOrders() },
	NameShipmentOrderDetail: func(c *Client) Generic { return c.ShipmentOrderDetails() },
	NameMovementOrder:       func(c *Client) Generic { return c.MovementOrders() },
	NameMovementOrderDetail: func(c *Client) Generic { return c.MovementOrderDetails() },
	NameCheckOrder:          func(c *Client) Generic { return c.CheckOrders() },
	NameCheckOrderDetail:    func(c *Client) Generic { return c.CheckOrderDetails() },
}

// Resource looks a resource up by its URL name, case-insensitively.
func (c *Client) Resource(name string) (Generic, error) {
	want := strings.TrimSpace(name)
	for key, build := range registry {
		if strings.EqualFold(key, want) {
			return build(c), nil
		}
	}
	return nil, fmt.Errorf("%w %q. Try one of: %s", ErrUnknownResource, name, strings.Join(ResourceNames(), ", "))
}

// ResourceNames lists the known resource names in sorted order.
func ResourceNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
