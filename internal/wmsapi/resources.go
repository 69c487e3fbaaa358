package wmsapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/wmsconsole/wms-console/internal/domain"
)

// Resource names, as they appear in the URL.
const (
	NameWarehouse           = "warehouse"
	NameArea                = "area"
	NameItemBrand           = "itemBrand"
	NameItemCategory        = "itemCategory"
	NameItem                = "item"
	NameItemSku             = "itemSku"
	NameMerchant            = "merchant"
	NameInventory           = "inventory"
	NameInventoryDetail     = "inventoryDetail"
	NameInventoryHistory    = "inventoryHistory"
	NameReceiptOrder        = "receiptOrder"
	NameReceiptOrderDetail  = "receiptOrderDetail"
	NameShipmentOrder       = "shipmentOrder"
	NameShipmentOrderDetail = "shipmentOrderDetail"
	NameMovementOrder       = "movementOrder"
	NameMovementOrderDetail = "movementOrderDetail"
	NameCheckOrder          = "checkOrder"
	NameCheckOrderDetail    = "checkOrderDetail"
)

// Warehouses is the warehouse resource.
type Warehouses struct {
	*Resource[domain.Warehouse, domain.WarehouseListParams]
}

func (c *Client) Warehouses() Warehouses {
	return Warehouses{newResource[domain.Warehouse, domain.WarehouseListParams](c, NameWarehouse)}
}

// UpdateOrderNum saves the display order of warehouses.
func (r Warehouses) UpdateOrderNum(ctx context.Context, nodes []domain.OrderNum) error {
	return updateOrderNum(ctx, r.client, r.name, nodes)
}

func (c *Client) Areas() *Resource[domain.Area, domain.AreaListParams] {
	return newResource[domain.Area, domain.AreaListParams](c, NameArea)
}

func (c *Client) ItemBrands() *Resource[domain.ItemBrand, domain.ItemBrandListParams] {
	return newResource[domain.ItemBrand, domain.ItemBrandListParams](c, NameItemBrand)
}

// ItemCategories is the category tree resource.
type ItemCategories struct {
	*Resource[domain.ItemCategory, domain.ItemCategoryListParams]
}

func (c *Client) ItemCategories() ItemCategories {
	return ItemCategories{newResource[domain.ItemCategory, domain.ItemCategoryListParams](c, NameItemCategory)}
}

// TreeSelect returns the category tree for pickers.
func (r ItemCategories) TreeSelect(ctx context.Context, params domain.ItemCategoryListParams) ([]domain.TreeNode, error) {
	query, err := domain.EncodeQuery(params)
	if err != nil {
		return nil, err
	}
	out := new(domain.DataResult[[]domain.TreeNode])
	if err := r.client.call(ctx, r.op("tree"), http.MethodGet, resourcePath(r.name, "treeselect"), query, nil, out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpdateOrderNum saves the display order of categories.
func (r ItemCategories) UpdateOrderNum(ctx context.Context, nodes []domain.OrderNum) error {
	return updateOrderNum(ctx, r.client, r.name, nodes)
}

func updateOrderNum(ctx context.Context, c *Client, name string, nodes []domain.OrderNum) error {
	op := name + " reorder"
	if len(nodes) == 0 {
		return fmt.Errorf("%s: nothing to reorder", op)
	}
	return c.call(ctx, op, http.MethodPost, resourcePath(name, "update", "orderNum"), nil, nodes, new(domain.Result))
}

func (c *Client) Items() *Resource[domain.Item, domain.ItemListParams] {
	return newResource[domain.Item, domain.ItemListParams](c, NameItem)
}

// ItemSkus is the SKU resource.
type ItemSkus struct {
	*Resource[domain.ItemSku, domain.ItemSkuListParams]
}

func (c *Client) ItemSkus() ItemSkus {
	return ItemSkus{newResource[domain.ItemSku, domain.ItemSkuListParams](c, NameItemSku)}
}

// SelectList is the paged SKU picker, with item fields joined in.
func (r ItemSkus) SelectList(ctx context.Context, params domain.ItemSkuListParams) (*domain.PageResult[domain.ItemSku], error) {
	query, err := domain.EncodeQuery(params)
	if err != nil {
		return nil, err
	}
	out := new(domain.PageResult[domain.ItemSku])
	if err := r.client.call(ctx, r.op("select"), http.MethodGet, resourcePath(r.name, "selectList"), query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Merchants() *Resource[domain.Merchant, domain.MerchantListParams] {
	return newResource[domain.Merchant, domain.MerchantListParams](c, NameMerchant)
}

// Inventories is the on-hand stock resource.
type Inventories struct {
	*Resource[domain.Inventory, domain.InventoryListParams]
}

func (c *Client) Inventories() Inventories {
	return Inventories{newResource[domain.Inventory, domain.InventoryListParams](c, NameInventory)}
}

// BoardList returns stock aggregated by warehouse, area or item.
func (r Inventories) BoardList(ctx context.Context, board domain.BoardType, params domain.InventoryListParams) (*domain.PageResult[domain.Inventory], error) {
	if _, err := domain.ParseBoardType(string(board)); err != nil {
		return nil, err
	}
	query, err := domain.EncodeQuery(params)
	if err != nil {
		return nil, err
	}
	out := new(domain.PageResult[domain.Inventory])
	if err := r.client.call(ctx, r.op("board"), http.MethodGet, resourcePath(r.name, "boardList", string(board)), query, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InventoryDetails() *Resource[domain.InventoryDetail, domain.InventoryDetailListParams] {
	return newResource[domain.InventoryDetail, domain.InventoryDetailListParams](c, NameInventoryDetail)
}

func (c *Client) InventoryHistories() *Resource[domain.InventoryHistory, domain.InventoryHistoryListParams] {
	return newResource[domain.InventoryHistory, domain.InventoryHistoryListParams](c, NameInventoryHistory)
}

// OrderDetails is the resource of one order kind's lines.
type OrderDetails[T any, P any] struct {
	*Resource[T, P]
}

// ListByOrder returns every line of the order.
func (r OrderDetails[T, P]) ListByOrder(ctx context.Context, orderID domain.ID) ([]T, error) {
	return r.listByOrder(ctx, orderID)
}

// ReceiptOrders is the receipt order resource.
type ReceiptOrders struct {
	*Resource[domain.ReceiptOrder, domain.ReceiptOrderListParams]
}

func (c *Client) ReceiptOrders() ReceiptOrders {
	return ReceiptOrders{newResource[domain.ReceiptOrder, domain.ReceiptOrderListParams](c, NameReceiptOrder)}
}

func (c *Client) ReceiptOrderDetails() OrderDetails[domain.ReceiptOrderDetail, domain.ReceiptOrderDetailListParams] {
	return OrderDetails[domain.ReceiptOrderDetail, domain.ReceiptOrderDetailListParams]{
		newResource[domain.ReceiptOrderDetail, domain.ReceiptOrderDetailListParams](c, NameReceiptOrderDetail),
	}
}

// Warehousing recomputes the totals and books the receipt into stock.
func (r ReceiptOrders) Warehousing(ctx context.Context, order *domain.ReceiptOrder) error {
	if err := order.CheckEditable(); err != nil {
		return err
	}
	order.RecalculateTotals()
	return r.write(ctx, "warehousing", http.MethodPost, resourcePath(r.name, "warehousing"), order)
}

// GenerateNo asks the backend for a receipt number. Older backends put the
// number in msg rather than data.
func (r ReceiptOrders) GenerateNo(ctx context.Context) (string, error) {
	out := new(domain.DataResult[string])
	if err := r.client.call(ctx, r.op("generate no"), http.MethodGet, resourcePath(r.name, "generate", "no"), nil, nil, out); err != nil {
		return "", err
	}
	if no := strings.TrimSpace(out.Data); no != "" {
		return no, nil
	}
	return strings.TrimSpace(out.Msg), nil
}

// ShipmentOrders is the shipment order resource.
type ShipmentOrders struct {
	*Resource[domain.ShipmentOrder, domain.ShipmentOrderListParams]
}

func (c *Client) ShipmentOrders() ShipmentOrders {
	return ShipmentOrders{newResource[domain.ShipmentOrder, domain.ShipmentOrderListParams](c, NameShipmentOrder)}
}

func (c *Client) ShipmentOrderDetails() OrderDetails[domain.ShipmentOrderDetail, domain.ShipmentOrderDetailListParams] {
	return OrderDetails[domain.ShipmentOrderDetail, domain.ShipmentOrderDetailListParams]{
		newResource[domain.ShipmentOrderDetail, domain.ShipmentOrderDetailListParams](c, NameShipmentOrderDetail),
	}
}

// Ship recomputes the totals, checks stock and ships the order.
func (r ShipmentOrders) Ship(ctx context.Context, order *domain.ShipmentOrder) error {
	if err := order.CheckEditable(); err != nil {
		return err
	}
	order.RecalculateTotals()
	if err := order.CheckStock(); err != nil {
		return err
	}
	return r.write(ctx, "ship", http.MethodPost, resourcePath(r.name, "shipment"), order)
}

// MovementOrders is the movement order resource.
type MovementOrders struct {
	*Resource[domain.MovementOrder, domain.MovementOrderListParams]
}

func (c *Client) MovementOrders() MovementOrders {
	return MovementOrders{newResource[domain.MovementOrder, domain.MovementOrderListParams](c, NameMovementOrder)}
}

func (c *Client) MovementOrderDetails() OrderDetails[domain.MovementOrderDetail, domain.MovementOrderDetailListParams] {
	return OrderDetails[domain.MovementOrderDetail, domain.MovementOrderDetailListParams]{
		newResource[domain.MovementOrderDetail, domain.MovementOrderDetailListParams](c, NameMovementOrderDetail),
	}
}

// Move checks the route and stock and executes the movement.
func (r MovementOrders) Move(ctx context.Context, order *domain.MovementOrder) error {
	if err := order.CheckEditable(); err != nil {
		return err
	}
	if err := order.CheckRoute(); err != nil {
		return err
	}
	order.RecalculateTotals()
	if err := order.CheckStock(); err != nil {
		return err
	}
	return r.write(ctx, "move", http.MethodPost, resourcePath(r.name, "move"), order)
}

// CheckOrders is the stock count resource.
type CheckOrders struct {
	*Resource[domain.CheckOrder, domain.CheckOrderListParams]
}

func (c *Client) CheckOrders() CheckOrders {
	return CheckOrders{newResource[domain.CheckOrder, domain.CheckOrderListParams](c, NameCheckOrder)}
}

func (c *Client) CheckOrderDetails() OrderDetails[domain.CheckOrderDetail, domain.CheckOrderDetailListParams] {
	return OrderDetails[domain.CheckOrderDetail, domain.CheckOrderDetailListParams]{
		newResource[domain.CheckOrderDetail, domain.CheckOrderDetailListParams](c, NameCheckOrderDetail),
	}
}

// Check recomputes profit and loss and posts the count.
func (r CheckOrders) Check(ctx context.Context, order *domain.CheckOrder) error {
	if err := order.CheckEditable(); err != nil {
		return err
	}
	order.RecalculateTotals()
	return r.write(ctx, "check", http.MethodPost, resourcePath(r.name, "check"), order)
}
