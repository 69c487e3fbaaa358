package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wmsconsole/wms-console/pkg/dateutil"
)

// Inventory is the on-hand quantity of one SKU in one warehouse area.
type Inventory struct {
	ID           ID              `json:"id,omitempty" yaml:"id,omitempty"`
	SkuID        ID              `json:"skuId" yaml:"sku_id"`
	WarehouseID  ID              `json:"warehouseId" yaml:"warehouse_id"`
	AreaID       ID              `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity" yaml:"quantity"`
	Remark       string          `json:"remark,omitempty" yaml:"remark,omitempty"`
	MinQuantity  decimal.Decimal `json:"minQuantity" yaml:"min_quantity"`
	ItemName     string          `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode     string          `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	SkuName      string          `json:"skuName,omitempty" yaml:"sku_name,omitempty"`
	SkuCode      string          `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	ItemID       ID              `json:"itemId,omitempty" yaml:"item_id,omitempty"`
	ItemCategory ID              `json:"itemCategory,omitempty" yaml:"item_category,omitempty"`
	ItemSku      *ItemSku        `json:"itemSku,omitempty" yaml:"item_sku,omitempty"`
	BaseEntity   `yaml:",inline"`
}

// BelowMinimum reports whether the on-hand quantity fell under the configured
// safety stock. A zero minimum disables the check.
func (inv Inventory) BelowMinimum() bool {
	return inv.MinQuantity.IsPositive() && inv.Quantity.LessThan(inv.MinQuantity)
}

type InventoryListParams struct {
	PageQuery    `yaml:",inline"`
	AuditQuery   `yaml:",inline"`
	ID           ID     `json:"id,omitempty" yaml:"id,omitempty"`
	SkuID        ID     `json:"skuId,omitempty" yaml:"sku_id,omitempty"`
	WarehouseID  ID     `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID       ID     `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	MinQuantity  *int   `json:"minQuantity,omitempty" yaml:"min_quantity,omitempty"`
	ItemName     string `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode     string `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	SkuName      string `json:"skuName,omitempty" yaml:"sku_name,omitempty"`
	SkuCode      string `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	ItemID       ID     `json:"itemId,omitempty" yaml:"item_id,omitempty"`
	ItemCategory ID     `json:"itemCategory,omitempty" yaml:"item_category,omitempty"`
}

// BoardType selects the aggregation of the inventory board.
type BoardType string

const (
	BoardByWarehouse BoardType = "warehouse"
	BoardByArea      BoardType = "area"
	BoardByItem      BoardType = "item"
)

// ParseBoardType validates a board aggregation name.
func ParseBoardType(s string) (BoardType, error) {
	switch t := BoardType(strings.ToLower(strings.TrimSpace(s))); t {
	case BoardByWarehouse, BoardByArea, BoardByItem:
		return t, nil
	default:
		return "", fmt.Errorf("unknown inventory board type %q", s)
	}
}

// InventoryDetail is one received batch still held in stock.
type InventoryDetail struct {
	ID               ID              `json:"id,omitempty" yaml:"id,omitempty"`
	ReceiptOrderID   ID              `json:"receiptOrderId,omitempty" yaml:"receipt_order_id,omitempty"`
	ReceiptOrderType string          `json:"receiptOrderType,omitempty" yaml:"receipt_order_type,omitempty"`
	OrderNo          string          `json:"orderNo,omitempty" yaml:"order_no,omitempty"`
	Type             int             `json:"type" yaml:"type"`
	SkuID            ID              `json:"skuId" yaml:"sku_id"`
	WarehouseID      ID              `json:"warehouseId" yaml:"warehouse_id"`
	AreaID           ID              `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Quantity         decimal.Decimal `json:"quantity" yaml:"quantity"`
	BatchNo          string          `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	ProductionDate   DateTime        `json:"productionDate" yaml:"production_date"`
	ExpirationDate   DateTime        `json:"expirationDate" yaml:"expiration_date"`
	Amount           decimal.Decimal `json:"amount" yaml:"amount"`
	Remark           string          `json:"remark,omitempty" yaml:"remark,omitempty"`
	RemainQuantity   decimal.Decimal `json:"remainQuantity" yaml:"remain_quantity"`
	ShipmentQuantity decimal.Decimal `json:"shipmentQuantity" yaml:"shipment_quantity"`
	ItemName         string          `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode         string          `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	SkuName          string          `json:"skuName,omitempty" yaml:"sku_name,omitempty"`
	SkuCode          string          `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	ItemID           ID              `json:"itemId,omitempty" yaml:"item_id,omitempty"`
	DaysToExpires    *int            `json:"daysToExpires,omitempty" yaml:"days_to_expires,omitempty"`
	BaseEntity       `yaml:",inline"`
}

// DaysToExpire returns the calendar days left before the batch expires at
// atDate. ok is false when the batch carries no expiration date.
func (d InventoryDetail) DaysToExpire(atDate time.Time) (days int, ok bool) {
	if d.ExpirationDate.IsZero() {
		return 0, false
	}
	return dateutil.DaysToExpire(d.ExpirationDate.Time, atDate), true
}

// Expired reports whether the batch is past its expiration date at atDate.
func (d InventoryDetail) Expired(atDate time.Time) bool {
	days, ok := d.DaysToExpire(atDate)
	return ok && days < 0
}

type InventoryDetailListParams struct {
	PageQuery           `yaml:",inline"`
	AuditQuery          `yaml:",inline"`
	ID                  ID     `json:"id,omitempty" yaml:"id,omitempty"`
	ReceiptOrderID      ID     `json:"receiptOrderId,omitempty" yaml:"receipt_order_id,omitempty"`
	ReceiptOrderType    string `json:"receiptOrderType,omitempty" yaml:"receipt_order_type,omitempty"`
	OrderNo             string `json:"orderNo,omitempty" yaml:"order_no,omitempty"`
	Type                *int   `json:"type,omitempty" yaml:"type,omitempty"`
	SkuID               ID     `json:"skuId,omitempty" yaml:"sku_id,omitempty"`
	WarehouseID         ID     `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID              ID     `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	BatchNo             string `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	ItemName            string `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode            string `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	SkuName             string `json:"skuName,omitempty" yaml:"sku_name,omitempty"`
	SkuCode             string `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	ItemID              ID     `json:"itemId,omitempty" yaml:"item_id,omitempty"`
	CreateStartTime     string `json:"createStartTime,omitempty" yaml:"create_start_time,omitempty"`
	CreateEndTime       string `json:"createEndTime,omitempty" yaml:"create_end_time,omitempty"`
	DaysToExpires       *int   `json:"daysToExpires,omitempty" yaml:"days_to_expires,omitempty"`
	ExpirationStartTime string `json:"expirationStartTime,omitempty" yaml:"expiration_start_time,omitempty"`
	ExpirationEndTime   string `json:"expirationEndTime,omitempty" yaml:"expiration_end_time,omitempty"`
}

// CreatedBetween restricts the query to batches received in [from, to].
func (p *InventoryDetailListParams) CreatedBetween(from, to time.Time) {
	p.CreateStartTime, p.CreateEndTime = dateutil.DayRange(from, to)
}

// ExpiringBetween restricts the query to batches expiring in [from, to].
func (p *InventoryDetailListParams) ExpiringBetween(from, to time.Time) {
	p.ExpirationStartTime, p.ExpirationEndTime = dateutil.DayRange(from, to)
}

// InventoryHistory is one stock movement caused by an order.
type InventoryHistory struct {
	ID             ID              `json:"id,omitempty" yaml:"id,omitempty"`
	OrderID        ID              `json:"orderId" yaml:"order_id"`
	OrderNo        string          `json:"orderNo" yaml:"order_no"`
	OrderType      int             `json:"orderType" yaml:"order_type"`
	SkuID          ID              `json:"skuId" yaml:"sku_id"`
	BatchNo        string          `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	ProductionDate DateTime        `json:"productionDate" yaml:"production_date"`
	ExpirationDate DateTime        `json:"expirationDate" yaml:"expiration_date"`
	Amount         decimal.Decimal `json:"amount" yaml:"amount"`
	Quantity       decimal.Decimal `json:"quantity" yaml:"quantity"`
	Remark         string          `json:"remark,omitempty" yaml:"remark,omitempty"`
	WarehouseID    ID              `json:"warehouseId" yaml:"warehouse_id"`
	AreaID         ID              `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	ItemName       string          `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode       string          `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	SkuName        string          `json:"skuName,omitempty" yaml:"sku_name,omitempty"`
	SkuCode        string          `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	BaseEntity     `yaml:",inline"`
}

type InventoryHistoryListParams struct {
	PageQuery   `yaml:",inline"`
	AuditQuery  `yaml:",inline"`
	ID          ID     `json:"id,omitempty" yaml:"id,omitempty"`
	OrderID     ID     `json:"orderId,omitempty" yaml:"order_id,omitempty"`
	OrderNo     string `json:"orderNo,omitempty" yaml:"order_no,omitempty"`
	OrderType   *int   `json:"orderType,omitempty" yaml:"order_type,omitempty"`
	SkuID       ID     `json:"skuId,omitempty" yaml:"sku_id,omitempty"`
	BatchNo     string `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	WarehouseID ID     `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID      ID     `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	ItemName    string `json:"itemName,omitempty" yaml:"item_name,omitempty"`
	ItemCode    string `json:"itemCode,omitempty" yaml:"item_code,omitempty"`
	SkuName     string `json:"skuName,omitempty" yaml:"sku_name,omitempty"`
	SkuCode     string `json:"skuCode,omitempty" yaml:"sku_code,omitempty"`
	StartTime   string `json:"startTime,omitempty" yaml:"start_time,omitempty"`
	EndTime     string `json:"endTime,omitempty" yaml:"end_time,omitempty"`
}

// Between restricts the history to records created in [from, to].
func (p *InventoryHistoryListParams) Between(from, to time.Time) {
	p.StartTime, p.EndTime = dateutil.DayRange(from, to)
}

// ShipmentData is the stock snapshot the shipment form picks batches from.
type ShipmentData struct {
	ShipmentInventoryDetailList []InventoryDetail `json:"shipmentInventoryDetailList" yaml:"shipment_inventory_detail_list"`
	ShipmentInventoryList       []Inventory       `json:"shipmentInventoryList" yaml:"shipment_inventory_list"`
}
