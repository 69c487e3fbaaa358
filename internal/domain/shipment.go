package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	numeric "github.com/wmsconsole/wms-console/pkg/decimal"
	"github.com/wmsconsole/wms-console/pkg/doccode"
)

// DefaultShipmentOrderType is the shipment type pre-selected on new forms.
const DefaultShipmentOrderType = "2"

// ShipmentOrder sends goods out of a warehouse.
type ShipmentOrder struct {
	ID                  ID                    `json:"id,omitempty" yaml:"id,omitempty"`
	ShipmentOrderNo     string                `json:"shipmentOrderNo" yaml:"shipment_order_no" validate:"required,max=32"`
	ShipmentOrderType   string                `json:"shipmentOrderType" yaml:"shipment_order_type" validate:"required"`
	OrderNo             string                `json:"orderNo,omitempty" yaml:"order_no,omitempty"`
	MerchantID          ID                    `json:"merchantId,omitempty" yaml:"merchant_id,omitempty"`
	ReceivableAmount    decimal.Decimal       `json:"receivableAmount" yaml:"receivable_amount" validate:"gte=0"`
	TotalQuantity       decimal.Decimal       `json:"totalQuantity" yaml:"total_quantity" validate:"gte=0"`
	ShipmentOrderStatus OrderStatus           `json:"shipmentOrderStatus" yaml:"shipment_order_status" validate:"oneof=-1 0 1"`
	WarehouseID         ID                    `json:"warehouseId" yaml:"warehouse_id" validate:"required"`
	AreaID              ID                    `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Remark              string                `json:"remark,omitempty" yaml:"remark,omitempty"`
	Details             []ShipmentOrderDetail `json:"details" yaml:"details" validate:"dive"`
	BaseEntity          `yaml:",inline"`
}

// NewShipmentOrder returns the pre-filled form of a new shipment.
func NewShipmentOrder(gen *doccode.Generator) *ShipmentOrder {
	return &ShipmentOrder{
		ShipmentOrderNo:     gen.Number(doccode.Shipment),
		ShipmentOrderType:   DefaultShipmentOrderType,
		ShipmentOrderStatus: StatusPending,
		Details:             []ShipmentOrderDetail{},
	}
}

// RecalculateTotals sums the detail quantities into TotalQuantity and the
// non-negative detail amounts into ReceivableAmount.
func (o *ShipmentOrder) RecalculateTotals() {
	quantities := make([]decimal.Decimal, 0, len(o.Details))
	amounts := make([]decimal.Decimal, 0, len(o.Details))
	for _, d := range o.Details {
		quantities = append(quantities, d.Quantity)
		if !d.Amount.IsNegative() {
			amounts = append(amounts, d.Amount)
		}
	}
	o.TotalQuantity = numeric.Sum(quantities...)
	o.ReceivableAmount = numeric.Sum(amounts...)
}

// CheckStock fails on the first line asking for more than its batch holds.
// Lines without a known remaining quantity are not checked.
func (o *ShipmentOrder) CheckStock() error {
	for i, d := range o.Details {
		if d.RemainQuantity == nil {
			continue
		}
		if d.Quantity.GreaterThan(*d.RemainQuantity) {
			return fmt.Errorf("shipment line %d: quantity %s exceeds remaining %s", i+1, d.Quantity, d.RemainQuantity)
		}
	}
	return nil
}

// CheckEditable returns ErrNotEditable once the order is voided or shipped.
func (o *ShipmentOrder) CheckEditable() error {
	return checkEditable("shipment order", o.ShipmentOrderNo, o.ShipmentOrderStatus)
}

// ShipmentOrderDetail is one shipped line drawn from an inventory batch.
type ShipmentOrderDetail struct {
	ID                ID               `json:"id,omitempty" yaml:"id,omitempty"`
	ShipmentOrderID   ID               `json:"shipmentOrderId,omitempty" yaml:"shipment_order_id,omitempty"`
	SkuID             ID               `json:"skuId" yaml:"sku_id" validate:"required"`
	Quantity          decimal.Decimal  `json:"quantity" yaml:"quantity" validate:"gt=0"`
	Amount            decimal.Decimal  `json:"amount" yaml:"amount"`
	WarehouseID       ID               `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID            ID               `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	BatchNo           string           `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	ProductionDate    DateTime         `json:"productionDate" yaml:"production_date"`
	ExpirationDate    DateTime         `json:"expirationDate" yaml:"expiration_date"`
	InventoryDetailID ID               `json:"inventoryDetailId,omitempty" yaml:"inventory_detail_id,omitempty"`
	RemainQuantity    *decimal.Decimal `json:"remainQuantity,omitempty" yaml:"remain_quantity,omitempty"`
	Remark            string           `json:"remark,omitempty" yaml:"remark,omitempty"`
	BaseEntity        `yaml:",inline"`
}

// ShipmentLineFrom starts a shipment line drawing on an inventory batch.
func ShipmentLineFrom(batch InventoryDetail) ShipmentOrderDetail {
	remain := batch.RemainQuantity
	return ShipmentOrderDetail{
		SkuID:             batch.SkuID,
		WarehouseID:       batch.WarehouseID,
		AreaID:            batch.AreaID,
		BatchNo:           batch.BatchNo,
		ProductionDate:    batch.ProductionDate,
		ExpirationDate:    batch.ExpirationDate,
		InventoryDetailID: batch.ID,
		RemainQuantity:    &remain,
	}
}

type ShipmentOrderListParams struct {
	PageQuery           `yaml:",inline"`
	AuditQuery          `yaml:",inline"`
	ID                  ID           `json:"id,omitempty" yaml:"id,omitempty"`
	ShipmentOrderNo     string       `json:"shipmentOrderNo,omitempty" yaml:"shipment_order_no,omitempty"`
	ShipmentOrderType   string       `json:"shipmentOrderType,omitempty" yaml:"shipment_order_type,omitempty"`
	OrderNo             string       `json:"orderNo,omitempty" yaml:"order_no,omitempty"`
	MerchantID          ID           `json:"merchantId,omitempty" yaml:"merchant_id,omitempty"`
	ShipmentOrderStatus *OrderStatus `json:"shipmentOrderStatus,omitempty" yaml:"shipment_order_status,omitempty"`
	WarehouseID         ID           `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID              ID           `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Remark              string       `json:"remark,omitempty" yaml:"remark,omitempty"`
}

type ShipmentOrderDetailListParams struct {
	PageQuery         `yaml:",inline"`
	AuditQuery        `yaml:",inline"`
	ID                ID     `json:"id,omitempty" yaml:"id,omitempty"`
	ShipmentOrderID   ID     `json:"shipmentOrderId,omitempty" yaml:"shipment_order_id,omitempty"`
	SkuID             ID     `json:"skuId,omitempty" yaml:"sku_id,omitempty"`
	WarehouseID       ID     `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID            ID     `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	BatchNo           string `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	InventoryDetailID ID     `json:"inventoryDetailId,omitempty" yaml:"inventory_detail_id,omitempty"`
}
