package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	numeric "github.com/wmsconsole/wms-console/pkg/decimal"
	"github.com/wmsconsole/wms-console/pkg/doccode"
)

// ErrSameLocation is returned for a movement whose source and target coincide.
var ErrSameLocation = errors.New("source and target location are the same")

// MovementOrder relocates stock between warehouses or areas.
type MovementOrder struct {
	ID                  ID                    `json:"id,omitempty" yaml:"id,omitempty"`
	MovementOrderNo     string                `json:"movementOrderNo" yaml:"movement_order_no" validate:"required,max=32"`
	SourceWarehouseID   ID                    `json:"sourceWarehouseId" yaml:"source_warehouse_id" validate:"required"`
	SourceAreaID        ID                    `json:"sourceAreaId,omitempty" yaml:"source_area_id,omitempty"`
	TargetWarehouseID   ID                    `json:"targetWarehouseId" yaml:"target_warehouse_id" validate:"required"`
	TargetAreaID        ID                    `json:"targetAreaId,omitempty" yaml:"target_area_id,omitempty"`
	MovementOrderStatus OrderStatus           `json:"movementOrderStatus" yaml:"movement_order_status" validate:"oneof=-1 0 1"`
	TotalQuantity       decimal.Decimal       `json:"totalQuantity" yaml:"total_quantity" validate:"gte=0"`
	Remark              string                `json:"remark,omitempty" yaml:"remark,omitempty"`
	Details             []MovementOrderDetail `json:"details" yaml:"details" validate:"dive"`
	BaseEntity          `yaml:",inline"`
}

// NewMovementOrder returns the pre-filled form of a new movement.
func NewMovementOrder(gen *doccode.Generator) *MovementOrder {
	return &MovementOrder{
		MovementOrderNo:     gen.Number(doccode.Movement),
		MovementOrderStatus: StatusPending,
		Details:             []MovementOrderDetail{},
	}
}

// RecalculateTotals sums the detail quantities into TotalQuantity.
func (o *MovementOrder) RecalculateTotals() {
	quantities := make([]decimal.Decimal, 0, len(o.Details))
	for _, d := range o.Details {
		quantities = append(quantities, d.Quantity)
	}
	o.TotalQuantity = numeric.Sum(quantities...)
}

// CheckRoute rejects a movement that would leave stock where it is.
func (o *MovementOrder) CheckRoute() error {
	if o.SourceWarehouseID == o.TargetWarehouseID && o.SourceAreaID == o.TargetAreaID {
		return fmt.Errorf("movement order %s: %w", o.MovementOrderNo, ErrSameLocation)
	}
	return nil
}

// CheckStock fails on the first line moving more than its batch holds.
func (o *MovementOrder) CheckStock() error {
	for i, d := range o.Details {
		if d.RemainQuantity == nil {
			continue
		}
		if d.Quantity.GreaterThan(*d.RemainQuantity) {
			return fmt.Errorf("movement line %d: quantity %s exceeds remaining %s", i+1, d.Quantity, d.RemainQuantity)
		}
	}
	return nil
}

// CheckEditable returns ErrNotEditable once the order is voided or moved.
func (o *MovementOrder) CheckEditable() error {
	return checkEditable("movement order", o.MovementOrderNo, o.MovementOrderStatus)
}

// MovementOrderDetail is one relocated batch line.
type MovementOrderDetail struct {
	ID                ID               `json:"id,omitempty" yaml:"id,omitempty"`
	MovementOrderID   ID               `json:"movementOrderId,omitempty" yaml:"movement_order_id,omitempty"`
	SkuID             ID               `json:"skuId" yaml:"sku_id" validate:"required"`
	Quantity          decimal.Decimal  `json:"quantity" yaml:"quantity" validate:"gt=0"`
	Remark            string           `json:"remark,omitempty" yaml:"remark,omitempty"`
	BatchNo           string           `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	ProductionDate    DateTime         `json:"productionDate" yaml:"production_date"`
	ExpirationDate    DateTime         `json:"expirationDate" yaml:"expiration_date"`
	SourceWarehouseID ID               `json:"sourceWarehouseId" yaml:"source_warehouse_id"`
	SourceAreaID      ID               `json:"sourceAreaId,omitempty" yaml:"source_area_id,omitempty"`
	TargetWarehouseID ID               `json:"targetWarehouseId" yaml:"target_warehouse_id"`
	TargetAreaID      ID               `json:"targetAreaId,omitempty" yaml:"target_area_id,omitempty"`
	InventoryDetailID ID               `json:"inventoryDetailId,omitempty" yaml:"inventory_detail_id,omitempty"`
	RemainQuantity    *decimal.Decimal `json:"remainQuantity,omitempty" yaml:"remain_quantity,omitempty"`
	BaseEntity        `yaml:",inline"`
}

type MovementOrderListParams struct {
	PageQuery           `yaml:",inline"`
	AuditQuery          `yaml:",inline"`
	ID                  ID           `json:"id,omitempty" yaml:"id,omitempty"`
	MovementOrderNo     string       `json:"movementOrderNo,omitempty" yaml:"movement_order_no,omitempty"`
	SourceWarehouseID   ID           `json:"sourceWarehouseId,omitempty" yaml:"source_warehouse_id,omitempty"`
	SourceAreaID        ID           `json:"sourceAreaId,omitempty" yaml:"source_area_id,omitempty"`
	TargetWarehouseID   ID           `json:"targetWarehouseId,omitempty" yaml:"target_warehouse_id,omitempty"`
	TargetAreaID        ID           `json:"targetAreaId,omitempty" yaml:"target_area_id,omitempty"`
	MovementOrderStatus *OrderStatus `json:"movementOrderStatus,omitempty" yaml:"movement_order_status,omitempty"`
	Remark              string       `json:"remark,omitempty" yaml:"remark,omitempty"`
}

type MovementOrderDetailListParams struct {
	PageQuery         `yaml:",inline"`
	AuditQuery        `yaml:",inline"`
	ID                ID     `json:"id,omitempty" yaml:"id,omitempty"`
	MovementOrderID   ID     `json:"movementOrderId,omitempty" yaml:"movement_order_id,omitempty"`
	SkuID             ID     `json:"skuId,omitempty" yaml:"sku_id,omitempty"`
	BatchNo           string `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	SourceWarehouseID ID     `json:"sourceWarehouseId,omitempty" yaml:"source_warehouse_id,omitempty"`
	TargetWarehouseID ID     `json:"targetWarehouseId,omitempty" yaml:"target_warehouse_id,omitempty"`
	InventoryDetailID ID     `json:"inventoryDetailId,omitempty" yaml:"inventory_detail_id,omitempty"`
}
