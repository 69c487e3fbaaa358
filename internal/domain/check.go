package domain

import (
	"github.com/shopspring/decimal"

	numeric "github.com/wmsconsole/wms-console/pkg/decimal"
	"github.com/wmsconsole/wms-console/pkg/doccode"
)

// CheckOrder is a stock count of one warehouse (optionally one area).
type CheckOrder struct {
	ID               ID                 `json:"id,omitempty" yaml:"id,omitempty"`
	CheckOrderNo     string             `json:"checkOrderNo" yaml:"check_order_no" validate:"required,max=32"`
	CheckOrderStatus OrderStatus        `json:"checkOrderStatus" yaml:"check_order_status" validate:"oneof=-1 0 1"`
	CheckOrderTotal  decimal.Decimal    `json:"checkOrderTotal" yaml:"check_order_total"`
	WarehouseID      ID                 `json:"warehouseId" yaml:"warehouse_id" validate:"required"`
	AreaID           ID                 `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Remark           string             `json:"remark,omitempty" yaml:"remark,omitempty"`
	Details          []CheckOrderDetail `json:"details" yaml:"details" validate:"dive"`
	BaseEntity       `yaml:",inline"`
}

// NewCheckOrder returns the pre-filled form of a new stock count.
func NewCheckOrder(gen *doccode.Generator) *CheckOrder {
	return &CheckOrder{
		CheckOrderNo:     gen.Number(doccode.Check),
		CheckOrderStatus: StatusPending,
		Details:          []CheckOrderDetail{},
	}
}

// RecalculateTotals refreshes every line's profit and loss and stores the
// net difference in CheckOrderTotal.
func (o *CheckOrder) RecalculateTotals() {
	diffs := make([]decimal.Decimal, 0, len(o.Details))
	for i := range o.Details {
		diffs = append(diffs, o.Details[i].ComputeProfitAndLoss())
	}
	o.CheckOrderTotal = numeric.Sum(diffs...)
}

// Discrepancies returns the lines whose counted quantity differs from the
// book quantity.
func (o *CheckOrder) Discrepancies() []CheckOrderDetail {
	var out []CheckOrderDetail
	for _, d := range o.Details {
		if !d.CheckQuantity.Equal(d.Quantity) {
			out = append(out, d)
		}
	}
	return out
}

// CheckEditable returns ErrNotEditable once the count is voided or posted.
func (o *CheckOrder) CheckEditable() error {
	return checkEditable("check order", o.CheckOrderNo, o.CheckOrderStatus)
}

// CheckOrderDetail compares the book quantity of a batch with the count.
type CheckOrderDetail struct {
	ID                ID              `json:"id,omitempty" yaml:"id,omitempty"`
	CheckOrderID      ID              `json:"checkOrderId,omitempty" yaml:"check_order_id,omitempty"`
	SkuID             ID              `json:"skuId" yaml:"sku_id" validate:"required"`
	Quantity          decimal.Decimal `json:"quantity" yaml:"quantity" validate:"gte=0"`
	CheckQuantity     decimal.Decimal `json:"checkQuantity" yaml:"check_quantity" validate:"gte=0"`
	ProfitAndLoss     decimal.Decimal `json:"profitAndLoss" yaml:"profit_and_loss"`
	WarehouseID       ID              `json:"warehouseId" yaml:"warehouse_id"`
	AreaID            ID              `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	BatchNo           string          `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	ProductionDate    DateTime        `json:"productionDate" yaml:"production_date"`
	ExpirationDate    DateTime        `json:"expirationDate" yaml:"expiration_date"`
	ReceiptTime       DateTime        `json:"receiptTime" yaml:"receipt_time"`
	InventoryDetailID ID              `json:"inventoryDetailId,omitempty" yaml:"inventory_detail_id,omitempty"`
	Remark            string          `json:"remark,omitempty" yaml:"remark,omitempty"`
	HaveProfitAndLoss bool            `json:"haveProfitAndLoss" yaml:"have_profit_and_loss"`
	BaseEntity        `yaml:",inline"`
}

// ComputeProfitAndLoss sets ProfitAndLoss to the counted minus the book
// quantity (positive is a surplus) and flags the line when they differ.
func (d *CheckOrderDetail) ComputeProfitAndLoss() decimal.Decimal {
	d.ProfitAndLoss = numeric.Diff(d.CheckQuantity, d.Quantity)
	d.HaveProfitAndLoss = !d.ProfitAndLoss.IsZero()
	return d.ProfitAndLoss
}

type CheckOrderListParams struct {
	PageQuery        `yaml:",inline"`
	AuditQuery       `yaml:",inline"`
	ID               ID           `json:"id,omitempty" yaml:"id,omitempty"`
	CheckOrderNo     string       `json:"checkOrderNo,omitempty" yaml:"check_order_no,omitempty"`
	CheckOrderStatus *OrderStatus `json:"checkOrderStatus,omitempty" yaml:"check_order_status,omitempty"`
	WarehouseID      ID           `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID           ID           `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Remark           string       `json:"remark,omitempty" yaml:"remark,omitempty"`
}

type CheckOrderDetailListParams struct {
	PageQuery         `yaml:",inline"`
	AuditQuery        `yaml:",inline"`
	ID                ID     `json:"id,omitempty" yaml:"id,omitempty"`
	CheckOrderID      ID     `json:"checkOrderId,omitempty" yaml:"check_order_id,omitempty"`
	SkuID             ID     `json:"skuId,omitempty" yaml:"sku_id,omitempty"`
	WarehouseID       ID     `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID            ID     `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	BatchNo           string `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	InventoryDetailID ID     `json:"inventoryDetailId,omitempty" yaml:"inventory_detail_id,omitempty"`
	HaveProfitAndLoss *bool  `json:"haveProfitAndLoss,omitempty" yaml:"have_profit_and_loss,omitempty"`
}
