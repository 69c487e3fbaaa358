package domain

import (
	"github.com/shopspring/decimal"

	numeric "github.com/wmsconsole/wms-console/pkg/decimal"
	"github.com/wmsconsole/wms-console/pkg/doccode"
)

// DefaultReceiptOrderType is the receipt type pre-selected on new forms.
const DefaultReceiptOrderType = "2"

// ReceiptOrder brings goods into a warehouse.
type ReceiptOrder struct {
	ID                 ID                   `json:"id,omitempty" yaml:"id,omitempty"`
	ReceiptOrderNo     string               `json:"receiptOrderNo" yaml:"receipt_order_no" validate:"required,max=32"`
	ReceiptOrderType   string               `json:"receiptOrderType" yaml:"receipt_order_type" validate:"required"`
	MerchantID         ID                   `json:"merchantId,omitempty" yaml:"merchant_id,omitempty"`
	OrderNo            string               `json:"orderNo,omitempty" yaml:"order_no,omitempty"`
	TotalQuantity      decimal.Decimal      `json:"totalQuantity" yaml:"total_quantity" validate:"gte=0"`
	PayableAmount      decimal.Decimal      `json:"payableAmount" yaml:"payable_amount" validate:"gte=0"`
	ReceiptOrderStatus OrderStatus          `json:"receiptOrderStatus" yaml:"receipt_order_status" validate:"oneof=-1 0 1"`
	WarehouseID        ID                   `json:"warehouseId" yaml:"warehouse_id" validate:"required"`
	AreaID             ID                   `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Remark             string               `json:"remark,omitempty" yaml:"remark,omitempty"`
	Details            []ReceiptOrderDetail `json:"details" yaml:"details" validate:"dive"`
	BaseEntity         `yaml:",inline"`
}

// NewReceiptOrder returns the pre-filled form of a new receipt.
func NewReceiptOrder(gen *doccode.Generator) *ReceiptOrder {
	return &ReceiptOrder{
		ReceiptOrderNo:     gen.Number(doccode.Receipt),
		ReceiptOrderType:   DefaultReceiptOrderType,
		ReceiptOrderStatus: StatusPending,
		Details:            []ReceiptOrderDetail{},
	}
}

// RecalculateTotals sums the detail quantities into TotalQuantity and the
// non-negative detail amounts into PayableAmount.
func (o *ReceiptOrder) RecalculateTotals() {
	quantities := make([]decimal.Decimal, 0, len(o.Details))
	amounts := make([]decimal.Decimal, 0, len(o.Details))
	for _, d := range o.Details {
		quantities = append(quantities, d.Quantity)
		if !d.Amount.IsNegative() {
			amounts = append(amounts, d.Amount)
		}
	}
	o.TotalQuantity = numeric.Sum(quantities...)
	o.PayableAmount = numeric.Sum(amounts...)
}

// SetWarehouse moves the order to another warehouse. The area no longer
// applies and is cleared on the order and every line.
func (o *ReceiptOrder) SetWarehouse(id ID) {
	o.WarehouseID = id
	o.AreaID = ""
	for i := range o.Details {
		o.Details[i].WarehouseID = id
		o.Details[i].AreaID = ""
	}
}

// SetArea applies the area to the order and every line.
func (o *ReceiptOrder) SetArea(id ID) {
	o.AreaID = id
	for i := range o.Details {
		o.Details[i].AreaID = id
	}
}

// CheckEditable returns ErrNotEditable once the order is voided or received.
func (o *ReceiptOrder) CheckEditable() error {
	return checkEditable("receipt order", o.ReceiptOrderNo, o.ReceiptOrderStatus)
}

// ReceiptOrderDetail is one received batch line.
type ReceiptOrderDetail struct {
	ID             ID              `json:"id,omitempty" yaml:"id,omitempty"`
	ReceiptOrderID ID              `json:"receiptOrderId,omitempty" yaml:"receipt_order_id,omitempty"`
	SkuID          ID              `json:"skuId" yaml:"sku_id" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity" yaml:"quantity" validate:"gt=0"`
	Amount         decimal.Decimal `json:"amount" yaml:"amount"`
	BatchNo        string          `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	ProductionDate DateTime        `json:"productionDate" yaml:"production_date"`
	ExpirationDate DateTime        `json:"expirationDate" yaml:"expiration_date"`
	Remark         string          `json:"remark,omitempty" yaml:"remark,omitempty"`
	WarehouseID    ID              `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID         ID              `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	BaseEntity     `yaml:",inline"`
}

type ReceiptOrderListParams struct {
	PageQuery          `yaml:",inline"`
	AuditQuery         `yaml:",inline"`
	ID                 ID           `json:"id,omitempty" yaml:"id,omitempty"`
	ReceiptOrderNo     string       `json:"receiptOrderNo,omitempty" yaml:"receipt_order_no,omitempty"`
	ReceiptOrderType   string       `json:"receiptOrderType,omitempty" yaml:"receipt_order_type,omitempty"`
	MerchantID         ID           `json:"merchantId,omitempty" yaml:"merchant_id,omitempty"`
	OrderNo            string       `json:"orderNo,omitempty" yaml:"order_no,omitempty"`
	ReceiptOrderStatus *OrderStatus `json:"receiptOrderStatus,omitempty" yaml:"receipt_order_status,omitempty"`
	WarehouseID        ID           `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID             ID           `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Remark             string       `json:"remark,omitempty" yaml:"remark,omitempty"`
}

type ReceiptOrderDetailListParams struct {
	PageQuery      `yaml:",inline"`
	AuditQuery     `yaml:",inline"`
	ID             ID     `json:"id,omitempty" yaml:"id,omitempty"`
	ReceiptOrderID ID     `json:"receiptOrderId,omitempty" yaml:"receipt_order_id,omitempty"`
	SkuID          ID     `json:"skuId,omitempty" yaml:"sku_id,omitempty"`
	BatchNo        string `json:"batchNo,omitempty" yaml:"batch_no,omitempty"`
	WarehouseID    ID     `json:"warehouseId,omitempty" yaml:"warehouse_id,omitempty"`
	AreaID         ID     `json:"areaId,omitempty" yaml:"area_id,omitempty"`
	Remark         string `json:"remark,omitempty" yaml:"remark,omitempty"`
}
