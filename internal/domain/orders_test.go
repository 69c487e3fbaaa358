package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmsconsole/wms-console/pkg/doccode"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func fixedGenerator() *doccode.Generator {
	return doccode.New(
		doccode.WithClock(doccode.ClockFunc(func() time.Time {
			return time.Date(2024, 10, 28, 9, 0, 0, 0, time.Local)
		})),
		doccode.WithSource(doccode.SourceFunc(func(int) int { return 42 })),
	)
}

func TestNewOrders(t *testing.T) {
	gen := fixedGenerator()

	receipt := NewReceiptOrder(gen)
	assert.Equal(t, "RK10280042", receipt.ReceiptOrderNo)
	assert.Equal(t, DefaultReceiptOrderType, receipt.ReceiptOrderType)
	assert.Equal(t, StatusPending, receipt.ReceiptOrderStatus)
	assert.NotNil(t, receipt.Details)

	shipment := NewShipmentOrder(gen)
	assert.Equal(t, "CK10280042", shipment.ShipmentOrderNo)
	assert.Equal(t, StatusPending, shipment.ShipmentOrderStatus)

	movement := NewMovementOrder(gen)
	assert.Equal(t, "YK10280042", movement.MovementOrderNo)

	check := NewCheckOrder(gen)
	assert.Equal(t, "PK10280042", check.CheckOrderNo)
}

func TestReceiptOrder_RecalculateTotals(t *testing.T) {
	order := &ReceiptOrder{Details: []ReceiptOrderDetail{
		{Quantity: dec("10"), Amount: dec("100.3")},
		{Quantity: dec("5"), Amount: dec("20.2")},
		{Quantity: dec("0.1"), Amount: dec("-3")},
	}}
	order.RecalculateTotals()

	assert.Equal(t, "15.1", order.TotalQuantity.String())
	assert.Equal(t, "120.5", order.PayableAmount.String(), "negative amounts are not payable")

	empty := &ReceiptOrder{}
	empty.RecalculateTotals()
	assert.True(t, empty.TotalQuantity.IsZero())
	assert.True(t, empty.PayableAmount.IsZero())
}

func TestReceiptOrder_SetWarehouseClearsArea(t *testing.T) {
	order := &ReceiptOrder{
		WarehouseID: "1",
		Details:     []ReceiptOrderDetail{{WarehouseID: "1"}, {WarehouseID: "1"}},
	}
	order.SetArea("3")
	for _, d := range order.Details {
		assert.Equal(t, ID("3"), d.AreaID)
	}

	order.SetWarehouse("2")
	assert.Equal(t, ID("2"), order.WarehouseID)
	assert.True(t, order.AreaID.IsZero())
	for _, d := range order.Details {
		assert.Equal(t, ID("2"), d.WarehouseID)
		assert.True(t, d.AreaID.IsZero())
	}
}

func TestShipmentOrder_Totals(t *testing.T) {
	order := &ShipmentOrder{Details: []ShipmentOrderDetail{
		{Quantity: dec("2"), Amount: dec("0.1")},
		{Quantity: dec("3"), Amount: dec("0.2")},
	}}
	order.RecalculateTotals()

	assert.Equal(t, "5", order.TotalQuantity.String())
	assert.Equal(t, "0.3", order.ReceivableAmount.String())
}

func TestShipmentOrder_CheckStock(t *testing.T) {
	testCases := []struct {
		details []ShipmentOrderDetail
		wantErr bool
		desc    string
	}{
		{
			details: []ShipmentOrderDetail{{Quantity: dec("5"), RemainQuantity: decPtr("5")}},
			desc:    "ships the whole batch",
		},
		{
			details: []ShipmentOrderDetail{{Quantity: dec("99")}},
			desc:    "unknown remaining quantity is not checked",
		},
		{
			details: []ShipmentOrderDetail{
				{Quantity: dec("1"), RemainQuantity: decPtr("2")},
				{Quantity: dec("2.5"), RemainQuantity: decPtr("2")},
			},
			wantErr: true,
			desc:    "second line exceeds its batch",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			order := &ShipmentOrder{Details: tc.details}
			err := order.CheckStock()
			if tc.wantErr {
				assert.ErrorContains(t, err, "shipment line 2")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShipmentLineFrom(t *testing.T) {
	batch := InventoryDetail{
		ID:             "77",
		SkuID:          "501",
		WarehouseID:    "1",
		AreaID:         "3",
		BatchNo:        "B-01",
		RemainQuantity: dec("8"),
	}
	line := ShipmentLineFrom(batch)

	assert.Equal(t, ID("77"), line.InventoryDetailID)
	assert.Equal(t, ID("501"), line.SkuID)
	require.NotNil(t, line.RemainQuantity)
	assert.Equal(t, "8", line.RemainQuantity.String())
	assert.True(t, line.Quantity.IsZero())
}

func TestMovementOrder_CheckRoute(t *testing.T) {
	testCases := []struct {
		order   MovementOrder
		wantErr bool
		desc    string
	}{
		{order: MovementOrder{SourceWarehouseID: "1", TargetWarehouseID: "2"}, desc: "between warehouses"},
		{order: MovementOrder{SourceWarehouseID: "1", SourceAreaID: "3", TargetWarehouseID: "1", TargetAreaID: "4"}, desc: "between areas"},
		{order: MovementOrder{SourceWarehouseID: "1", TargetWarehouseID: "1"}, wantErr: true, desc: "same warehouse without areas"},
		{order: MovementOrder{SourceWarehouseID: "1", SourceAreaID: "3", TargetWarehouseID: "1", TargetAreaID: "3"}, wantErr: true, desc: "same area"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.order.CheckRoute()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrSameLocation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMovementOrder_TotalsAndStock(t *testing.T) {
	order := &MovementOrder{Details: []MovementOrderDetail{
		{Quantity: dec("1.1"), RemainQuantity: decPtr("2")},
		{Quantity: dec("2.2"), RemainQuantity: decPtr("2")},
	}}
	order.RecalculateTotals()
	assert.Equal(t, "3.3", order.TotalQuantity.String())
	assert.ErrorContains(t, order.CheckStock(), "movement line 2")
}

func TestCheckOrder_RecalculateTotals(t *testing.T) {
	order := &CheckOrder{Details: []CheckOrderDetail{
		{Quantity: dec("10"), CheckQuantity: dec("12")},
		{Quantity: dec("5.5"), CheckQuantity: dec("5.5")},
		{Quantity: dec("3"), CheckQuantity: dec("0.7")},
	}}
	order.RecalculateTotals()

	assert.Equal(t, "2", order.Details[0].ProfitAndLoss.String())
	assert.True(t, order.Details[0].HaveProfitAndLoss)
	assert.True(t, order.Details[1].ProfitAndLoss.IsZero())
	assert.False(t, order.Details[1].HaveProfitAndLoss)
	assert.Equal(t, "-2.3", order.Details[2].ProfitAndLoss.String())
	assert.Equal(t, "-0.3", order.CheckOrderTotal.String())

	discrepancies := order.Discrepancies()
	require.Len(t, discrepancies, 2)
	assert.Equal(t, "12", discrepancies[0].CheckQuantity.String())
}

func TestCheckEditable(t *testing.T) {
	testCases := []struct {
		status  OrderStatus
		wantErr bool
	}{
		{status: StatusPending},
		{status: StatusFinished, wantErr: true},
		{status: StatusVoided, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			errs := []error{
				(&ReceiptOrder{ReceiptOrderStatus: tc.status}).CheckEditable(),
				(&ShipmentOrder{ShipmentOrderStatus: tc.status}).CheckEditable(),
				(&MovementOrder{MovementOrderStatus: tc.status}).CheckEditable(),
				(&CheckOrder{CheckOrderStatus: tc.status}).CheckEditable(),
			}
			for _, err := range errs {
				if tc.wantErr {
					assert.ErrorIs(t, err, ErrNotEditable)
				} else {
					assert.NoError(t, err)
				}
			}
		})
	}
}

func TestOrderStatus_String(t *testing.T) {
	assert.Equal(t, "voided", StatusVoided.String())
	assert.Equal(t, "finished", StatusFinished.String())
	assert.Equal(t, "status(7)", OrderStatus(7).String())
}
