package domain

import (
	"errors"
	"fmt"
)

// ErrNotEditable is returned when a change is attempted on a voided or
// finished order.
var ErrNotEditable = errors.New("order is not editable")

// OrderStatus is the lifecycle state shared by receipt, shipment, movement
// and check orders.
type OrderStatus int

const (
	StatusVoided   OrderStatus = -1
	StatusPending  OrderStatus = 0
	StatusFinished OrderStatus = 1
)

func (s OrderStatus) String() string {
	switch s {
	case StatusVoided:
		return "voided"
	case StatusPending:
		return "pending"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Editable reports whether an order in this state may still be changed.
// Only pending orders can be edited; voided and finished ones are frozen.
func (s OrderStatus) Editable() bool { return s == StatusPending }

// Status returns a pointer to s, for list filters where 0 is meaningful.
func Status(s OrderStatus) *OrderStatus { return &s }

func checkEditable(kind, no string, s OrderStatus) error {
	if s.Editable() {
		return nil
	}
	return fmt.Errorf("%s %s is %s: %w", kind, no, s, ErrNotEditable)
}
