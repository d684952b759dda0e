package model

import "time"

// InventoryMovement is the audit row written for every stock mutation.
type InventoryMovement struct {
	ID             string    `db:"id"`
	ProductID      string    `db:"product_id"`
	MovementType   string    `db:"movement_type"`
	QuantityChange int64     `db:"quantity_change"`
	QuantityBefore int64     `db:"quantity_before"`
	QuantityAfter  int64     `db:"quantity_after"`
	ReferenceType  *string   `db:"reference_type"`
	ReferenceID    *string   `db:"reference_id"`
	Notes          string    `db:"notes"`
	CreatedBy      *string   `db:"created_by"`
	CreatedAt      time.Time `db:"created_at"`
}
