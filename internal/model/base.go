package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Status is the two-state lifecycle tag shared by every entity. A voided row is
// excluded from aggregates but retained for audit, unlike a hard delete.
type Status string

const (
	StatusActive Status = "active"
	StatusVoided Status = "voided"
)

func (s Status) Active() bool { return s == StatusActive }

// Toggled flips between active and voided.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusVoided
	}
	return StatusActive
}

// Persisted as a boolean column, matching the legacy status flag.
func (s Status) Value() (driver.Value, error) {
	return s == StatusActive, nil
}

func (s *Status) Scan(src interface{}) error {
	b, ok := src.(bool)
	if !ok {
		return fmt.Errorf("status: cannot scan %T", src)
	}
	if b {
		*s = StatusActive
	} else {
		*s = StatusVoided
	}
	return nil
}

type BaseModel struct {
	ID         string    `db:"id" json:"id"`
	Status     Status    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy  *string   `db:"created_by" json:"created_by"`
	ModifiedBy *string   `db:"modified_by" json:"modified_by"`
}
