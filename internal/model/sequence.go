package model

// SequenceCounter is a named, durable counter holding the last issued number.
// Rows are seeded by migration; missing rows are an operational error, never
// created on demand.
type SequenceCounter struct {
	Name           string `db:"name"`
	SequenceNumber int64  `db:"sequence_number"`
}
