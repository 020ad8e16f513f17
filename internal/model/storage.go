package model

import "context"

// Slot keys of the persistent key-value layout. Each slot holds one JSON
// document: a collection array or the current session user.
const (
	SlotUsers       = "dental_users"
	SlotPatients    = "dental_patients"
	SlotIncidents   = "dental_incidents"
	SlotCurrentUser = "dental_current_user"
)

// SlotStore defines the slot-based key-value persistence backend.
type SlotStore interface {
	// Get returns the slot value and whether the slot exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
