// Package service implements the clinic store: the data-access and
// authorization layer owning users, patients, incidents and the active
// session. Every mutation is mirrored to the slot-based persistence backend.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/entnt/dentalcare-server/internal/logger"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/google/uuid"
)

// Clinic holds the in-memory snapshot of all collections. The snapshot is
// authoritative between restarts; concurrent processes against the same
// backend are not coordinated (last writer wins).
type Clinic struct {
	slots  model.SlotStore
	logger *logger.Logger

	mu        sync.RWMutex
	users     []model.User
	patients  []model.Patient
	incidents []model.Incident
	session   *model.User
}

// NewClinic creates a clinic store over the given persistence backend.
func NewClinic(slots model.SlotStore, logger *logger.Logger) *Clinic {
	return &Clinic{
		slots:  slots,
		logger: logger,
	}
}

// Init loads the three collection slots, writing the fixed seed dataset into
// any absent slot. Seeding never overwrites existing data. A persisted
// session is restored unless its user no longer exists.
func (c *Clinic) Init(ctx context.Context) error {
	seedUsers, seedPatients, seedIncidents := seedDataset()

	users, err := loadOrSeed(ctx, c.slots, model.SlotUsers, seedUsers)
	if err != nil {
		return err
	}
	patients, err := loadOrSeed(ctx, c.slots, model.SlotPatients, seedPatients)
	if err != nil {
		return err
	}
	incidents, err := loadOrSeed(ctx, c.slots, model.SlotIncidents, seedIncidents)
	if err != nil {
		return err
	}

	session, err := c.loadSession(ctx, users)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.users = users
	c.patients = patients
	c.incidents = incidents
	c.session = session
	c.mu.Unlock()

	c.logger.Info("clinic store initialized",
		"users", len(users),
		"patients", len(patients),
		"incidents", len(incidents),
		"session_restored", session != nil)

	return nil
}

// Shutdown releases the persistence backend. All mutations are already
// persisted at this point, so there is nothing to flush.
func (c *Clinic) Shutdown(_ context.Context) error {
	return c.slots.Close()
}

// UserByID returns the user with the given ID from the loaded snapshot.
func (c *Clinic) UserByID(id string) (model.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, u := range c.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (c *Clinic) loadSession(ctx context.Context, users []model.User) (*model.User, error) {
	raw, ok, err := c.slots.Get(ctx, model.SlotCurrentUser)
	if err != nil {
		return nil, model.NewStorageError(model.SlotCurrentUser, err)
	}
	if !ok {
		return nil, nil
	}

	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode session slot: %w", err)
	}

	for _, known := range users {
		if known.ID == u.ID {
			return &u, nil
		}
	}

	// A session left behind by a user removed out-of-band is discarded
	// rather than restored dangling.
	c.logger.Warn("discarding stale session", "user_id", u.ID)
	if err := c.slots.Delete(ctx, model.SlotCurrentUser); err != nil {
		return nil, model.NewStorageError(model.SlotCurrentUser, err)
	}
	return nil, nil
}

func loadOrSeed[T any](ctx context.Context, slots model.SlotStore, key string, seed []T) ([]T, error) {
	raw, ok, err := slots.Get(ctx, key)
	if err != nil {
		return nil, model.NewStorageError(key, err)
	}
	if ok {
		var loaded []T
		if err := json.Unmarshal(raw, &loaded); err != nil {
			return nil, fmt.Errorf("failed to decode slot %s: %w", key, err)
		}
		return loaded, nil
	}

	data, err := json.Marshal(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed for slot %s: %w", key, err)
	}
	if err := slots.Set(ctx, key, data); err != nil {
		return nil, model.NewStorageError(key, err)
	}
	return seed, nil
}

// persistPatients writes the full patient collection. Callers hold c.mu.
func (c *Clinic) persistPatients(ctx context.Context) error {
	return c.persistSlot(ctx, model.SlotPatients, c.patients)
}

// persistIncidents writes the full incident collection. Callers hold c.mu.
func (c *Clinic) persistIncidents(ctx context.Context) error {
	return c.persistSlot(ctx, model.SlotIncidents, c.incidents)
}

func (c *Clinic) persistSlot(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}
	if err := c.slots.Set(ctx, key, data); err != nil {
		return model.NewStorageError(key, err)
	}
	return nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
