package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/entnt/dentalcare-server/internal/storage/memory"
	"github.com/entnt/dentalcare-server/internal/testutil"
)

func newTestClinic(t *testing.T) (*Clinic, *memory.Store) {
	t.Helper()

	store := memory.New()
	c := NewClinic(store, testutil.MakeNoopLogger())
	require.NoError(t, c.Init(context.Background()))
	return c, store
}

func adminCaller(t *testing.T, c *Clinic) model.User {
	t.Helper()

	u, ok := c.UserByID("1")
	require.True(t, ok)
	require.True(t, u.IsAdmin())
	return u
}

func patientCaller(t *testing.T, c *Clinic) model.User {
	t.Helper()

	u, ok := c.UserByID("2")
	require.True(t, ok)
	require.Equal(t, model.RolePatient, u.Role)
	return u
}

// failingStore wraps a slot store and fails every write.
type failingStore struct {
	model.SlotStore
}

func (f *failingStore) Set(_ context.Context, _ string, _ []byte) error {
	return errors.New("disk full")
}

func TestClinic_Init_SeedsEmptyStorage(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c := NewClinic(store, testutil.MakeNoopLogger())

	require.NoError(t, c.Init(ctx))

	admin := adminCaller(t, c)
	assert.Len(t, c.Patients(admin), 3)
	assert.Len(t, c.Incidents(admin), 4)

	// The seed must land in storage, not just in memory.
	raw, ok, err := store.Get(ctx, model.SlotUsers)
	require.NoError(t, err)
	require.True(t, ok)

	var users []model.User
	require.NoError(t, json.Unmarshal(raw, &users))
	assert.Len(t, users, 3)
}

func TestClinic_Init_NeverOverwritesExistingData(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	existing := []model.Patient{{ID: "p9", Name: "Existing Patient", DOB: "2000-01-01", Contact: "111", HealthInfo: "none"}}
	raw, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, model.SlotPatients, raw))

	c := NewClinic(store, testutil.MakeNoopLogger())
	require.NoError(t, c.Init(ctx))

	patients := c.Patients(adminCaller(t, c))
	require.Len(t, patients, 1)
	assert.Equal(t, "p9", patients[0].ID)

	// Absent slots are still seeded.
	assert.Len(t, c.Incidents(adminCaller(t, c)), 4)
}

func TestClinic_Init_RestoresSession(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	first := NewClinic(store, testutil.MakeNoopLogger())
	require.NoError(t, first.Init(ctx))
	_, err := first.Login(ctx, "admin@entnt.in", "admin123")
	require.NoError(t, err)

	second := NewClinic(store, testutil.MakeNoopLogger())
	require.NoError(t, second.Init(ctx))

	session, ok := second.Session()
	require.True(t, ok)
	assert.Equal(t, "1", session.ID)
}

func TestClinic_Init_DiscardsStaleSession(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	ghost, err := json.Marshal(model.User{ID: "999", Role: model.RoleAdmin, Email: "ghost@entnt.in"})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, model.SlotCurrentUser, ghost))

	c := NewClinic(store, testutil.MakeNoopLogger())
	require.NoError(t, c.Init(ctx))

	_, ok := c.Session()
	assert.False(t, ok)

	_, exists, err := store.Get(ctx, model.SlotCurrentUser)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClinic_Init_MalformedSlotFails(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, model.SlotPatients, []byte(`{not json`)))

	c := NewClinic(store, testutil.MakeNoopLogger())
	err := c.Init(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), model.SlotPatients)
}

func TestClinic_RoundTripAfterMutation(t *testing.T) {
	ctx := context.Background()
	c, store := newTestClinic(t)
	admin := adminCaller(t, c)

	added, err := c.AddPatient(ctx, admin, model.CreatePatientParams{
		Name: "New Patient", DOB: "1999-09-09", Contact: "42", HealthInfo: "none",
	})
	require.NoError(t, err)
	require.NoError(t, c.DeleteIncident(ctx, admin, "i4"))

	before := c.Patients(admin)
	beforeIncidents := c.Incidents(admin)

	// Simulate a process restart over the same backend.
	reloaded := NewClinic(store, testutil.MakeNoopLogger())
	require.NoError(t, reloaded.Init(ctx))

	assert.Equal(t, before, reloaded.Patients(admin))
	assert.Equal(t, beforeIncidents, reloaded.Incidents(admin))

	restored, err := reloaded.PatientByID(admin, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, restored)
}
