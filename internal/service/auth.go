package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entnt/dentalcare-server/internal/model"
)

// Login authenticates by exact, case-sensitive match of email and password
// against the persisted user slot (not the cached snapshot). On success the
// matched user becomes the active session and is persisted. Failure returns
// ErrInvalidCredentials without distinguishing unknown email from wrong
// password.
func (c *Clinic) Login(ctx context.Context, email, password string) (model.User, error) {
	raw, ok, err := c.slots.Get(ctx, model.SlotUsers)
	if err != nil {
		return model.User{}, model.NewStorageError(model.SlotUsers, err)
	}

	var users []model.User
	if ok {
		if err := json.Unmarshal(raw, &users); err != nil {
			return model.User{}, fmt.Errorf("failed to decode user slot: %w", err)
		}
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			data, err := json.Marshal(u)
			if err != nil {
				return model.User{}, fmt.Errorf("failed to encode session: %w", err)
			}
			if err := c.slots.Set(ctx, model.SlotCurrentUser, data); err != nil {
				return model.User{}, model.NewStorageError(model.SlotCurrentUser, err)
			}

			c.mu.Lock()
			session := u
			c.session = &session
			c.mu.Unlock()

			c.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
			return u, nil
		}
	}

	c.logger.Info("login rejected", "email", email)
	return model.User{}, model.ErrInvalidCredentials
}

// Logout clears the active session in memory and in storage. Calling it with
// no active session is a no-op.
func (c *Clinic) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()

	if err := c.slots.Delete(ctx, model.SlotCurrentUser); err != nil {
		return model.NewStorageError(model.SlotCurrentUser, err)
	}
	return nil
}

// Session returns the active session user, if any.
func (c *Clinic) Session() (model.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return model.User{}, false
	}
	return *c.session, true
}
