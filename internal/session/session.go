// Package session holds the active working set: the profile registry,
// the current profile pointer, and the current profile's transactions,
// categories, and settings.
//
// All mutations are synchronous read-modify-persist cycles: validate,
// mutate in memory, write the touched field to storage, then signal the
// presentation layer to refresh. A single logical thread of user-driven
// actions is assumed; there is no locking.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/joshsymonds/budget-friendly/internal/common"
	"github.com/joshsymonds/budget-friendly/internal/model"
	"github.com/joshsymonds/budget-friendly/internal/storage"
)

// Store is the key-value persistence contract the session depends on.
type Store interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any) error
}

// RefreshFunc is invoked after every successful mutation so the
// presentation layer can re-render.
type RefreshFunc func()

// Session is the single mutable working set for the application.
// Exactly one profile is current whenever at least one exists.
type Session struct {
	store   Store
	refresh RefreshFunc

	profiles  []model.Profile
	currentID string

	transactions []model.Transaction
	categories   []model.Category
	settings     model.Settings
}

// New creates a session backed by the given store. Call Bootstrap before
// using it.
func New(store Store) *Session {
	return &Session{store: store}
}

// OnRefresh registers the presentation layer's refresh hook.
func (s *Session) OnRefresh(fn RefreshFunc) {
	s.refresh = fn
}

// Bootstrap loads the profile registry and selects the current profile.
// An empty registry auto-creates a profile named "Personal"; a registry
// with no valid current pointer falls back to the first profile in
// insertion order.
func (s *Session) Bootstrap(ctx context.Context) error {
	s.store.Get(ctx, storage.KeyProfiles, &s.profiles)

	var current string
	s.store.Get(ctx, storage.KeyCurrentProfile, &current)

	if len(s.profiles) == 0 {
		_, err := s.CreateProfile(ctx, "Personal")
		return err
	}

	if current == "" || s.findProfile(current) == nil {
		current = s.profiles[0].ID
	}
	return s.loadProfile(ctx, current)
}

// Profiles returns the profile registry in insertion order.
func (s *Session) Profiles() []model.Profile {
	out := make([]model.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Current returns the active profile.
func (s *Session) Current() (model.Profile, bool) {
	p := s.findProfile(s.currentID)
	if p == nil {
		return model.Profile{}, false
	}
	return *p, true
}

// CreateProfile registers a new profile, persists its empty collections,
// and makes it current.
func (s *Session) CreateProfile(ctx context.Context, name string) (model.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Profile{}, common.ErrEmptyProfileName
	}

	profile := model.Profile{ID: uuid.NewString(), Name: name}
	s.profiles = append(s.profiles, profile)
	if err := s.store.Set(ctx, storage.KeyProfiles, s.profiles); err != nil {
		return model.Profile{}, err
	}

	// Seed the new namespace so later loads start from a clean state
	// rather than a logged fallback.
	if err := s.store.Set(ctx, storage.ProfileTransactionsKey(profile.ID), []model.Transaction{}); err != nil {
		return model.Profile{}, err
	}
	if err := s.store.Set(ctx, storage.ProfileCategoriesKey(profile.ID), []model.Category{}); err != nil {
		return model.Profile{}, err
	}
	if err := s.store.Set(ctx, storage.ProfileSettingsKey(profile.ID), model.Settings{}); err != nil {
		return model.Profile{}, err
	}

	if err := s.loadProfile(ctx, profile.ID); err != nil {
		return model.Profile{}, err
	}

	slog.Info("created profile", "id", profile.ID, "name", profile.Name)
	s.notifyRefresh()
	return profile, nil
}

// SwitchProfile replaces the working set with the named profile's data.
// The outgoing working set is not re-persisted; every prior mutation
// already was.
func (s *Session) SwitchProfile(ctx context.Context, id string) error {
	if s.findProfile(id) == nil {
		return fmt.Errorf("%w: %s", common.ErrProfileNotFound, id)
	}
	if err := s.loadProfile(ctx, id); err != nil {
		return err
	}
	s.notifyRefresh()
	return nil
}

func (s *Session) loadProfile(ctx context.Context, id string) error {
	s.currentID = id
	if err := s.store.Set(ctx, storage.KeyCurrentProfile, id); err != nil {
		return err
	}

	s.transactions = []model.Transaction{}
	s.categories = []model.Category{}
	s.settings = model.Settings{}
	s.store.Get(ctx, storage.ProfileTransactionsKey(id), &s.transactions)
	s.store.Get(ctx, storage.ProfileCategoriesKey(id), &s.categories)
	s.store.Get(ctx, storage.ProfileSettingsKey(id), &s.settings)

	slog.Debug("loaded profile",
		"id", id,
		"transactions", len(s.transactions),
		"categories", len(s.categories))
	return nil
}

func (s *Session) findProfile(id string) *model.Profile {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return &s.profiles[i]
		}
	}
	return nil
}

func (s *Session) requireProfile() error {
	if s.currentID == "" {
		return common.ErrNoActiveProfile
	}
	return nil
}

func (s *Session) notifyRefresh() {
	if s.refresh != nil {
		s.refresh()
	}
}
