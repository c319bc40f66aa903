package repository

import (
	"sort"
	"strings"
	"sync"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/util"
)

// The memory stores back the development mode of the portal. They implement
// the same store interfaces as the MySQL repositories and are selected via
// database.driver, never mixed with MySQL at runtime. A single RWMutex per
// store guards map access; like the real store, there is no optimistic
// concurrency and the last write wins.

type MemoryApplicationStore struct {
	mu   sync.RWMutex
	apps map[string]model.Application
	seq  map[string]uint64
	next uint64
}

func NewMemoryApplicationStore() *MemoryApplicationStore {
	return &MemoryApplicationStore{
		apps: make(map[string]model.Application),
		seq:  make(map[string]uint64),
	}
}

func (s *MemoryApplicationStore) Create(app *model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.ID == "" {
		app.ID = model.GenerateUUID()
	}
	s.next++
	s.seq[app.ID] = s.next
	s.apps[app.ID] = *app
	return nil
}

func (s *MemoryApplicationStore) FindByID(id string) (*model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, util.ErrApplicationNotFound
	}
	return &app, nil
}

func (s *MemoryApplicationStore) List(filter ApplicationFilter) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	apps := make([]model.Application, 0, len(s.apps))
	for _, app := range s.apps {
		if filter.Status != "" && app.Status != filter.Status {
			continue
		}
		apps = append(apps, app)
	}
	// created_at descending, insertion order as tiebreaker
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].CreatedAt.After(apps[j].CreatedAt)
		}
		return s.seq[apps[i].ID] > s.seq[apps[j].ID]
	})
	return apps, nil
}

func (s *MemoryApplicationStore) Save(app *model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[app.ID]; !ok {
		return util.ErrApplicationNotFound
	}
	s.apps[app.ID] = *app
	return nil
}

func (s *MemoryApplicationStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[id]; !ok {
		return util.ErrApplicationNotFound
	}
	delete(s.apps, id)
	delete(s.seq, id)
	return nil
}

type MemoryUserStore struct {
	mu     sync.RWMutex
	users  map[uint]model.User
	nextID uint
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uint]model.User)}
}

func (s *MemoryUserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByID(id uint) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return &user, nil
}

func (s *MemoryUserStore) FindByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (s *MemoryUserStore) FindByGoogleID(googleID string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.GoogleID != "" && user.GoogleID == googleID {
			u := user
			return &u, nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (s *MemoryUserStore) List(filter UserFilter) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		if filter.Role != "" && string(user.Role) != filter.Role {
			continue
		}
		if filter.Status != "" && string(user.Status) != filter.Status {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(user.Name, filter.Search) &&
			!strings.Contains(user.Email, filter.Search) {
			continue
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})
	return users, nil
}

func (s *MemoryUserStore) Save(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return util.ErrUserNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return util.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type MemoryDisbursementStore struct {
	mu            sync.RWMutex
	disbursements map[string]model.Disbursement
}

func NewMemoryDisbursementStore() *MemoryDisbursementStore {
	return &MemoryDisbursementStore{disbursements: make(map[string]model.Disbursement)}
}

func (s *MemoryDisbursementStore) Create(d *model.Disbursement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = model.GenerateUUID()
	}
	s.disbursements[d.ID] = *d
	return nil
}

func (s *MemoryDisbursementStore) FindByID(id string) (*model.Disbursement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.disbursements[id]
	if !ok {
		return nil, util.ErrDisbursementNotFound
	}
	return &d, nil
}

func (s *MemoryDisbursementStore) ListByApplication(applicationID string) ([]model.Disbursement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ds []model.Disbursement
	for _, d := range s.disbursements {
		if d.ApplicationID == applicationID {
			ds = append(ds, d)
		}
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Date.Before(ds[j].Date) })
	return ds, nil
}

func (s *MemoryDisbursementStore) Save(d *model.Disbursement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.disbursements[d.ID]; !ok {
		return util.ErrDisbursementNotFound
	}
	s.disbursements[d.ID] = *d
	return nil
}

func (s *MemoryDisbursementStore) DeleteByApplication(applicationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range s.disbursements {
		if d.ApplicationID == applicationID {
			delete(s.disbursements, id)
		}
	}
	return nil
}
