// Package memory is a process-local store used by tests and by
// STORE_DRIVER=memory. Data does not survive a restart.
package memory

import (
	"sort"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
)

// Store holds every collection behind one lock so that uniqueness checks and
// inserts are atomic.
type Store struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	jobs         map[string]domain.Job
	applications map[string]domain.Application
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		jobs:         make(map[string]domain.Job),
		applications: make(map[string]domain.Application),
	}
}

func (s *Store) Users() domain.UserRepository {
	return &userRepo{store: s}
}

func (s *Store) Jobs() domain.JobRepository {
	return &jobRepo{store: s}
}

func (s *Store) Applications() domain.ApplicationRepository {
	return &applicationRepo{store: s}
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// newestFirst orders by creation time descending with id as tie-breaker.
func newestFirst(createdA, createdB time.Time, idA, idB string) bool {
	if !createdA.Equal(createdB) {
		return createdA.After(createdB)
	}
	return idA > idB
}

func sortJobs(jobs []domain.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		return newestFirst(jobs[i].CreatedAt, jobs[j].CreatedAt, jobs[i].ID, jobs[j].ID)
	})
}

func sortApplications(apps []domain.Application) {
	sort.Slice(apps, func(i, j int) bool {
		return newestFirst(apps[i].CreatedAt, apps[j].CreatedAt, apps[i].ID, apps[j].ID)
	})
}

func sortUsers(users []domain.User) {
	sort.Slice(users, func(i, j int) bool {
		return newestFirst(users[i].CreatedAt, users[j].CreatedAt, users[i].ID, users[j].ID)
	})
}
