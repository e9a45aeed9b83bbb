package memory

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/google/uuid"
)

type applicationRepo struct {
	store *Store
}

func (r *applicationRepo) Create(_ context.Context, app *domain.Application) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return domain.ErrDuplicate
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	s.applications[app.ID] = *app
	return nil
}

func (r *applicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.applications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &app, nil
}

func (r *applicationRepo) ListByJob(_ context.Context, jobID string) ([]domain.Application, error) {
	return r.filter(func(app domain.Application) bool { return app.JobID == jobID }), nil
}

func (r *applicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]domain.Application, error) {
	return r.filter(func(app domain.Application) bool { return app.ApplicantID == applicantID }), nil
}

func (r *applicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus, updatedAt time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return domain.ErrNotFound
	}
	app.Status = status
	app.UpdatedAt = updatedAt
	s.applications[id] = app
	return nil
}

func (r *applicationRepo) filter(match func(domain.Application) bool) []domain.Application {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := []domain.Application{}
	for _, app := range s.applications {
		if match(app) {
			apps = append(apps, app)
		}
	}
	sortApplications(apps)
	return apps
}
