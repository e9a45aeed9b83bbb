package memory

import (
	"context"
	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
)

type jobRepo struct {
	store *Store
}

func (r *jobRepo) Create(_ context.Context, job *domain.Job) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if _, exists := s.jobs[job.ID]; exists {
		return domain.ErrDuplicate
	}
	stored := *job
	stored.Requirements = cloneStrings(job.Requirements)
	s.jobs[job.ID] = stored
	return nil
}

func (r *jobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	job.Requirements = cloneStrings(job.Requirements)
	return &job, nil
}

func (r *jobRepo) List(_ context.Context) ([]domain.Job, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		job.Requirements = cloneStrings(job.Requirements)
		jobs = append(jobs, job)
	}
	sortJobs(jobs)
	return jobs, nil
}

func (r *jobRepo) Update(_ context.Context, job *domain.Job) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.jobs[job.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Title = job.Title
	stored.Company = job.Company
	stored.Location = job.Location
	stored.Description = job.Description
	stored.Requirements = cloneStrings(job.Requirements)
	stored.Salary = job.Salary
	stored.Type = job.Type
	stored.IsActive = job.IsActive
	stored.UpdatedAt = job.UpdatedAt
	s.jobs[job.ID] = stored
	return nil
}

// Delete removes only the job. Its applications are left in place.
func (r *jobRepo) Delete(_ context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}
