package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"time"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
	now     func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.JobResponse, error) {
	jobs, err := u.jobRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toJobResponses(jobs), nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.JobResponse, error) {
	job, err := u.findJob(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toJobResponse(job)
	return &resp, nil
}

// CreateJob publishes a new posting owned by the calling employer.
func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Identity, input domain.JobInput) (*domain.JobResponse, error) {
	if !domain.HasRole(actor, domain.RoleEmployer) {
		return nil, apperror.Forbidden("Only employers can create jobs")
	}
	if !input.Type.Valid() {
		return nil, apperror.BadRequest("Invalid job type")
	}

	requirements := input.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	now := u.now().UTC()
	job := &domain.Job{
		Title:        input.Title,
		Company:      input.Company,
		Location:     input.Location,
		Description:  input.Description,
		Requirements: requirements,
		Salary:       input.Salary,
		Type:         input.Type,
		PostedBy:     actor.ID,
		PostedDate:   now,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

// UpdateJob applies patch to a job owned by the caller. The owner and the
// posting date cannot be changed.
func (u *jobUsecase) UpdateJob(ctx context.Context, actor domain.Identity, id string, patch domain.JobPatch) (*domain.JobResponse, error) {
	if !domain.HasRole(actor, domain.RoleEmployer) {
		return nil, apperror.Forbidden("Only employers can update jobs")
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, apperror.BadRequest("Invalid job type")
	}

	job, err := u.findJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.IsOwner(actor, job.PostedBy) {
		return nil, apperror.Forbidden("Forbidden")
	}

	patch.Apply(job)
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	job.UpdatedAt = u.now().UTC()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

// DeleteJob removes a job owned by the caller. Applications to the job are
// left in place.
func (u *jobUsecase) DeleteJob(ctx context.Context, actor domain.Identity, id string) error {
	if !domain.HasRole(actor, domain.RoleEmployer) {
		return apperror.Forbidden("Only employers can delete jobs")
	}

	job, err := u.findJob(ctx, id)
	if err != nil {
		return err
	}
	if !domain.IsOwner(actor, job.PostedBy) {
		return apperror.Forbidden("Forbidden")
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) findJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func toJobResponse(job *domain.Job) domain.JobResponse {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return domain.JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: requirements,
		Salary:       job.Salary,
		Type:         job.Type,
		PostedBy:     job.PostedBy,
		PostedDate:   job.PostedDate,
		IsActive:     job.IsActive,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}

func toJobResponses(jobs []domain.Job) []domain.JobResponse {
	out := make([]domain.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return out
}
