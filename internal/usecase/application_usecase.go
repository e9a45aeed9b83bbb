package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"time"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	now             func() time.Time
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

// Apply submits the caller's application to an active job
func (uc *applicationUsecase) Apply(ctx context.Context, actor domain.Identity, jobID string, input domain.ApplyInput) (*domain.ApplicationResponse, error) {
	// 1. Only jobseekers apply
	if !domain.HasRole(actor, domain.RoleJobseeker) {
		return nil, apperror.Forbidden("Only jobseekers can apply to jobs")
	}

	// 2. Job must exist and be open
	job, err := uc.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, apperror.Conflict("Job is not accepting applications", domain.ErrJobClosed)
	}

	// 3. Snapshot the applicant's display name
	applicantName := "Unknown"
	applicant, err := uc.userRepo.GetByID(ctx, actor.ID)
	switch {
	case err == nil && applicant.Name != "":
		applicantName = applicant.Name
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, apperror.Internal(err)
	}

	// 4. Insert; the store owns the (job, applicant) uniqueness
	now := uc.now().UTC()
	app := &domain.Application{
		JobID:         job.ID,
		ApplicantID:   actor.ID,
		ApplicantName: applicantName,
		CoverLetter:   input.CoverLetter,
		Resume:        input.Resume,
		Status:        domain.ApplicationStatusPending,
		AppliedDate:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied for this job", domain.ErrAlreadyApplied)
		}
		return nil, apperror.Internal(err)
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

// ListMine returns the caller's own applications, newest first
func (uc *applicationUsecase) ListMine(ctx context.Context, actor domain.Identity) ([]domain.ApplicationResponse, error) {
	apps, err := uc.applicationRepo.ListByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toApplicationResponses(apps), nil
}

// ListForJob returns all applications to a job owned by the caller
func (uc *applicationUsecase) ListForJob(ctx context.Context, actor domain.Identity, jobID string) ([]domain.ApplicationResponse, error) {
	apps, err := uc.ownedJobApplications(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	return toApplicationResponses(apps), nil
}

// UpdateStatus moves an application to any of the five statuses. No
// transition graph is enforced.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actor domain.Identity, applicationID string, status domain.ApplicationStatus) (*domain.ApplicationResponse, error) {
	if !domain.HasRole(actor, domain.RoleEmployer) {
		return nil, apperror.Forbidden("Only employers can update application status")
	}
	if !status.Valid() {
		return nil, apperror.Validation("Validation failed", []apperror.FieldError{
			{Field: "status", Message: "must be one of: pending, reviewed, interview, hired, rejected"},
		})
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	// An application whose job was deleted has no owner left.
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if job == nil || !domain.IsOwner(actor, job.PostedBy) {
		return nil, apperror.Forbidden("Forbidden")
	}

	updatedAt := uc.now().UTC()
	if err := uc.applicationRepo.UpdateStatus(ctx, app.ID, status, updatedAt); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	app.Status = status
	app.UpdatedAt = updatedAt

	resp := toApplicationResponse(app)
	return &resp, nil
}

// ownedJobApplications checks role, existence and ownership of jobID, in that
// order, and loads its applications.
func (uc *applicationUsecase) ownedJobApplications(ctx context.Context, actor domain.Identity, jobID string) ([]domain.Application, error) {
	if !domain.HasRole(actor, domain.RoleEmployer) {
		return nil, apperror.Forbidden("Only employers can view job applications")
	}

	job, err := uc.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !domain.IsOwner(actor, job.PostedBy) {
		return nil, apperror.Forbidden("Forbidden")
	}

	apps, err := uc.applicationRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (uc *applicationUsecase) findJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func toApplicationResponse(app *domain.Application) domain.ApplicationResponse {
	return domain.ApplicationResponse{
		ID:            app.ID,
		JobID:         app.JobID,
		ApplicantID:   app.ApplicantID,
		ApplicantName: app.ApplicantName,
		CoverLetter:   app.CoverLetter,
		Resume:        app.Resume,
		Status:        app.Status,
		AppliedDate:   app.AppliedDate,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}

func toApplicationResponses(apps []domain.Application) []domain.ApplicationResponse {
	out := make([]domain.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}
	return out
}
