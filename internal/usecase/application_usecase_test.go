package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type board struct {
	store *memory.Store
	jobs  domain.JobUsecase
	apps  domain.ApplicationUsecase
}

func newBoard(t *testing.T) *board {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Users().Create(context.Background(), &domain.User{
		ID:    jobseekerB.ID,
		Name:  "Bea Seeker",
		Email: "bea@example.com",
		Role:  domain.RoleJobseeker,
	}))
	return &board{
		store: store,
		jobs:  usecase.NewJobUsecase(store.Jobs()),
		apps:  usecase.NewApplicationUsecase(store.Applications(), store.Jobs(), store.Users()),
	}
}

func (b *board) postJob(t *testing.T) *domain.JobResponse {
	t.Helper()
	job, err := b.jobs.CreateJob(context.Background(), employerA, backendJob())
	require.NoError(t, err)
	return job
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a pending application with the applicant name", func(t *testing.T) {
		b := newBoard(t)
		job := b.postJob(t)

		app, err := b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "Bea Seeker", app.ApplicantName)
		assert.Equal(t, jobseekerB.ID, app.ApplicantID)
		assert.Empty(t, app.CoverLetter)
	})

	t.Run("Should refuse employers", func(t *testing.T) {
		b := newBoard(t)
		job := b.postJob(t)

		_, err := b.apps.Apply(ctx, employerC, job.ID, domain.ApplyInput{})
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("Should return NotFound for unknown jobs", func(t *testing.T) {
		b := newBoard(t)
		_, err := b.apps.Apply(ctx, jobseekerB, "missing", domain.ApplyInput{})
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("Should reject inactive jobs", func(t *testing.T) {
		b := newBoard(t)
		job := b.postJob(t)
		inactive := false
		_, err := b.jobs.UpdateJob(ctx, employerA, job.ID, domain.JobPatch{IsActive: &inactive})
		require.NoError(t, err)

		_, err = b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{})
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		assert.ErrorIs(t, err, domain.ErrJobClosed)
	})

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		b := newBoard(t)
		job := b.postJob(t)

		_, err := b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{})
		require.NoError(t, err)
		_, err = b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{CoverLetter: "again"})
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	})

	t.Run("Should let exactly one concurrent apply win", func(t *testing.T) {
		b := newBoard(t)
		job := b.postJob(t)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					succeeded++
				} else if apperror.KindOf(err) == apperror.KindConflict {
					conflicts++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 7, conflicts)
	})

	t.Run("Should fall back to Unknown when the applicant record is gone", func(t *testing.T) {
		b := newBoard(t)
		job := b.postJob(t)
		ghost := domain.Identity{ID: "ghost", Role: domain.RoleJobseeker}

		app, err := b.apps.Apply(ctx, ghost, job.ID, domain.ApplyInput{})
		require.NoError(t, err)
		assert.Equal(t, "Unknown", app.ApplicantName)
	})
}

func TestListForJob(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	job := b.postJob(t)
	_, err := b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{})
	require.NoError(t, err)

	t.Run("Should list applications for the owner", func(t *testing.T) {
		apps, err := b.apps.ListForJob(ctx, employerA, job.ID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "Bea Seeker", apps[0].ApplicantName)
	})

	t.Run("Should refuse jobseekers before looking up the job", func(t *testing.T) {
		_, err := b.apps.ListForJob(ctx, jobseekerB, "missing")
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("Should refuse other employers", func(t *testing.T) {
		_, err := b.apps.ListForJob(ctx, employerC, job.ID)
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("Should list the caller's own applications", func(t *testing.T) {
		mine, err := b.apps.ListMine(ctx, jobseekerB)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		none, err := b.apps.ListMine(ctx, employerC)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	job := b.postJob(t)
	app, err := b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{})
	require.NoError(t, err)

	t.Run("Should reject unknown statuses", func(t *testing.T) {
		_, err := b.apps.UpdateStatus(ctx, employerA, app.ID, "accepted")
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("Should refuse jobseekers", func(t *testing.T) {
		_, err := b.apps.UpdateStatus(ctx, jobseekerB, app.ID, domain.ApplicationStatusHired)
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("Should refuse employers who do not own the job", func(t *testing.T) {
		_, err := b.apps.UpdateStatus(ctx, employerC, app.ID, domain.ApplicationStatusHired)
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("Should return NotFound for unknown applications", func(t *testing.T) {
		_, err := b.apps.UpdateStatus(ctx, employerA, "missing", domain.ApplicationStatusHired)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("Should allow any transition", func(t *testing.T) {
		for _, status := range []domain.ApplicationStatus{
			domain.ApplicationStatusInterview,
			domain.ApplicationStatusHired,
			domain.ApplicationStatusPending,
			domain.ApplicationStatusRejected,
			domain.ApplicationStatusReviewed,
		} {
			updated, err := b.apps.UpdateStatus(ctx, employerA, app.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}

		apps, err := b.apps.ListForJob(ctx, employerA, job.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusReviewed, apps[0].Status)
	})

	t.Run("Should accept re-setting the current status", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			updated, err := b.apps.UpdateStatus(ctx, employerA, app.ID, domain.ApplicationStatusReviewed)
			require.NoError(t, err)
			assert.Equal(t, domain.ApplicationStatusReviewed, updated.Status)
		}

		apps, err := b.apps.ListForJob(ctx, employerA, job.ID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, domain.ApplicationStatusReviewed, apps[0].Status)
	})

	t.Run("Should refuse updates once the job is deleted", func(t *testing.T) {
		require.NoError(t, b.jobs.DeleteJob(ctx, employerA, job.ID))

		_, err := b.apps.UpdateStatus(ctx, employerA, app.ID, domain.ApplicationStatusHired)
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

		mine, err := b.apps.ListMine(ctx, jobseekerB)
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})
}

func TestApplyMasksStoreFailures(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	users := new(MockUserRepo)
	apps := new(MockApplicationRepo)

	jobs.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", PostedBy: employerA.ID, IsActive: true}, nil)
	users.On("GetByID", mock.Anything, jobseekerB.ID).Return(&domain.User{ID: jobseekerB.ID, Name: "Bea"}, nil)
	apps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(errors.New("socket closed"))

	uc := usecase.NewApplicationUsecase(apps, jobs, users)
	_, err := uc.Apply(ctx, jobseekerB, "job-1", domain.ApplyInput{})

	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	apps.AssertExpectations(t)
}

func TestExportForJob(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	job := b.postJob(t)
	_, err := b.apps.Apply(ctx, jobseekerB, job.ID, domain.ApplyInput{CoverLetter: "Hire me"})
	require.NoError(t, err)

	_, err = b.apps.ExportForJob(ctx, employerC, job.ID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	export, err := b.apps.ExportForJob(ctx, employerA, job.ID)
	require.NoError(t, err)
	assert.Contains(t, export.Filename, job.ID)
	assert.Contains(t, export.Filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(export.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "APPLICANT", rows[0][0])
	assert.Equal(t, "Bea Seeker", rows[1][0])
	assert.Equal(t, "pending", rows[1][1])
	assert.Equal(t, "Hire me", rows[1][3])
}
