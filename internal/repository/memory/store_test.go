package memory

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEmailIsUnique(t *testing.T) {
	users := NewStore().Users()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{Name: "A", Email: "a@example.com", Role: domain.RoleJobseeker}))
	err := users.Create(ctx, &domain.User{Name: "B", Email: "a@example.com", Role: domain.RoleEmployer})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestConcurrentApplyAdmitsExactlyOne(t *testing.T) {
	apps := NewStore().Applications()
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		succeeded int32
		dupes     int32
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := apps.Create(ctx, &domain.Application{JobID: "job-1", ApplicantID: "seeker-1", Status: domain.ApplicationStatusPending})
			switch {
			case err == nil:
				atomic.AddInt32(&succeeded, 1)
			case assert.ErrorIs(t, err, domain.ErrDuplicate):
				atomic.AddInt32(&dupes, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded)
	assert.Equal(t, int32(15), dupes)

	list, err := apps.ListByJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestJobsListNewestFirst(t *testing.T) {
	jobs := NewStore().Jobs()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, jobs.Create(ctx, &domain.Job{ID: "old", CreatedAt: base}))
	require.NoError(t, jobs.Create(ctx, &domain.Job{ID: "new", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, jobs.Create(ctx, &domain.Job{ID: "mid-b", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, jobs.Create(ctx, &domain.Job{ID: "mid-a", CreatedAt: base.Add(time.Minute)}))

	list, err := jobs.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, j := range list {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"new", "mid-b", "mid-a", "old"}, ids)
}

func TestDeleteJobLeavesApplications(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	job := &domain.Job{Title: "Go Developer"}
	require.NoError(t, store.Jobs().Create(ctx, job))
	require.NoError(t, store.Applications().Create(ctx, &domain.Application{JobID: job.ID, ApplicantID: "seeker-1"}))

	require.NoError(t, store.Jobs().Delete(ctx, job.ID))
	assert.ErrorIs(t, store.Jobs().Delete(ctx, job.ID), domain.ErrNotFound)

	apps, err := store.Applications().ListByApplicant(ctx, "seeker-1")
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user := &domain.User{Email: "c@example.com", Skills: []string{"go"}}
	require.NoError(t, store.Users().Create(ctx, user))

	got, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	got.Skills[0] = "rust"

	again, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, again.Skills)
}

func TestResetTokenLifecycle(t *testing.T) {
	users := NewStore().Users()
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	user := &domain.User{Email: "r@example.com", PasswordHash: "old"}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, users.SetResetToken(ctx, user.ID, "hash", now.Add(time.Hour)))

	_, err := users.GetByResetToken(ctx, "hash", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found, err := users.GetByResetToken(ctx, "hash", now)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, users.ResetPassword(ctx, user.ID, "new"))
	_, err = users.GetByResetToken(ctx, "hash", now)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.PasswordHash)
	assert.Nil(t, updated.ResetPasswordExpires)
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	apps := NewStore().Applications()
	err := apps.UpdateStatus(context.Background(), "missing", domain.ApplicationStatusHired, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
