package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	employer := domain.Identity{ID: "u1", Role: domain.RoleEmployer}

	assert.True(t, domain.HasRole(employer, domain.RoleEmployer))
	assert.True(t, domain.HasRole(employer, domain.RoleJobseeker, domain.RoleEmployer))
	assert.False(t, domain.HasRole(employer, domain.RoleJobseeker))
	assert.False(t, domain.HasRole(employer))
}

func TestIsOwner(t *testing.T) {
	assert.True(t, domain.IsOwner(domain.Identity{ID: "u1"}, "u1"))
	assert.False(t, domain.IsOwner(domain.Identity{ID: "u1"}, "u2"))
	assert.False(t, domain.IsOwner(domain.Identity{}, ""))
}

func TestJobPatchApplyOnlyTouchesSetFields(t *testing.T) {
	job := domain.Job{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Type:     domain.JobTypeFullTime,
		PostedBy: "owner",
		IsActive: true,
	}
	title := "Senior Backend Engineer"
	inactive := false

	domain.JobPatch{Title: &title, IsActive: &inactive}.Apply(&job)

	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.False(t, job.IsActive)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, domain.JobTypeFullTime, job.Type)
	assert.Equal(t, "owner", job.PostedBy)
}

func TestEnumValidity(t *testing.T) {
	for _, s := range domain.ApplicationStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, domain.ApplicationStatus("accepted").Valid())
	assert.True(t, domain.JobTypeInternship.Valid())
	assert.False(t, domain.JobType("freelance").Valid())
	assert.False(t, domain.Role("admin").Valid())
}
