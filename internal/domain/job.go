package domain

import (
	"context"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job is a posting owned by the employer in PostedBy.
type Job struct {
	ID           string
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements []string
	Salary       string
	Type         JobType
	PostedBy     string
	PostedDate   time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobInput carries the client-controlled fields of a new posting. Owner,
// posting date and active flag are always set by the server.
type JobInput struct {
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements []string
	Salary       string
	Type         JobType
}

// JobPatch is a partial update over the mutable job fields. Nil fields are
// left untouched.
type JobPatch struct {
	Title        *string
	Company      *string
	Location     *string
	Description  *string
	Requirements *[]string
	Salary       *string
	Type         *JobType
	IsActive     *bool
}

// Apply copies the set fields of p onto job.
func (p JobPatch) Apply(job *Job) {
	if p.Title != nil {
		job.Title = *p.Title
	}
	if p.Company != nil {
		job.Company = *p.Company
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.Description != nil {
		job.Description = *p.Description
	}
	if p.Requirements != nil {
		job.Requirements = *p.Requirements
	}
	if p.Salary != nil {
		job.Salary = *p.Salary
	}
	if p.Type != nil {
		job.Type = *p.Type
	}
	if p.IsActive != nil {
		job.IsActive = *p.IsActive
	}
}

// JobResponse is the public projection of a Job.
type JobResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       string    `json:"salary,omitempty"`
	Type         JobType   `json:"type"`
	PostedBy     string    `json:"postedBy"`
	PostedDate   time.Time `json:"postedDate"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// List returns every job, newest first.
	List(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]JobResponse, error)
	GetJob(ctx context.Context, id string) (*JobResponse, error)
	CreateJob(ctx context.Context, actor Identity, input JobInput) (*JobResponse, error)
	UpdateJob(ctx context.Context, actor Identity, id string, patch JobPatch) (*JobResponse, error)
	DeleteJob(ctx context.Context, actor Identity, id string) error
}
