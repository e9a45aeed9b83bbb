package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

// Application statuses. Any status may follow any other; hired and
// rejected are terminal only by convention.
const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusHired     ApplicationStatus = "hired"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every status in workflow order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusInterview,
	ApplicationStatusHired,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Application is a jobseeker's application to a job. At most one exists per
// (JobID, ApplicantID) pair.
type Application struct {
	ID            string
	JobID         string
	ApplicantID   string
	ApplicantName string
	CoverLetter   string
	Resume        string
	Status        ApplicationStatus
	AppliedDate   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ApplyInput struct {
	CoverLetter string
	Resume      string
}

// ApplicationResponse is the public projection of an Application.
type ApplicationResponse struct {
	ID            string            `json:"id"`
	JobID         string            `json:"jobId"`
	ApplicantID   string            `json:"applicantId"`
	ApplicantName string            `json:"applicantName"`
	CoverLetter   string            `json:"coverLetter,omitempty"`
	Resume        string            `json:"resume,omitempty"`
	Status        ApplicationStatus `json:"status"`
	AppliedDate   time.Time         `json:"appliedDate"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// ApplicationExport is a rendered spreadsheet of a job's applications.
type ApplicationExport struct {
	Filename string
	Content  []byte
}

type ApplicationRepository interface {
	// Create inserts app and returns ErrDuplicate when the applicant already
	// applied to the job.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus, updatedAt time.Time) error
}

type ApplicationUsecase interface {
	// Jobseeker operations
	Apply(ctx context.Context, actor Identity, jobID string, input ApplyInput) (*ApplicationResponse, error)
	ListMine(ctx context.Context, actor Identity) ([]ApplicationResponse, error)

	// Employer operations
	ListForJob(ctx context.Context, actor Identity, jobID string) ([]ApplicationResponse, error)
	UpdateStatus(ctx context.Context, actor Identity, applicationID string, status ApplicationStatus) (*ApplicationResponse, error)
	ExportForJob(ctx context.Context, actor Identity, jobID string) (*ApplicationExport, error)
}
