package models

import "github.com/danielhkuo/alumni-portal/validation"

// Mailing list opt-in values
const (
	MailingListYes = "Yes"
	MailingListNo  = "No"
)

// Campaign status constants
const (
	CampaignActive = "Active"
	CampaignClosed = "Closed"
)

// DateLayout is the storage and wire format for contribution dates.
const DateLayout = "2006-01-02"

// Request types

// UpdateContactRequest replaces an alumni's contact fields.
// A nil LinkedIn leaves the stored profile link untouched; "" clears it.
type UpdateContactRequest struct {
	Email       string  `json:"email" validate:"required,email,max=254"`
	Phone       string  `json:"phone" validate:"required,phone"`
	MailingList string  `json:"mailing_list" validate:"required,oneof=Yes No"`
	LinkedIn    *string `json:"linkedin,omitempty" validate:"omitnil,max=255,profile_url"`
}

// CreateContributionRequest is the body of POST /campaigns/{id}/contributions.
// The campaign comes from the path and the alumni from the session.
type CreateContributionRequest struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// NewContribution is a fully specified contribution submission.
type NewContribution struct {
	AlumniID   int64   `json:"alumni_id" validate:"gt=0"`
	CampaignID int64   `json:"campaign_id" validate:"gt=0"`
	Amount     float64 `json:"amount" validate:"gt=0,lte=10000000"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// Response types

type CreateContributionResponse struct {
	Contribution Contribution `json:"contribution"`
	Message      string       `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Domain types

type Alumni struct {
	ID          int64   `json:"alumni_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Major       *string `json:"grad_major,omitempty"`
	GradYear    *int64  `json:"grad_year,omitempty"`
	MailingList string  `json:"mailing_list"`
	LinkedIn    *string `json:"linkedin,omitempty"`
}

type Degree struct {
	ID        int64   `json:"degree_id"`
	AlumniID  int64   `json:"alumni_id"`
	Major     *string `json:"major,omitempty"`
	Minor     *string `json:"minor,omitempty"`
	School    *string `json:"school,omitempty"`
	Honors    *string `json:"honors,omitempty"`
	GradMonth *string `json:"grad_month,omitempty"`
	GradYear  *int64  `json:"grad_year,omitempty"`
}

type Employment struct {
	ID           int64   `json:"employment_id"`
	AlumniID     int64   `json:"alumni_id"`
	EmployerName *string `json:"employer_name,omitempty"`
	Title        *string `json:"title,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	StartYear    *int64  `json:"start_year,omitempty"`
	EndYear      *int64  `json:"end_year,omitempty"` // nil = current position
}

type Membership struct {
	ID        int64   `json:"membership_id"`
	AlumniID  int64   `json:"alumni_id"`
	OrgName   *string `json:"org_name,omitempty"`
	Role      *string `json:"role,omitempty"`
	StartYear *int64  `json:"start_year,omitempty"`
	EndYear   *int64  `json:"end_year,omitempty"`
}

type Campaign struct {
	ID         int64   `json:"campaign_id"`
	Name       string  `json:"campaign_name"`
	GoalAmount float64 `json:"goal_amount"`
	Status     string  `json:"status"`
}

// CampaignSummary is a campaign plus what has been raised toward its goal.
type CampaignSummary struct {
	Campaign
	Raised        float64 `json:"raised"`
	Contributions int64   `json:"contributions"`
}

type Contribution struct {
	ID         int64   `json:"contribution_id"`
	AlumniID   int64   `json:"alumni_id"`
	CampaignID int64   `json:"campaign_id"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
}

// ContributionDetail is one gift as shown on an alumni profile.
type ContributionDetail struct {
	ID           int64   `json:"contribution_id"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	CampaignID   int64   `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
}

// ContributionListing is one gift in the admin-wide contribution report.
type ContributionListing struct {
	ID           int64   `json:"contribution_id"`
	Date         string  `json:"date"`
	AlumniID     int64   `json:"alumni_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	CampaignName string  `json:"campaign_name"`
	Amount       float64 `json:"amount"`
}

type EmployerSummary struct {
	EmployerName *string `json:"employer_name"`
	Industry     *string `json:"industry"`
	NumAlumni    int64   `json:"num_alumni"`
}

// SummaryStats are the dashboard totals.
type SummaryStats struct {
	TotalAlumni        int64   `json:"total_alumni"`
	TotalEmployers     int64   `json:"total_employers"`
	TotalCampaigns     int64   `json:"total_campaigns"`
	TotalContributions float64 `json:"total_contributions"`
}

// AlumniProfile bundles everything the profile page shows.
type AlumniProfile struct {
	Alumni        Alumni               `json:"alumni"`
	Degrees       []Degree             `json:"degrees"`
	Employment    []Employment         `json:"employment"`
	Memberships   []Membership         `json:"memberships"`
	Contributions []ContributionDetail `json:"contributions,omitempty"`
	TotalGiven    *float64             `json:"total_given,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError is one rejected input field.
type FieldError = validation.FieldError
