package types

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

type UserResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PhoneNumber     *string    `json:"phonenumber"`
	City            *string    `json:"city"`
	Country         *string    `json:"country"`
	Skills          []string   `json:"skills"`
	Interests       []string   `json:"interests"`
	Story           *string    `json:"story"`
	ProfileImageURL *string    `json:"profile_image_url"`
	LastLoginAt     *time.Time `json:"last_login_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type ProjectOwnerSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber *string `json:"phonenumber,omitempty"`
}

type EventResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	SlotsAvailable int       `json:"slots_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProjectResponse struct {
	ID                  string               `json:"id"`
	OwnerID             string               `json:"owner_id"`
	Title               string               `json:"title"`
	ShortDescription    string               `json:"short_description"`
	DetailedDescription string               `json:"detailed_description"`
	Category            string               `json:"category"`
	ProjectType         ProjectType          `json:"project_type"`
	Location            *string              `json:"location"`
	ImageURL            string               `json:"image_url"`
	SkillsNeeded        []string             `json:"skills_needed"`
	StartDate           string               `json:"start_date"`
	EndDate             string               `json:"end_date"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	Events              []EventResponse      `json:"events"`
	Owner               *ProjectOwnerSummary `json:"owner,omitempty"`
}

type ApplicationResponse struct {
	ID             string            `json:"id"`
	ProjectID      string            `json:"project_id"`
	VolunteerID    *string           `json:"volunteer_id"`
	VolunteerName  string            `json:"volunteer_name"`
	VolunteerEmail string            `json:"volunteer_email"`
	VolunteerPhone *string           `json:"volunteer_phone"`
	Skills         []string          `json:"skills"`
	Message        *string           `json:"message"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      time.Time         `json:"applied_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type VolunteerResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	VolunteerID string          `json:"volunteer_id"`
	Name        *string         `json:"name,omitempty"`
	Email       *string         `json:"email,omitempty"`
	Skills      []string        `json:"skills"`
	Status      VolunteerStatus `json:"status"`
	JoinedAt    *time.Time      `json:"joined_at"`
}

type AnalyticsOverview struct {
	TotalProjects     int `json:"total_projects"`
	TotalEvents       int `json:"total_events"`
	TotalVolunteers   int `json:"total_volunteers"`
	TotalHours        int `json:"total_hours"`
	TotalApplications int `json:"total_applications"`
	TotalImpact       int `json:"total_impact"`
}

// NamedCount is one bar of a category or skill chart.
type NamedCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type MonthlyHoursPoint struct {
	Month string `json:"month"`
	Hours int    `json:"hours"`
}

type ApplicationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
