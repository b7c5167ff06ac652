package festival

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate creates a date
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseDate(text)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// State represents festival lifecycle state
type State string

const (
	StateCreated         State = "CREATED"
	StateSubmission      State = "SUBMISSION"
	StateAssignment      State = "ASSIGNMENT"
	StateReview          State = "REVIEW"
	StateScheduling      State = "SCHEDULING"
	StateFinalSubmission State = "FINAL_SUBMISSION"
	StateDecision        State = "DECISION"
	StateAnnounced       State = "ANNOUNCED"
)

// Festival represents a festival
type Festival struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Venue       string `json:"venue,omitempty"`
	State       State  `json:"state,omitempty"`
	CreatedAt   Date   `json:"createdAt"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
}

// CreateFestivalRequest represents festival creation request
type CreateFestivalRequest struct {
	Name        string `json:"name"`
	Venue       string `json:"venue"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
	State       State  `json:"state,omitempty"`
	Description string `json:"description,omitempty"`
}

// Validate checks required fields and date order
func (r *CreateFestivalRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Venue) == "" {
		missing = append(missing, "venue")
	}
	if r.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if r.EndDate.IsZero() {
		missing = append(missing, "endDate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	if r.StartDate.After(r.EndDate.Time) {
		return fmt.Errorf("%w: start %v after end %v", ErrInvalidDates, r.StartDate, r.EndDate)
	}
	return nil
}

// Page represents a page of results
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

// PerformanceStatus represents performance lifecycle status
type PerformanceStatus string

const (
	PerformanceCreated   PerformanceStatus = "CREATED"
	PerformanceSubmitted PerformanceStatus = "SUBMITTED"
	PerformanceReviewed  PerformanceStatus = "REVIEWED"
	PerformanceApproved  PerformanceStatus = "APPROVED"
	PerformanceRejected  PerformanceStatus = "REJECTED"
	PerformanceScheduled PerformanceStatus = "SCHEDULED"
)

// Performance represents a festival performance
type Performance struct {
	ID                    int64             `json:"id,omitempty"`
	Name                  string            `json:"name"`
	Description           string            `json:"description,omitempty"`
	Genre                 string            `json:"genre"`
	Status                PerformanceStatus `json:"status,omitempty"`
	DurationSeconds       int64             `json:"duration,omitempty"`
	TechnicalRequirements []string          `json:"technicalRequirements,omitempty"`
	MerchandiseItems      []string          `json:"merchandiseItems,omitempty"`
	Setlist               []string          `json:"setlist,omitempty"`
	BandMembers           []*User           `json:"bandMembers,omitempty"`
	MainArtist            *User             `json:"mainArtist,omitempty"`
}

// Duration returns performance duration
func (p *Performance) Duration() time.Duration {
	return time.Duration(p.DurationSeconds) * time.Second
}

// User represents API user
type User struct {
	ID       int64    `json:"id,omitempty"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// HasRole returns true if user has role, with or without the ROLE_ prefix
func (u *User) HasRole(role string) bool {
	role = strings.TrimPrefix(strings.ToUpper(role), rolePrefix)
	for _, candidate := range u.Roles {
		if strings.TrimPrefix(strings.ToUpper(candidate), rolePrefix) == role {
			return true
		}
	}
	return false
}

const rolePrefix = "ROLE_"

// RegisterRequest represents user registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse represents login and register response
type AuthResponse struct {
	AccessToken string   `json:"accessToken"`
	Token       string   `json:"token"`
	Roles       []string `json:"roles"`
}

// BearerToken returns the issued token
func (r *AuthResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}
