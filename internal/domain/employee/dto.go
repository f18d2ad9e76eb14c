package employee

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/Pascual-Eburi/employee-directory/internal/pkg/validator"
)

// allowedAvatarExts is the accepted upload extension set.
var allowedAvatarExts = []string{".jpg", ".gif", ".png"}

// EmployeeInput carries the mutable fields of a create or update request.
type EmployeeInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	JobPosition string
	DateHired   string // "2006-01-02"
}

// AvatarUpload is an uploaded avatar file plus its client-side filename.
type AvatarUpload struct {
	File     io.Reader
	Filename string
}

// Rules configures validation per call. The avatar-presence rule is switched
// off for updates that carry no new file; everything else always applies.
type Rules struct {
	AvatarRequired bool
}

// Validate applies the field rules in a fixed order and stops at the first
// failing field. The returned error is a validator.ValidationErrors holding
// exactly that one violation.
func (in EmployeeInput) Validate(avatar *AvatarUpload, rules Rules) error {
	if err := requireMax("first_name", in.FirstName, 20); err != nil {
		return err
	}
	if err := requireMax("last_name", in.LastName, 40); err != nil {
		return err
	}
	if err := requireMax("email", in.Email, 255); err != nil {
		return err
	}
	if err := requireMax("phone", in.Phone, 15); err != nil {
		return err
	}
	if err := requireMax("job_position", in.JobPosition, 50); err != nil {
		return err
	}

	if validator.IsEmpty(in.DateHired) {
		return violation("date_hired", "The date hired field is required.")
	}
	hired, ok := validator.IsValidDate(in.DateHired)
	if !ok {
		return violation("date_hired", "The date hired field must be a valid date.")
	}
	today := time.Now()
	endOfToday := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
	if hired.After(endOfToday) {
		return violation("date_hired", "The date hired field must be a date before or equal to today.")
	}

	if rules.AvatarRequired {
		if avatar == nil || avatar.File == nil || validator.IsEmpty(avatar.Filename) {
			return violation("avatar", "The avatar field is required.")
		}
		ext := strings.ToLower(filepath.Ext(avatar.Filename))
		if !validator.IsInSlice(ext, allowedAvatarExts) {
			return violation("avatar", "The avatar field must be a file of type: jpg, gif, png.")
		}
	}

	return nil
}

func requireMax(field, value string, max int) error {
	if validator.IsEmpty(value) {
		return violation(field, fmt.Sprintf("The %s field is required.", fieldLabel(field)))
	}
	if !validator.MaxLen(value, max) {
		return violation(field, fmt.Sprintf("The %s field must not be greater than %d characters.", fieldLabel(field), max))
	}
	return nil
}

func violation(field, message string) error {
	return validator.ValidationErrors{{Field: field, Message: message}}
}

func fieldLabel(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// EmployeeResponse is the full record returned by the show operation.
type EmployeeResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	JobPosition string `json:"job_position"`
	DateHired   string `json:"date_hired"`
	Avatar      string `json:"avatar"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func NewEmployeeResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		Email:       emp.Email,
		Phone:       emp.Phone,
		JobPosition: emp.JobPosition,
		DateHired:   emp.DateHired.Format("2006-01-02"),
		Avatar:      emp.Avatar,
		CreatedAt:   emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ListRow is one display row of the employee listing. It serializes as the
// positional array the data-table client consumes: index, avatar URL, full
// name, email, phone, job position, hire date, seniority in days, and the
// employee id that keys the row's edit/delete actions.
type ListRow struct {
	Index       int
	AvatarURL   string
	FullName    string
	Email       string
	Phone       string
	JobPosition string
	DateHired   string
	Seniority   int
	ID          string
}

func (r ListRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{
		r.Index,
		r.AvatarURL,
		r.FullName,
		r.Email,
		r.Phone,
		r.JobPosition,
		r.DateHired,
		r.Seniority,
		r.ID,
	})
}
