package domain

import (
	"context"
	"strings"
	"unicode/utf8"
)

// User-facing messages of the submission endpoint.
const (
	MsgSubmitted     = "Project request submitted successfully! You will receive a confirmation email shortly."
	MsgMissingFields = "Missing required fields"
	MsgSubmitFailed  = "Failed to submit project request. Please try again."
	MsgInvalidBody   = "Invalid request body"
)

// Placeholders rendered for optional fields left empty.
const (
	PhoneNotProvided     = "Not provided"
	DeadlineNotSpecified = "Not specified"
	DeadlineToDiscuss    = "To be discussed"
)

// DescriptionExcerptLength is how many characters of the description the
// confirmation email echoes back.
const DescriptionExcerptLength = 100

// ProjectRequest is the payload a submitter sends from the request form.
// It lives for a single request and is never stored.
type ProjectRequest struct {
	Name        string `json:"name" validate:"notblank" example:"Ada Lovelace"`
	Email       string `json:"email" validate:"notblank" example:"ada@example.com"`
	Phone       string `json:"phone,omitempty" example:"+2348012345678"`
	ProjectType string `json:"projectType" validate:"notblank" example:"msc"`
	Description string `json:"description" validate:"notblank" example:"Analyze traffic patterns"`
	Deadline    string `json:"deadline,omitempty" example:"2026-12-31"`
}

// Normalize trims surrounding whitespace from every field.
func (r *ProjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ProjectType = strings.TrimSpace(r.ProjectType)
	r.Description = strings.TrimSpace(r.Description)
	r.Deadline = strings.TrimSpace(r.Deadline)
}

// MissingFields returns the JSON names of required fields that are blank.
func (r *ProjectRequest) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"projectType", r.ProjectType},
		{"description", r.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// PhoneOrDefault returns the phone number or "Not provided".
func (r *ProjectRequest) PhoneOrDefault() string {
	if r.Phone == "" {
		return PhoneNotProvided
	}
	return r.Phone
}

// DeadlineOr returns the deadline, or fallback when none was given.
func (r *ProjectRequest) DeadlineOr(fallback string) string {
	if r.Deadline == "" {
		return fallback
	}
	return r.Deadline
}

// DescriptionExcerpt returns the first 100 characters of the description,
// with "..." appended only when the description is longer than that.
func (r *ProjectRequest) DescriptionExcerpt() string {
	if utf8.RuneCountInString(r.Description) <= DescriptionExcerptLength {
		return r.Description
	}
	runes := []rune(r.Description)
	return string(runes[:DescriptionExcerptLength]) + "..."
}

// SubmissionOutcome is the successful result of a submission. Failures are
// reported as *apperror.AppError.
type SubmissionOutcome struct {
	Message string `json:"message"`
}

// ProjectType is one entry of the closed set of categories offered by the form.
type ProjectType struct {
	Value string `json:"value" mapstructure:"value"`
	Label string `json:"label" mapstructure:"label"`
	Price string `json:"price" mapstructure:"price"`
}

// OptionLabel is the text shown in the form's select, e.g. "BSc Project (₦75,000)".
func (p ProjectType) OptionLabel() string {
	if p.Price == "" {
		return p.Label
	}
	return p.Label + " (" + p.Price + ")"
}

// DefaultProjectTypes is the catalogue used when no site file overrides it.
func DefaultProjectTypes() []ProjectType {
	return []ProjectType{
		{Value: "bsc", Label: "BSc Project", Price: "₦75,000"},
		{Value: "msc", Label: "MSc Project", Price: "₦200,000"},
		{Value: "phd", Label: "PhD Research", Price: "₦350,000"},
		{Value: "other", Label: "Other", Price: "Custom Quote"},
	}
}

// ProjectRequestUsecase defines the submission operation.
type ProjectRequestUsecase interface {
	// Submit validates the request and sends the notification and
	// confirmation emails, in that order.
	Submit(ctx context.Context, req *ProjectRequest) (*SubmissionOutcome, error)
}
