// Package form holds the state of a project request form: the draft, the
// editing, submitting and submitted states, and the single submission call.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"project-request-backend/internal/domain"
	"project-request-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type State int

const (
	Editing State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// AlertText is what the user sees when a submission fails, whatever the cause.
const AlertText = "Failed to submit project request. Please check your internet connection and try again."

var (
	ErrIncomplete    = errors.New("required fields are missing")
	ErrBusy          = errors.New("a submission is already in progress")
	ErrSubmitted     = errors.New("the request has already been submitted")
	ErrUnknownField  = errors.New("unknown field")
	ErrInvalidChoice = errors.New("not one of the offered project types")
	ErrInvalidDate   = errors.New("deadline must be a date in YYYY-MM-DD format")
)

// Fields lists the form's inputs in display order.
var Fields = []string{"name", "email", "phone", "projectType", "description", "deadline"}

// SubmitError is returned by Submit when the call went out and failed. Its
// message is AlertText; the cause is available through errors.Unwrap.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string { return AlertText }

func (e *SubmitError) Unwrap() error { return e.Err }

// Submitter sends a request to the server. *client.Client implements it.
type Submitter interface {
	SubmitRequest(ctx context.Context, req *domain.ProjectRequest) (string, error)
}

type Form struct {
	mu        sync.Mutex
	state     State
	draft     domain.ProjectRequest
	submitted domain.ProjectRequest
	types     []domain.ProjectType
	nextSteps []string
	submitter Submitter
	validate  *validator.Validate
	onClose   func()
}

// New returns an empty form in the Editing state. onClose may be nil.
func New(submitter Submitter, types []domain.ProjectType, nextSteps []string, onClose func()) *Form {
	return &Form{
		state:     Editing,
		types:     types,
		nextSteps: nextSteps,
		submitter: submitter,
		validate:  validation.New(),
		onClose:   onClose,
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ProjectTypes returns the closed set of choices for the projectType field.
func (f *Form) ProjectTypes() []domain.ProjectType {
	return f.types
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() domain.ProjectRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Set updates one field of the draft. projectType must be empty or one of
// ProjectTypes, deadline must be empty or a YYYY-MM-DD date. Edits stay open
// while a submission is in flight; the call already sent is not affected.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Submitted {
		return ErrSubmitted
	}

	switch field {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "phone":
		f.draft.Phone = value
	case "projectType":
		if value != "" && !f.offers(value) {
			return fmt.Errorf("%w: %q", ErrInvalidChoice, value)
		}
		f.draft.ProjectType = value
	case "description":
		f.draft.Description = value
	case "deadline":
		if value != "" {
			if _, err := time.Parse(validation.DateLayout, value); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, value)
			}
		}
		f.draft.Deadline = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Missing returns the JSON names of the required fields still blank.
func (f *Form) Missing() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return validation.FailedFields(f.validate.Struct(&f.draft))
}

// Submit sends the draft once. It refuses without a network call when a
// required field is blank (ErrIncomplete), when a submission is in flight
// (ErrBusy) or after success (ErrSubmitted). On failure the form returns to
// Editing with the draft kept, including edits made meanwhile, and the
// error is a *SubmitError.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if err := f.submittableLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	if err := f.validate.Struct(&f.draft); err != nil {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(validation.FormatValidationErrors(err), ", "))
	}
	payload := f.draft
	f.state = Submitting
	f.mu.Unlock()

	_, err := f.submitter.SubmitRequest(ctx, &payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Editing
		return &SubmitError{Err: err}
	}
	f.state = Submitted
	f.submitted = payload
	return nil
}

// ConfirmationText is the success panel shown once submitted, or "" before.
func (f *Form) ConfirmationText() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Submitted {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Request Submitted Successfully!\n\n")
	fmt.Fprintf(&b, "Thank you for your project request, %s! We've received your %s project details "+
		"and have sent you a confirmation email at %s. Our team will review your requirements and "+
		"get back to you within 24 hours with a detailed quote.\n",
		f.submitted.Name, f.submitted.ProjectType, f.submitted.Email)
	if len(f.nextSteps) > 0 {
		b.WriteString("\nWhat's Next?\n")
		for _, step := range f.nextSteps {
			fmt.Fprintf(&b, "• %s\n", step)
		}
	}
	return b.String()
}

// Close dismisses the form. It is refused while a submission is in flight.
func (f *Form) Close() error {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	onClose := f.onClose
	f.mu.Unlock()

	if onClose != nil {
		onClose()
	}
	return nil
}

func (f *Form) submittableLocked() error {
	switch f.state {
	case Submitting:
		return ErrBusy
	case Submitted:
		return ErrSubmitted
	}
	return nil
}

func (f *Form) offers(value string) bool {
	for _, t := range f.types {
		if t.Value == value {
			return true
		}
	}
	return false
}
