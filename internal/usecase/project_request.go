package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project-request-backend/internal/domain"
	"project-request-backend/pkg/apperror"
	"project-request-backend/pkg/audit"
	"project-request-backend/pkg/email"
	"project-request-backend/pkg/logger"
	"project-request-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Dispatch stages reported by DispatchError.
const (
	StageNotification = "notification"
	StageConfirmation = "confirmation"
)

// DispatchError records which of the two emails could not be composed or
// sent. A confirmation failure means the notification already went out.
type DispatchError struct {
	Stage string
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s email: %v", e.Stage, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// MailSettings describes who the emails come from and go to.
type MailSettings struct {
	From            email.Address
	BusinessMailbox email.Address
	Brand           string
	BusinessPhone   string
	NextSteps       []string
	SendTimeout     time.Duration
}

type projectRequestUsecase struct {
	transport email.Transport
	validate  *validator.Validate
	settings  MailSettings
	audit     *audit.Logger
	now       func() time.Time
}

// NewProjectRequestUsecase creates the submission usecase. auditLog may be nil.
func NewProjectRequestUsecase(transport email.Transport, validate *validator.Validate, settings MailSettings, auditLog *audit.Logger) domain.ProjectRequestUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &projectRequestUsecase{
		transport: transport,
		validate:  validate,
		settings:  settings,
		audit:     auditLog,
		now:       time.Now,
	}
}

// Submit validates the request, then sends the notification and the
// confirmation, in that order. Nothing is retried or rolled back: if the
// confirmation fails the notification has still been delivered.
func (uc *projectRequestUsecase) Submit(ctx context.Context, req *domain.ProjectRequest) (*domain.SubmissionOutcome, error) {
	requestID := domain.RequestIDFrom(ctx)
	subject := audit.HashValue(req.Email)

	uc.audit.Log(ctx, audit.Event{
		Event:       audit.EventRequestReceived,
		RequestID:   requestID,
		SubjectHash: subject,
		ProjectType: req.ProjectType,
	})

	if err := uc.validate.Struct(req); err != nil {
		uc.audit.Log(ctx, audit.Event{
			Event:       audit.EventRequestRejected,
			RequestID:   requestID,
			SubjectHash: subject,
			Fields:      validation.FailedFields(err),
		})
		return nil, apperror.BadRequest(domain.MsgMissingFields)
	}

	normalized := *req
	normalized.Normalize()

	if err := uc.dispatch(ctx, StageNotification, &normalized, uc.composeNotification); err != nil {
		return nil, uc.fail(ctx, requestID, subject, err)
	}
	uc.audit.Log(ctx, audit.Event{Event: audit.EventNotificationSent, RequestID: requestID, SubjectHash: subject})

	if err := uc.dispatch(ctx, StageConfirmation, &normalized, uc.composeConfirmation); err != nil {
		return nil, uc.fail(ctx, requestID, subject, err)
	}
	uc.audit.Log(ctx, audit.Event{Event: audit.EventConfirmationSent, RequestID: requestID, SubjectHash: subject})

	return &domain.SubmissionOutcome{Message: domain.MsgSubmitted}, nil
}

func (uc *projectRequestUsecase) dispatch(ctx context.Context, stage string, req *domain.ProjectRequest, compose func(*domain.ProjectRequest) (*email.Message, error)) error {
	msg, err := compose(req)
	if err != nil {
		return &DispatchError{Stage: stage, Err: err}
	}

	if uc.settings.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.SendTimeout)
		defer cancel()
	}

	if err := uc.transport.Send(ctx, msg); err != nil {
		return &DispatchError{Stage: stage, Err: err}
	}
	return nil
}

func (uc *projectRequestUsecase) fail(ctx context.Context, requestID, subject string, err error) error {
	stage := ""
	var de *DispatchError
	if errors.As(err, &de) {
		stage = de.Stage
	}
	logger.Log.ErrorContext(ctx, "Error submitting project request",
		"request_id", requestID,
		"stage", stage,
		"error", err,
	)
	uc.audit.Log(ctx, audit.Event{
		Event:       audit.EventDispatchFailed,
		RequestID:   requestID,
		SubjectHash: subject,
		Stage:       stage,
		Error:       err.Error(),
	})
	return apperror.Internal(domain.MsgSubmitFailed, err)
}

func (uc *projectRequestUsecase) composeNotification(req *domain.ProjectRequest) (*email.Message, error) {
	text, html, err := email.RenderNotification(email.NotificationData{
		Brand:       uc.settings.Brand,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.PhoneOrDefault(),
		ProjectType: req.ProjectType,
		Deadline:    req.DeadlineOr(domain.DeadlineNotSpecified),
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	return &email.Message{
		From:    uc.settings.From,
		To:      uc.settings.BusinessMailbox,
		ReplyTo: email.Address{Name: req.Name, Email: req.Email},
		Subject: fmt.Sprintf("New Project Request: %s - %s", req.ProjectType, req.Name),
		Text:    text,
		HTML:    html,
	}, nil
}

func (uc *projectRequestUsecase) composeConfirmation(req *domain.ProjectRequest) (*email.Message, error) {
	text, html, err := email.RenderConfirmation(email.ConfirmationData{
		Brand:         uc.settings.Brand,
		BrandEmail:    uc.settings.From.Email,
		BrandPhone:    uc.settings.BusinessPhone,
		Year:          uc.now().Year(),
		Name:          req.Name,
		ProjectType:   req.ProjectType,
		Deadline:      req.DeadlineOr(domain.DeadlineToDiscuss),
		DescriptionEx: req.DescriptionExcerpt(),
		NextSteps:     uc.settings.NextSteps,
	})
	if err != nil {
		return nil, err
	}

	return &email.Message{
		From:    uc.settings.From,
		To:      email.Address{Name: req.Name, Email: req.Email},
		Subject: fmt.Sprintf("Project Request Received - %s", uc.settings.Brand),
		Text:    text,
		HTML:    html,
	}, nil
}
