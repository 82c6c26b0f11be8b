package usecase

import (
	"context"
	"fmt"
	"time"

	"go-forex-backend/config"
	"go-forex-backend/internal/domain"
	"go-forex-backend/pkg/email"
	"go-forex-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type submissionUsecase struct {
	dispatcher email.Dispatcher
	validate   *validator.Validate
	cfg        *config.Config
}

// NewSubmissionUsecase creates the submission pipeline shared by the three
// form endpoints.
func NewSubmissionUsecase(dispatcher email.Dispatcher, validate *validator.Validate, cfg *config.Config) domain.SubmissionUsecase {
	return &submissionUsecase{
		dispatcher: dispatcher,
		validate:   validate,
		cfg:        cfg,
	}
}

// SendContactMessage validates the submission, then sends two emails
// sequentially: the business notification first, the submitter confirmation
// second. The first failure aborts; the caller sees a single generic error
// with no partial-delivery detail.
func (uc *submissionUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	req.Normalize()
	if err := uc.validate.Struct(req); err != nil {
		return validation.Format(err)
	}

	submittedAt := email.TimestampIST(time.Now())

	notificationHTML, err := email.ContactNotificationHTML(email.ContactNotificationData{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		Message:     req.Message,
		SubmittedAt: submittedAt,
	})
	if err != nil {
		return fmt.Errorf("render contact notification: %w", err)
	}

	confirmationHTML, err := email.ContactConfirmationHTML(email.ContactConfirmationData{
		Name:    req.Name,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		return fmt.Errorf("render contact confirmation: %w", err)
	}

	notification := email.Message{
		From:     uc.cfg.EmailUser,
		To:       uc.cfg.CompanyEmail,
		Subject:  "New Contact Form Submission - " + req.Service,
		HTMLBody: notificationHTML,
	}
	if err := uc.dispatcher.Send(ctx, notification); err != nil {
		return fmt.Errorf("send business notification: %w", err)
	}

	confirmation := email.Message{
		From:     uc.cfg.EmailUser,
		To:       req.Email,
		Subject:  "Thank you for contacting Vallabh Forex",
		HTMLBody: confirmationHTML,
	}
	if err := uc.dispatcher.Send(ctx, confirmation); err != nil {
		return fmt.Errorf("send submitter confirmation: %w", err)
	}

	return nil
}

// SendQuoteRequest validates the submission and sends one notification to the
// business inbox. Optional fields render no line when absent.
func (uc *submissionUsecase) SendQuoteRequest(ctx context.Context, req *domain.QuoteRequest) error {
	req.Normalize()
	if err := uc.validate.Struct(req); err != nil {
		return validation.Format(err)
	}

	data := email.QuoteNotificationData{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Service:        req.Service,
		Amount:         req.Amount,
		AdditionalInfo: req.AdditionalInfo,
		RequestedAt:    email.TimestampIST(time.Now()),
	}
	if req.Currency != nil {
		data.Currency = *req.Currency
	}

	body, err := email.QuoteNotificationHTML(data)
	if err != nil {
		return fmt.Errorf("render quote notification: %w", err)
	}

	msg := email.Message{
		From:     uc.cfg.EmailUser,
		To:       uc.cfg.CompanyEmail,
		Subject:  "New Quote Request - " + req.Service,
		HTMLBody: body,
	}
	if err := uc.dispatcher.Send(ctx, msg); err != nil {
		return fmt.Errorf("send quote notification: %w", err)
	}

	return nil
}

// SendServiceInquiry validates the submission and sends one notification to
// the business inbox.
func (uc *submissionUsecase) SendServiceInquiry(ctx context.Context, req *domain.ServiceInquiryRequest) error {
	req.Normalize()
	if err := uc.validate.Struct(req); err != nil {
		return validation.Format(err)
	}

	body, err := email.InquiryNotificationHTML(email.InquiryNotificationData{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Service:    req.Service,
		InquiredAt: email.TimestampIST(time.Now()),
	})
	if err != nil {
		return fmt.Errorf("render inquiry notification: %w", err)
	}

	msg := email.Message{
		From:     uc.cfg.EmailUser,
		To:       uc.cfg.CompanyEmail,
		Subject:  "Service Inquiry - " + req.Service,
		HTMLBody: body,
	}
	if err := uc.dispatcher.Send(ctx, msg); err != nil {
		return fmt.Errorf("send inquiry notification: %w", err)
	}

	return nil
}
