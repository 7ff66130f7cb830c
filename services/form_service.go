package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"redhatters.link/configs"
	"redhatters.link/configs/configslog"
	"redhatters.link/models"
	"redhatters.link/pkg/clock"
	"redhatters.link/pkg/notify"
	"redhatters.link/repositories"

	"github.com/dghubble/sling"
	"go.uber.org/zap"
)

// FormServiceError is the error type of form relay operations.
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormUnknownType  FormServiceError = "unknown form type"
	ErrFormValidation   FormServiceError = "form validation failed"
	ErrFormRelayFailed  FormServiceError = "form relay failed"
	ErrFormPersistError FormServiceError = "form submission could not be recorded"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// requiredFormFields per form type. Unknown types are rejected outright.
var requiredFormFields = map[string][]string{
	"contact":         {"name", "email", "message"},
	"newsletter":      {"email"},
	"registration":    {"firstName", "lastName", "email"},
	"profile":         {"firstName", "lastName"},
	"password":        {"currentPassword", "newPassword", "confirmPassword"},
	"settings":        {},
	"donation":        {"amount", "donorName", "donorEmail"},
	"hoot_idea":       {"ideaTitle", "ideaDescription"},
	"news_submission": {"title", "content"},
}

// successToasts per form type, shown after the relay accepts the payload.
var successToasts = map[string]string{
	"contact":         "Thank you for your message! We will get back to you soon.",
	"newsletter":      "Thank you for subscribing to our newsletter!",
	"registration":    "Thank you for your interest in joining Red Hatters WA! We will contact you soon.",
	"profile":         "Profile updated successfully!",
	"password":        "Password updated successfully!",
	"settings":        "Settings saved successfully!",
	"donation":        "Thank you for your donation! You will be redirected to our secure payment processor.",
	"hoot_idea":       "Thank you for sharing your Hoot Idea! We'll review it and may feature it on our website.",
	"news_submission": "Thank you for your submission! We will review it shortly.",
}

// IFormService validates and relays form payloads.
type IFormService interface {
	Submit(ctx context.Context, formType, source string, fields map[string]string) error
}

// FormService relays forms in a single attempt: JSON to the first-party API,
// or form-encoded to the Formspree fallback when the deployment runs in
// fallback mode. No retries; a failure surfaces as an error toast.
type FormService struct {
	cfg      configs.AppConfig
	repo     repositories.IFormRepository
	notifier notify.Notifier
	clock    clock.Clock
	client   *http.Client
}

// NewFormService wires a FormService. client may be nil for the default.
func NewFormService(cfg configs.AppConfig, repo repositories.IFormRepository, notifier notify.Notifier, clk clock.Clock, client *http.Client) IFormService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &FormService{cfg: cfg, repo: repo, notifier: notifier, clock: clk, client: client}
}

// Submit validates fields for the form type, adds the routing metadata the
// old site attached client-side, and performs the one-shot relay.
func (s *FormService) Submit(ctx context.Context, formType, source string, fields map[string]string) error {
	required, known := requiredFormFields[formType]
	if !known {
		return ErrFormUnknownType
	}
	if err := s.validate(formType, required, fields); err != nil {
		return err
	}

	payload := make(map[string]string, len(fields)+3)
	for k, v := range fields {
		payload[k] = v
	}
	payload["type"] = formType
	payload["timestamp"] = s.clock.Now().UTC().Format(time.RFC3339)
	payload["source"] = source
	if formType == "donation" {
		payload["currency"] = "AUD"
		payload["status"] = "pending"
	}

	fallback := s.cfg.FallbackMode()
	endpoint := s.cfg.APIEndpoint(formType)
	if fallback {
		endpoint = s.cfg.FormspreeURL(formType)
	}

	if err := s.relay(endpoint, fallback, payload); err != nil {
		configslog.Log.Error("form relay failed",
			zap.String("form_type", formType), zap.String("endpoint", endpoint), zap.Error(err))
		s.notifier.Notify(fmt.Sprintf("Failed to submit %s form. Please try again later.", formType),
			notify.SeverityError, configs.ToastDuration)
		return ErrFormRelayFailed
	}

	raw, _ := json.Marshal(payload)
	submission := &models.FormSubmission{
		FormType: formType,
		Source:   source,
		Endpoint: endpoint,
		Fallback: fallback,
		Payload:  string(raw),
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		// The relay already succeeded; losing the audit row is not fatal.
		configslog.Log.Warn("form audit record failed", zap.String("form_type", formType), zap.Error(err))
	}

	s.notifier.Notify(successToasts[formType], notify.SeveritySuccess, configs.ToastDuration)
	return nil
}

func (s *FormService) validate(formType string, required []string, fields map[string]string) error {
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			return s.reject(fmt.Sprintf("Please fill in all required fields (%s is missing).", name))
		}
	}
	for _, name := range []string{"email", "donorEmail", "yourEmail"} {
		if v := fields[name]; v != "" && !emailPattern.MatchString(v) {
			return s.reject("Please enter a valid email address.")
		}
	}

	switch formType {
	case "password":
		if fields["newPassword"] != fields["confirmPassword"] {
			return s.reject("New passwords do not match. Please try again.")
		}
	case "donation":
		amount, err := strconv.ParseFloat(fields["amount"], 64)
		if err != nil || amount <= 0 {
			return s.reject("Please enter a valid donation amount.")
		}
	case "hoot_idea":
		if len(fields["ideaTitle"]) < 5 {
			return s.reject("Idea title must be at least 5 characters long.")
		}
		if len(fields["ideaDescription"]) < 20 {
			return s.reject("Description must be at least 20 characters long.")
		}
	}
	return nil
}

// reject surfaces a validation problem as a warning toast, never as a
// user-visible failure.
func (s *FormService) reject(message string) error {
	s.notifier.Notify(message, notify.SeverityWarning, configs.ToastDuration)
	return ErrFormValidation
}

// relay performs the single HTTP attempt. Fallback relays are form-encoded,
// first-party relays JSON, matching what each endpoint expects.
func (s *FormService) relay(endpoint string, fallback bool, payload map[string]string) error {
	base := sling.New().Client(s.client).Post(endpoint).Set("Accept", "application/json")

	var resp *http.Response
	var err error
	if fallback {
		form := url.Values{}
		for k, v := range payload {
			form.Set(k, v)
		}
		resp, err = base.
			Set("Content-Type", "application/x-www-form-urlencoded").
			Body(strings.NewReader(form.Encode())).
			ReceiveSuccess(nil)
	} else {
		resp, err = base.BodyJSON(payload).ReceiveSuccess(nil)
	}
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

var _ IFormService = (*FormService)(nil)
