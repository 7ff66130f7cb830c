package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"redhatters.link/configs"
	"redhatters.link/models"
	"redhatters.link/pkg/clock"
	"redhatters.link/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formRepoStub struct {
	mu      sync.Mutex
	created []models.FormSubmission
}

func (r *formRepoStub) Create(_ context.Context, submission *models.FormSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, *submission)
	return nil
}

func (r *formRepoStub) ListByType(_ context.Context, _ string, _ int) ([]models.FormSubmission, error) {
	return nil, nil
}

type relayCapture struct {
	contentType string
	body        []byte
	status      int
}

func newRelayServer(capture *relayCapture) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capture.contentType = r.Header.Get("Content-Type")
		capture.body, _ = io.ReadAll(r.Body)
		status := capture.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
}

func newFormFixture(cfg configs.AppConfig) (IFormService, *formRepoStub, *notifierRecorder) {
	repo := &formRepoStub{}
	notifier := &notifierRecorder{}
	clk := clock.NewManual(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := NewFormService(cfg, repo, notifier, clk, nil)
	return svc, repo, notifier
}

func TestSubmitJSONToAPI(t *testing.T) {
	capture := &relayCapture{}
	server := newRelayServer(capture)
	defer server.Close()

	svc, repo, notifier := newFormFixture(configs.AppConfig{Env: configs.EnvProduction, APIURL: server.URL})

	err := svc.Submit(context.Background(), "contact", "contact-us.html", map[string]string{
		"name":    "Rosemary",
		"email":   "rosemary@redhatterswa.com.au",
		"message": "Hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", capture.contentType)
	var sent map[string]string
	require.NoError(t, json.Unmarshal(capture.body, &sent))
	assert.Equal(t, "contact", sent["type"])
	assert.Equal(t, "contact-us.html", sent["source"])
	assert.NotEmpty(t, sent["timestamp"])

	require.Len(t, repo.created, 1)
	assert.False(t, repo.created[0].Fallback)
	assert.Equal(t, notify.SeveritySuccess, notifier.lastSeverity())
}

func TestSubmitFormEncodedToFallback(t *testing.T) {
	capture := &relayCapture{}
	server := newRelayServer(capture)
	defer server.Close()
	t.Setenv("FORMSPREE_newsletter", server.URL)

	svc, repo, _ := newFormFixture(configs.AppConfig{Env: configs.EnvFallback})

	err := svc.Submit(context.Background(), "newsletter", "index.html", map[string]string{
		"email": "rosemary@redhatterswa.com.au",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", capture.contentType)
	values, parseErr := url.ParseQuery(string(capture.body))
	require.NoError(t, parseErr)
	assert.Equal(t, "newsletter", values.Get("type"))
	assert.Equal(t, "rosemary@redhatterswa.com.au", values.Get("email"))

	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Fallback)
}

func TestSubmitValidation(t *testing.T) {
	svc, repo, notifier := newFormFixture(configs.AppConfig{Env: configs.EnvProduction})
	ctx := context.Background()

	cases := []struct {
		name     string
		formType string
		fields   map[string]string
	}{
		{"missing required", "contact", map[string]string{"name": "Rosemary"}},
		{"bad email", "newsletter", map[string]string{"email": "not-an-email"}},
		{"password mismatch", "password", map[string]string{
			"currentPassword": "oldpass1", "newPassword": "newpass1", "confirmPassword": "different",
		}},
		{"zero donation", "donation", map[string]string{
			"amount": "0", "donorName": "Rosemary", "donorEmail": "r@redhatterswa.com.au",
		}},
		{"short idea title", "hoot_idea", map[string]string{
			"ideaTitle": "Tea", "ideaDescription": "A long enough description of the idea.",
		}},
		{"short idea description", "hoot_idea", map[string]string{
			"ideaTitle": "High tea picnic", "ideaDescription": "too short",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Submit(ctx, tc.formType, "page.html", tc.fields)
			assert.ErrorIs(t, err, ErrFormValidation)
			assert.Equal(t, notify.SeverityWarning, notifier.lastSeverity())
		})
	}
	assert.Empty(t, repo.created, "rejected forms are never relayed or recorded")
}

func TestSubmitUnknownType(t *testing.T) {
	svc, _, _ := newFormFixture(configs.AppConfig{Env: configs.EnvProduction})
	err := svc.Submit(context.Background(), "mystery", "page.html", nil)
	assert.ErrorIs(t, err, ErrFormUnknownType)
}

func TestSubmitRelayFailureSingleAttempt(t *testing.T) {
	attempts := 0
	counting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer counting.Close()

	svc, repo, notifier := newFormFixture(configs.AppConfig{Env: configs.EnvProduction, APIURL: counting.URL})

	err := svc.Submit(context.Background(), "newsletter", "index.html", map[string]string{
		"email": "rosemary@redhatterswa.com.au",
	})
	assert.ErrorIs(t, err, ErrFormRelayFailed)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, repo.created)
	assert.Equal(t, notify.SeverityError, notifier.lastSeverity())
}
