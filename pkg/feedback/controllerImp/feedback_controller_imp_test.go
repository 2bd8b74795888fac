package controllerImp_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"growlog/pkg/feedback/controllerImp"
)

func submit(t *testing.T, h *controllerImp.FeedbackCtrl, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Submit(e.NewContext(req, rec)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	return rec
}

func TestSubmitForwardsToTracker(t *testing.T) {
	var got struct {
		path   string
		auth   string
		accept string
		body   map[string]any
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		got.accept = r.Header.Get("Accept")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got.body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number": 7, "html_url": "https://example.com/issues/7"}`))
	}))
	defer srv.Close()

	h := controllerImp.New("acme/growlog", "tkn").WithBaseURL(srv.URL)
	rec := submit(t, h, `{"subject":"Bug","message":"chart is blank","category":"bug"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d %s", rec.Code, rec.Body.String())
	}
	if got.path != "/repos/acme/growlog/issues" {
		t.Errorf("path = %q", got.path)
	}
	if got.auth != "Bearer tkn" {
		t.Errorf("auth = %q", got.auth)
	}
	if got.accept != "application/vnd.github+json" {
		t.Errorf("accept = %q", got.accept)
	}
	if got.body["title"] != "Bug" || got.body["body"] != "chart is blank" {
		t.Errorf("forwarded body = %v", got.body)
	}
	labels, _ := got.body["labels"].([]any)
	if len(labels) != 1 || labels[0] != "bug" {
		t.Errorf("labels = %v, want [bug]", got.body["labels"])
	}

	var out struct {
		Issue int    `json:"issue"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Issue != 7 || out.URL != "https://example.com/issues/7" {
		t.Errorf("response = %+v", out)
	}
}

func TestSubmitDefaultsSubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["title"] != "User feedback" {
			t.Errorf("title = %v, want default", body["title"])
		}
		if _, has := body["labels"]; has {
			t.Error("empty category still produced labels")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := controllerImp.New("acme/growlog", "tkn").WithBaseURL(srv.URL)
	if rec := submit(t, h, `{"message":"just a note"}`); rec.Code != http.StatusCreated {
		t.Errorf("code = %d", rec.Code)
	}
}

func TestSubmitValidation(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		h := controllerImp.New("", "")
		if rec := submit(t, h, `{"message":"hi"}`); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("code = %d, want 503", rec.Code)
		}
	})

	t.Run("blank message", func(t *testing.T) {
		h := controllerImp.New("acme/growlog", "tkn")
		if rec := submit(t, h, `{"message":"   "}`); rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", rec.Code)
		}
	})
}

func TestSubmitUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	h := controllerImp.New("acme/growlog", "bad-token").WithBaseURL(srv.URL)
	if rec := submit(t, h, `{"message":"hi"}`); rec.Code != http.StatusBadGateway {
		t.Errorf("code = %d, want 502", rec.Code)
	}
}
