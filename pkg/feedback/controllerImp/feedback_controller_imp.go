package controllerImp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// FeedbackCtrl forwards user feedback to the configured issue tracker.
type FeedbackCtrl struct {
	repo  string // owner/repo
	token string
	httpc *http.Client
	base  string
}

func New(repo, token string) *FeedbackCtrl {
	return &FeedbackCtrl{
		repo:  repo,
		token: token,
		httpc: &http.Client{Timeout: 15 * time.Second},
		base:  "https://api.github.com",
	}
}

// WithBaseURL points the controller at a different tracker endpoint (tests).
func (h *FeedbackCtrl) WithBaseURL(base string) *FeedbackCtrl {
	h.base = strings.TrimRight(base, "/")
	return h
}

type feedbackReq struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

func (h *FeedbackCtrl) Submit(c echo.Context) error {
	if h.repo == "" || h.token == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "feedback is not configured"})
	}
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}
	title := strings.TrimSpace(req.Subject)
	if title == "" {
		title = "User feedback"
	}

	body := map[string]any{
		"title": title,
		"body":  req.Message,
	}
	if req.Category != "" {
		body["labels"] = []string{req.Category}
	}
	b, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/repos/%s/issues", h.base, h.repo)
	httpReq, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	httpReq.Header.Set("Authorization", "Bearer "+h.token)
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpc.Do(httpReq)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": fmt.Sprintf("tracker returned %d", resp.StatusCode)})
	}

	var out struct {
		Number  int    `json:"number"`
		HTMLURL string `json:"html_url"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return c.JSON(http.StatusCreated, map[string]any{"issue": out.Number, "url": out.HTMLURL})
}
