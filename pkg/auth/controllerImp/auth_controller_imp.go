package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"growlog/entities"
	"growlog/pkg/auth/repository"
	"growlog/pkg/auth/token"
	"growlog/pkg/middleware"
)

type AuthCtrl struct {
	repo       repository.UserRepository
	secret     []byte
	ttl        time.Duration
	signupOpen bool
}

func New(repo repository.UserRepository, secret []byte, ttl time.Duration, signupOpen bool) *AuthCtrl {
	return &AuthCtrl{repo: repo, secret: secret, ttl: ttl, signupOpen: signupOpen}
}

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthCtrl) Register(c echo.Context) error {
	if !h.signupOpen {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "signup disabled"})
	}
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "valid email required"})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "password must be at least 8 characters"})
	}
	if _, err := h.repo.FindByEmail(req.Email); err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "email already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	// First account becomes the admin.
	role := entities.RoleUser
	if n, err := h.repo.Count(); err == nil && n == 0 {
		role = entities.RoleAdmin
	}

	u := &entities.User{Email: req.Email, PasswordHash: string(hash), Role: role}
	if err := h.repo.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.repo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	now := time.Now()
	u.LastLoginAt = &now
	if err := h.repo.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	signed, err := token.Issue(u, h.secret, h.ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": signed, "user": u})
}

func (h *AuthCtrl) Me(c echo.Context) error {
	u, err := h.repo.FindByID(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthCtrl) GetPreferences(c echo.Context) error {
	u, err := h.repo.FindByID(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return c.JSON(http.StatusOK, prefs)
}

func (h *AuthCtrl) PutPreferences(c echo.Context) error {
	var prefs map[string]any
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.repo.FindByID(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	u.Preferences = prefs
	if err := h.repo.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u.Preferences)
}
