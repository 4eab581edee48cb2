package httpserver

import (
	"net/http"

	"legitlah-be/internal/auth"
	"legitlah-be/internal/logger"
	"legitlah-be/internal/middleware"
	"legitlah-be/internal/transport"

	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AccountType     string `json:"accountType"`
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	transport.Success(w, map[string]any{
		"page":       "login",
		"isLoggedIn": middleware.IdentityFrom(r.Context()).Authenticated(),
	})
}

func (h *AuthHandler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	transport.Success(w, map[string]any{"page": "admin-login"})
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	transport.Success(w, map[string]any{
		"page":         "register",
		"accountTypes": []string{"user", "seller"},
	})
}

// Login verifies credentials and places the session token in the user
// cookie. Admins logging in here get a regular user-session cookie; the
// admin cookie is only issued by AdminLogin.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, id, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		failFromError(w, err)
		return
	}

	auth.SetSessionCookie(w, auth.CookieUser, token)
	transport.Success(w, map[string]any{
		"message":    "Logged in successfully",
		"isLoggedIn": true,
		"role":       id.Role.String(),
		"account":    id.Account,
	})
}

// AdminLogin is the credential path behind /admin-login. Valid users
// without the admin role are rejected, not downgraded.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, id, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		failFromError(w, err)
		return
	}
	if !id.IsAdmin() {
		h.svc.Logout(token)
		transport.Fail(w, http.StatusUnauthorized, "Admin credentials required")
		return
	}

	auth.SetSessionCookie(w, auth.CookieAdmin, token)
	transport.Success(w, map[string]any{
		"message":    "Logged in successfully",
		"isLoggedIn": true,
		"role":       id.Role.String(),
		"account":    id.Account,
	})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, id, err := h.svc.Signup(r.Context(),
		req.Email, req.Password, req.ConfirmPassword, req.AccountType)
	if err != nil {
		failFromError(w, err)
		return
	}

	auth.SetSessionCookie(w, auth.CookieUser, token)
	transport.Success(w, map[string]any{
		"message":    "Account created successfully",
		"isLoggedIn": true,
		"role":       id.Role.String(),
		"account":    id.Account,
	})
}

// Logout destroys whichever sessions the request carries and clears both
// cookies.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookies := auth.ParseCookies(r.Header.Get("Cookie"))
	for _, name := range []string{auth.CookieUser, auth.CookieAdmin} {
		if token := cookies[name]; token != "" {
			h.svc.Logout(token)
		}
		auth.ClearSessionCookie(w, name)
	}

	logger.FromCtx(r.Context()).Info("user logged out",
		zap.String("account", middleware.IdentityFrom(r.Context()).Account))

	transport.Success(w, map[string]any{
		"message":    "Logged out successfully",
		"isLoggedIn": false,
	})
}
