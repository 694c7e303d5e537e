package handlers

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"ulco/internal/config"
	"ulco/internal/middleware"
	"ulco/internal/render"
	"ulco/internal/session"
)

// Auth groups the authentication handlers for the single env-provisioned
// admin account. The repositories perform no authorization checks of
// their own; everything admin-facing sits behind these sessions.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	cfg      *config.Config
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, cfg *config.Config) *Auth {
	return &Auth{
		renderer: renderer,
		sessions: sessions,
		cfg:      cfg,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// If already logged in, go straight to the dashboard.
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	a.renderer.Admin(w, r, "login", &render.PageData{
		Title: "Sign In",
		Data:  map[string]any{"RequireTOTP": a.cfg.AdminTOTPSecret != ""},
	})
}

// LoginSubmit processes the login form: email + password, plus the TOTP
// code when a secret is configured.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	code := r.FormValue("code")

	if !a.checkCredentials(email, password) {
		a.loginError(w, r, "Invalid email or password.")
		return
	}

	if a.cfg.AdminTOTPSecret != "" && !totp.Validate(code, a.cfg.AdminTOTPSecret) {
		a.loginError(w, r, "Invalid authentication code.")
		return
	}

	_, err := a.sessions.Create(r.Context(), w, &session.Data{
		Email:    email,
		Role:     "admin",
		TOTPDone: true,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		a.loginError(w, r, "An unexpected error occurred.")
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// Logout destroys the session and returns to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// TOTPSetup renders a QR code for enrolling an authenticator app with
// the configured TOTP secret. Requires an authenticated session.
func (a *Auth) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	if a.cfg.AdminTOTPSecret == "" {
		a.renderer.Admin(w, r, "twofa", &render.PageData{
			Title: "Two-Factor Authentication",
			Data:  map[string]any{"Enabled": false},
		})
		return
	}

	uri := fmt.Sprintf(
		"otpauth://totp/UL.CO:%s?secret=%s&issuer=UL.CO",
		url.QueryEscape(a.cfg.AdminEmail), a.cfg.AdminTOTPSecret,
	)
	png, err := qrcode.Encode(uri, qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Admin(w, r, "twofa", &render.PageData{
		Title: "Two-Factor Authentication",
		Data: map[string]any{
			"Enabled": true,
			"QRCode":  base64.StdEncoding.EncodeToString(png),
		},
	})
}

// checkCredentials validates the admin email and password. A bcrypt
// hash is preferred; the plaintext fallback exists for development.
func (a *Auth) checkCredentials(email, password string) bool {
	if subtle.ConstantTimeCompare([]byte(email), []byte(a.cfg.AdminEmail)) != 1 {
		return false
	}

	if a.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
}

// loginError re-renders the login form with an inline message.
func (a *Auth) loginError(w http.ResponseWriter, r *http.Request, msg string) {
	a.renderer.Admin(w, r, "login", &render.PageData{
		Title: "Sign In",
		Error: msg,
		Data:  map[string]any{"RequireTOTP": a.cfg.AdminTOTPSecret != ""},
	})
}
