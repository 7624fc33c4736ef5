package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/session"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/telemetry"
)

type authRoutes struct {
	codec    *session.Codec
	settings session.CookieSettings
}

// registerAuthRoutes attaches cookie issuance and logout to the public group
// and the identity probes to the authenticated group.
func registerAuthRoutes(public, protected *gin.RouterGroup, codec *session.Codec, settings session.CookieSettings) {
	a := &authRoutes{codec: codec, settings: settings}
	public.POST("/set-cookie", a.setCookie)
	public.POST("/logout", a.logout)
	protected.GET("/protected", a.protected)
	protected.GET("/me", a.me)
}

type sessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type setCookieRequest struct {
	Session struct {
		User *sessionUser `json:"user"`
	} `json:"session"`
	User *sessionUser `json:"user"`
}

// setCookie exchanges an upstream session payload for a backend-signed cookie.
func (a *authRoutes) setCookie(c *gin.Context) {
	var req setCookieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "missing user in session")
		return
	}

	user := req.Session.User
	if user == nil {
		user = req.User
	}
	if user == nil || user.ID == "" {
		respond.Error(c, http.StatusBadRequest, "missing user in session")
		return
	}

	token, err := a.codec.Issue(user.ID, user.Email)
	if err != nil {
		telemetry.Error("auth.issue_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "could not create session")
		return
	}

	session.SetCookie(c.Writer, token, a.settings)
	respond.OK(c, gin.H{"detail": "cookie set"})
}

func (a *authRoutes) logout(c *gin.Context) {
	session.ClearCookie(c.Writer, a.settings)
	respond.OK(c, gin.H{"detail": "logged out"})
}

func (a *authRoutes) protected(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)
	respond.OK(c, gin.H{
		"message": "Authenticated!",
		"user":    principal,
	})
}

func (a *authRoutes) me(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)
	respond.OK(c, gin.H{"user": principal})
}
