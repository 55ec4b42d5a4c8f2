package auth

import (
	"errors"
	"net/http"

	"placementhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session"

// CookieOptions control how the session cookie is issued.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   int // seconds
}

// Handler manages all HTTP interactions for signup, login and sessions.
type Handler struct {
	service *Service
	cookies CookieOptions
}

func NewHandler(service *Service, cookies CookieOptions) *Handler {
	return &Handler{service: service, cookies: cookies}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/profile", h.Profile)
		authGroup.GET("/check", h.Check)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email and a password of at least 8 characters are required")
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "User already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Server error on signup")
		return
	}

	response.Message(c, http.StatusCreated, "Signup successful")
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password must be provided")
		return
	}

	user, sess, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Server error on login")
		return
	}

	h.setSessionCookie(c, sess.Token, h.cookies.MaxAge)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *Handler) Profile(c *gin.Context) {
	sess, ok := h.service.Current(h.sessionToken(c))
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not logged in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": sess})
}

func (h *Handler) Check(c *gin.Context) {
	_, ok := h.service.Current(h.sessionToken(c))
	c.JSON(http.StatusOK, gin.H{"loggedIn": ok})
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(h.sessionToken(c))
	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

func (h *Handler) sessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", h.cookies.Secure, true)
}
