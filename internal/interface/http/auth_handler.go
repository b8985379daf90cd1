package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/formgate/formgate/internal/application"
	"github.com/formgate/formgate/pkg/response"
	"github.com/formgate/formgate/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Email carries no format tag and password/token carry no presence tags:
// the service validates credentials only after the account lookup, so the
// lookup outcome wins over payload problems.
type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Mode     string `json:"mode" binding:"required,oneof=password google"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Mode     string `json:"mode" binding:"required,oneof=password google"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		Mode:     application.Mode(req.Mode),
		Password: req.Password,
		Token:    req.Token,
	})
	if err != nil {
		status, msg := authErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).WithField("email", req.Email).Error("signup failed")
		}
		response.Error[any](c, status, msg, nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token":         res.Token,
		"is_first_time": true,
	}, "Signup successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Mode:     application.Mode(req.Mode),
		Password: req.Password,
		Token:    req.Token,
	})
	if err != nil {
		status, msg := authErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).WithField("email", req.Email).Error("login failed")
		}
		response.Error[any](c, status, msg, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":         res.Token,
		"is_first_time": false,
	}, "Old User")
}

// authErrorStatus maps service errors to HTTP statuses and client-facing
// messages.
func authErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound, "User doesn't exist"
	case errors.Is(err, application.ErrPasswordTooShort):
		return http.StatusBadRequest, "Password must be at least 6 characters"
	case errors.Is(err, application.ErrMissingPassword):
		return http.StatusBadRequest, "Password is required"
	case errors.Is(err, application.ErrMissingToken):
		return http.StatusBadRequest, "Token is required"
	case errors.Is(err, application.ErrNoPasswordAuth):
		return http.StatusUnauthorized, "User doesn't have password authentication"
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect password"
	case errors.Is(err, application.ErrNoExternalAuth):
		return http.StatusUnauthorized, "User doesn't have google authentication"
	case errors.Is(err, application.ErrExternalMismatch):
		return http.StatusUnauthorized, "Token does not match account credential"
	case errors.Is(err, application.ErrEmailMismatch):
		return http.StatusBadRequest, "Token email does not match provided email"
	case errors.Is(err, application.ErrExternalToken):
		return http.StatusBadRequest, "Invalid token"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
