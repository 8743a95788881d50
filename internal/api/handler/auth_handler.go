package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/core/ports"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgAllFieldsRequired   = "All fields are required"
	msgInvalidCredentials  = "Invalid credentials"
	msgUsernameTaken       = "Username already exists"
	msgPasswordTooLong     = "Password must be at most 72 bytes"
	msgServerConfig        = "Server configuration error"
	msgLoginSuccessful     = "Login successful"
	msgUserCreated         = "User created successfully"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Username  string `json:"username"  validate:"required"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type authResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := h.decode(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgCredentialsRequired})
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: msgInvalidCredentials})
		case errors.Is(err, domain.ErrMissingSecret):
			h.log.Error().Err(err).Msg("cannot mint token")
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: msgServerConfig})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: msgLoginSuccessful,
		Token:   res.Token,
		User:    res.User,
	})
}

// Signup creates an account and logs it in.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := h.decode(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgAllFieldsRequired})
	}

	res, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, messageResponse{Message: msgUsernameTaken})
		case errors.Is(err, domain.ErrPasswordTooLong):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: msgPasswordTooLong})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: msgAllFieldsRequired})
		case errors.Is(err, domain.ErrMissingSecret):
			h.log.Error().Err(err).Msg("cannot mint token")
			return c.JSON(http.StatusInternalServerError, messageResponse{Message: msgServerConfig})
		}
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message: msgUserCreated,
		Token:   res.Token,
		User:    res.User,
	})
}

func (h *AuthHandler) decode(c echo.Context, req any) error {
	if err := bindJSON(c, req); err != nil {
		h.log.Debug().Err(err).Str("path", c.Path()).Msg("unreadable request body")
		return err
	}
	if err := c.Validate(req); err != nil {
		h.log.Debug().Err(err).Str("path", c.Path()).Msg("request validation failed")
		return err
	}
	return nil
}
