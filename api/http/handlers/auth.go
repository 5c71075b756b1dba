package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/webstore/catalog-api/api/http/presenter"
	"github.com/webstore/catalog-api/pkg/auth"
	"github.com/webstore/catalog-api/pkg/logging"
)

type AuthHandler struct {
	useCase auth.UseCase
	log     logging.Logger
}

func NewAuthHandler(useCase auth.UseCase, log logging.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Signup handles account registration.
// @Summary Register account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} signupResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	if _, err := h.useCase.Register(c.Context(), req.Email, req.Password); err != nil {
		status, msg := presenter.Map(err)
		if status == http.StatusInternalServerError {
			h.log.Error(c.Context(), "signup failed", "error", err)
		}
		return presenter.Error(c, status, msg)
	}

	return presenter.JSON(c, http.StatusCreated, signupResponse{Message: "User registered successfully"})
}

// Login handles credential verification and token issuance.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	token, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := presenter.Map(err)
		if status == http.StatusInternalServerError {
			h.log.Error(c.Context(), "login failed", "error", err)
		}
		return presenter.Error(c, status, msg)
	}

	return presenter.JSON(c, http.StatusOK, loginResponse{Token: token})
}
