package handler

import (
	"clmi/internal/auth"
	"clmi/internal/delivery/http/dto"
	"clmi/internal/delivery/http/middleware"
	"clmi/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler serializes auth.Result verbatim: the success flag and the
// human-readable message are part of the wire contract, the status code
// only mirrors them.
type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Post("/signup", h.Signup)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res := h.svc.Login(c.Context(), req.Email, req.Password, req.RememberMe)
	return c.Status(statusFor(res)).JSON(res)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res := h.svc.Signup(c.Context(), auth.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		UserType:        req.UserType,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AgreeTerms:      req.AgreeToTerms,
	})
	if res.Success {
		return c.Status(fiber.StatusCreated).JSON(res)
	}
	return c.Status(statusFor(res)).JSON(res)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	res := h.svc.Logout(c.Context())
	return c.Status(fiber.StatusOK).JSON(res)
}

// Me reports the current session user, or 401 when anonymous.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	u := h.svc.CurrentUser(c.Context())
	if u == nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	return response.OK(c, u)
}

// Profile echoes the identity carried by a bearer token. It only runs
// behind the auth middleware, which populates the locals.
func (h *AuthHandler) Profile(c fiber.Ctx) error {
	return response.OK(c, map[string]any{
		"user_id": c.Locals(middleware.CtxUserIDKey),
		"email":   c.Locals(middleware.CtxEmailKey),
		"role":    c.Locals(middleware.CtxRoleKey),
	})
}

func statusFor(res auth.Result) int {
	if res.Success {
		return fiber.StatusOK
	}
	switch res.Message {
	case auth.MsgInvalidCredentials:
		return fiber.StatusUnauthorized
	case auth.MsgDuplicateEmail:
		return fiber.StatusConflict
	case auth.MsgLoginFailed, auth.MsgSignupFailed:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
