// Package middleware provides authentication, rate limiting, logging and tracing middleware.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"smartlife/internal/auth"
	"smartlife/internal/models"
	"smartlife/internal/observability"

	"github.com/gofiber/fiber/v2"
)

const identityLocal = "identity"

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(token string) (uint, error)
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID uint
}

// IdentityFrom returns the identity attached by AuthGuard.
func IdentityFrom(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityLocal).(Identity)
	return id, ok && id.UserID != 0
}

// AuthGuard rejects any request without a valid bearer token. Every rejection gets the same
// 401 body; the reason is only logged.
func AuthGuard(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, reason := bearerToken(c.Get(fiber.HeaderAuthorization))
		if reason != "" {
			return reject(c, reason, nil)
		}

		userID, err := verifier.VerifyToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return reject(c, observability.ReasonExpired, err)
			}
			return reject(c, observability.ReasonInvalid, err)
		}

		c.Locals(identityLocal, Identity{UserID: userID})
		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))

		return c.Next()
	}
}

func bearerToken(header string) (string, string) {
	if header == "" {
		return "", observability.ReasonMissing
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", observability.ReasonMalformed
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", observability.ReasonMalformed
	}
	return token, ""
}

func reject(c *fiber.Ctx, reason string, err error) error {
	observability.AuthRejections.WithLabelValues(reason).Inc()

	attrs := []any{slog.String("reason", reason), slog.String("path", c.Path())}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	Logger.WarnContext(c.UserContext(), "request rejected by auth guard", attrs...)

	return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError("Unauthorized"))
}
