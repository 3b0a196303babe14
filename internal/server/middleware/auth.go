// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// claimsKey is the context key for storing the authenticated user's claims.
const claimsKey ContextKey = "authClaims"

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (ClaimsAccessor, error)
}

// ClaimsAccessor is an interface for reading the authenticated user's
// identity from token claims.
type ClaimsAccessor interface {
	GetUserID() uuid.UUID
	GetUsername() string
	GetFullName() string
	GetRole() string
}

// AuthMiddleware creates middleware that validates JWT tokens and adds the
// user's claims to the request context.
func AuthMiddleware(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Parse Bearer token
			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Validate token
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Add claims to request context
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims extracts the authenticated user's claims from the request context.
func GetClaims(r *http.Request) (ClaimsAccessor, error) {
	claims, ok := r.Context().Value(claimsKey).(ClaimsAccessor)
	if !ok {
		return nil, fmt.Errorf("claims not found in request context")
	}
	return claims, nil
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	claims, err := GetClaims(r)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.GetUserID(), nil
}

// ClaimsKey returns the context key for claims (for testing purposes).
func ClaimsKey() ContextKey {
	return claimsKey
}
