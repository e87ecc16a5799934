package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"TRIPWISE_BACK-END/internal/config"
	"TRIPWISE_BACK-END/internal/storage"
	"TRIPWISE_BACK-END/internal/utils"
)

// GuestKeyHeader carries the guest's storage scope between requests
const GuestKeyHeader = "X-Guest-Key"

// JWTClaims represents the claims in the JWT token
type JWTClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the given user
func GenerateToken(userID uuid.UUID, email string, cfg *config.JWTConfig) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// bearerToken extracts the token from "Bearer <token>"
func bearerToken(authHeader string) (string, bool) {
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", false
	}
	return tokenParts[1], true
}

// AuthMiddleware validates JWT tokens in the Authorization header
func AuthMiddleware(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		claims, err := ValidateToken(tokenString, cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), claims.UserID, claims.Email)))
	}
}

type submissionKey struct{}

// OptionalAuth lets guests through. A valid bearer token becomes the session,
// a missing one makes the request a guest scoped by X-Guest-Key.
// A bearer token that fails validation is rejected rather than downgraded.
func OptionalAuth(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc := storage.SubmissionContext{GuestKey: strings.TrimSpace(r.Header.Get(GuestKeyHeader))}
		ctx := r.Context()

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, ok := bearerToken(authHeader)
			if !ok {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
				return
			}
			claims, err := ValidateToken(tokenString, cfg)
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
				return
			}
			userID := claims.UserID
			sc.SessionID = &userID
			ctx = utils.WithUser(ctx, claims.UserID, claims.Email)
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, submissionKey{}, sc)))
	}
}

// SubmissionFromContext returns the context set by OptionalAuth
func SubmissionFromContext(ctx context.Context) storage.SubmissionContext {
	sc, _ := ctx.Value(submissionKey{}).(storage.SubmissionContext)
	return sc
}
