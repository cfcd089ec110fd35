package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// One message for every authentication failure so the response never reveals
// whether a token was malformed or the user behind it exists.
const unauthorizedMessage = "Invalid or expired token"

func (s *service) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				writeJSONError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			email, err := s.jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			existingUser, err := s.userService.GetUserByEmail(email)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			ctx := context.WithValue(r.Context(), "userID", existingUser.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
