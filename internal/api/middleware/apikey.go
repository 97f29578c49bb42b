package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jkoster/portfolio-performance-backend/internal/api/response"
)

// timeTokenWindow is the maximum age (and clock-skew allowance) of a
// time token.
const timeTokenWindow = 5 * time.Minute

// APIKeyMiddleware guards internal endpoints. Callers must present the
// shared key in X-API-Key plus a fresh HMAC time token in X-Time-Token,
// so captured headers cannot be replayed indefinitely. The expected key
// comes from the INTERNAL_API_KEY environment variable.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedKey := os.Getenv("INTERNAL_API_KEY")
		if expectedKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "internal error", "Authentication not loaded")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}
		if !hmac.Equal([]byte(apiKey), []byte(expectedKey)) {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}
		if !validateTimeToken(expectedKey, timeToken) {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GenerateTimeToken creates a token of the form "<unix>.<hmac>" where
// the HMAC-SHA256 of the timestamp is keyed with the shared API key.
func GenerateTimeToken(key string) string {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	return timestamp + "." + signTimestamp(key, timestamp)
}

func validateTimeToken(key, token string) bool {
	timestamp, signature, found := strings.Cut(token, ".")
	if !found {
		return false
	}

	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	age := time.Since(time.Unix(unix, 0))
	if age > timeTokenWindow || age < -timeTokenWindow {
		return false
	}

	expected := signTimestamp(key, timestamp)
	return hmac.Equal([]byte(signature), []byte(expected))
}

func signTimestamp(key, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}
