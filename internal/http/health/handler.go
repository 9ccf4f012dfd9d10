// Package health serves the liveness probe outside the documented API.
package health

import (
	"encoding/json"
	"net/http"

	applog "github.com/janisto/hello-service/internal/platform/logging"
)

// StatusHealthy is reported while the process is serving.
const StatusHealthy = "healthy"

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler reports liveness. Probes must never be cached by intermediaries.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(Response{Status: StatusHealthy}); err != nil {
		applog.LogError(r.Context(), "failed to write health response", err)
	}
}
