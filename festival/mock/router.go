package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Handler routes HTTP requests to the mock festival API endpoints.
type Handler struct {
	// Service is the mock API with endpoint handlers.
	Service *Service
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Service.record(r)
	path := strings.TrimPrefix(r.URL.Path, "/api/")
	switch {
	case path == "auth/login":
		h.dispatch(h.Service.LoginHandler, h.Service.defaultLoginHandler, w, r)
	case path == "auth/register":
		h.dispatch(h.Service.RegisterHandler, h.Service.defaultRegisterHandler, w, r)
	case path == "auth/me":
		h.dispatch(h.Service.MeHandler, h.Service.defaultMeHandler, w, r)
	case strings.HasPrefix(path, "festivals") && strings.HasSuffix(path, "/performances"):
		h.dispatch(h.Service.PerformanceHandler, h.Service.defaultPerformanceHandler, w, r)
	case path == "festivals" || strings.HasPrefix(path, "festivals/"):
		h.dispatch(h.Service.FestivalsHandler, h.Service.defaultFestivalsHandler, w, r)
	case path == "users" || strings.HasPrefix(path, "users/"):
		h.dispatch(h.Service.UsersHandler, h.Service.defaultUsersHandler, w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) dispatch(custom, fallback http.HandlerFunc, w http.ResponseWriter, r *http.Request) {
	if custom != nil {
		custom(w, r)
		return
	}
	fallback(w, r)
}

// record captures the request query and body, the body is restored for handlers
func (s *Service) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(strings.NewReader(string(body)))
	s.mu.Lock()
	s.lastQuery = r.URL.RawQuery
	s.lastBody = string(body)
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
