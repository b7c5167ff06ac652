package mock

import (
	"net/http"
	"strings"
)

// defaultUsersHandler handles /api/users endpoints
func (s *Service) defaultUsersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/users"), "/")
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case path == "":
		writeJSON(w, http.StatusOK, s.users)
	case strings.HasPrefix(path, "exists/username/"):
		writeJSON(w, http.StatusOK, s.user(strings.TrimPrefix(path, "exists/username/")) != nil)
	case strings.HasPrefix(path, "exists/email/"):
		email := strings.TrimPrefix(path, "exists/email/")
		exists := false
		for _, candidate := range s.users {
			exists = exists || strings.EqualFold(candidate.Email, email)
		}
		writeJSON(w, http.StatusOK, exists)
	default:
		if user := s.user(path); user != nil {
			writeJSON(w, http.StatusOK, user)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}
}
