package mock

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/viant/apiclient/festival"
)

// defaultLoginHandler handles /api/auth/login requests
func (s *Service) defaultLoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	credentials := map[string]string{}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	user := s.user(credentials["username"])
	valid := user != nil && s.passwords[user.Username] == credentials["password"]
	s.mu.Unlock()
	if !valid {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := s.createJWT(user.Username, user.Roles)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, festival.AuthResponse{AccessToken: token, Token: token, Roles: user.Roles})
}

// defaultRegisterHandler handles /api/auth/register requests
func (s *Service) defaultRegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	request := festival.RegisterRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(request.Username) == "" || strings.TrimSpace(request.Password) == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	role := "USER"
	if request.Role != "" {
		role = strings.TrimPrefix(strings.ToUpper(request.Role), "ROLE_")
	}
	email := request.Email
	if email == "" {
		email = request.Username + "@local"
	}
	s.mu.Lock()
	if s.user(request.Username) != nil {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "Username already exists")
		return
	}
	user := &festival.User{Username: request.Username, Email: email, Roles: []string{"ROLE_" + role}}
	s.addUser(user, request.Password)
	s.mu.Unlock()

	token, err := s.createJWT(user.Username, user.Roles)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, festival.AuthResponse{AccessToken: token, Token: token, Roles: user.Roles})
}

// defaultMeHandler handles /api/auth/me requests
func (s *Service) defaultMeHandler(w http.ResponseWriter, r *http.Request) {
	username, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "No auth")
		return
	}
	s.mu.Lock()
	user := s.user(username)
	s.mu.Unlock()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
