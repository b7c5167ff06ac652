package mock

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/viant/apiclient/festival"
)

// defaultFestivalsHandler handles /api/festivals and /api/festivals/{id} requests
func (s *Service) defaultFestivalsHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/api/festivals"), "/")
	switch {
	case id != "" && r.Method == http.MethodGet:
		s.getFestival(w, id)
	case id == "" && r.Method == http.MethodGet:
		s.listFestivals(w, r)
	case id == "" && r.Method == http.MethodPost:
		s.createFestival(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Service) getFestival(w http.ResponseWriter, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, candidate := range s.festivals {
		if strconv.FormatInt(candidate.ID, 10) == id {
			writeJSON(w, http.StatusOK, candidate)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Service) listFestivals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	size, err := strconv.Atoi(query.Get("size"))
	if page < 0 {
		page = 0
	}
	if err != nil || size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	q := strings.ToLower(strings.TrimSpace(query.Get("q")))

	s.mu.Lock()
	var matched []festival.Festival
	for _, candidate := range s.festivals {
		if q == "" || strings.Contains(strings.ToLower(candidate.Name), q) || strings.Contains(strings.ToLower(candidate.Venue), q) {
			matched = append(matched, *candidate)
		}
	}
	s.mu.Unlock()

	result := festival.Page[festival.Festival]{Content: []festival.Festival{}, Number: page, Size: size, TotalElements: int64(len(matched))}
	result.TotalPages = (len(matched) + size - 1) / size
	if from := page * size; from < len(matched) {
		to := min(from+size, len(matched))
		result.Content = matched[from:to]
	}
	result.First = page == 0
	result.Last = page >= result.TotalPages-1
	result.Empty = len(result.Content) == 0
	writeJSON(w, http.StatusOK, result)
}

func (s *Service) createFestival(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	request := festival.CreateFestivalRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Validate() != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	state := request.State
	if state == "" {
		state = festival.StateScheduling
	}
	created := &festival.Festival{
		Name:        request.Name,
		Description: request.Description,
		Venue:       request.Venue,
		State:       state,
		CreatedAt:   festival.NewDate(2025, 1, 1),
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
	}
	s.mu.Lock()
	for _, candidate := range s.festivals {
		if strings.EqualFold(candidate.Name, created.Name) {
			s.mu.Unlock()
			writeError(w, http.StatusConflict, "Festival name already exists")
			return
		}
	}
	created.ID = int64(len(s.festivals) + 1)
	s.festivals = append(s.festivals, created)
	s.mu.Unlock()
	w.Header().Set("Location", "/api/festivals/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, http.StatusCreated, created)
}

// defaultPerformanceHandler handles /api/festivals/{id}/performances requests
func (s *Service) defaultPerformanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, err := s.authenticate(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/festivals/"), "/performances")
	performance := &festival.Performance{}
	if err = json.NewDecoder(r.Body).Decode(performance); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, candidate := range s.festivals {
		if strconv.FormatInt(candidate.ID, 10) == id {
			performance.ID = candidate.ID*100 + 1
			performance.Status = festival.PerformanceCreated
			performance.MainArtist = s.user(username)
			writeJSON(w, http.StatusCreated, performance)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Festival not found")
}
