package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/scraper"
	"github.com/umputun/jobfeed/app/store"
)

// JobID is a job post id accepted both as a json number and as a numeric string
type JobID int64

// UnmarshalJSON decodes 42, "42", "" and null
func (id *JobID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid job id %s", data)
	}
	*id = JobID(v)
	return nil
}

// SaveRequest is the body of save and unsave calls
type SaveRequest struct {
	JobID    JobID  `json:"job_id"`
	ListName string `json:"list_name"`
}

// ListRequest is the body of list creation call
type ListRequest struct {
	Name string `json:"name"`
}

// FeedResponse is the JSON response for /api/jobs
type FeedResponse struct {
	store.FeedPage
	Sources []string `json:"sources"`
}

// SavedResponse is the JSON response for /api/saved
type SavedResponse struct {
	Jobs        []store.SavedJob `json:"jobs"`
	Lists       []store.List     `json:"lists"`
	CurrentList string           `json:"current_list,omitempty"`
}

// StatsResponse is the JSON response for /api/stats
type StatsResponse struct {
	store.Stats
	ScrapeRunning bool            `json:"scrape_running"`
	LastScrape    *scraper.Result `json:"last_scrape,omitempty"`
}

// handleJobs returns a page of the job feed, filtered by source, search and days
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := store.FeedQuery{
		Source: q.Get("source"),
		Search: strings.TrimSpace(q.Get("search")),
		Days:   atoiOr(q.Get("days"), 0),
		Page:   atoiOr(q.Get("page"), 1),
	}

	page, err := s.store.Feed(r.Context(), query)
	if err != nil {
		log.Printf("[ERROR] failed to load feed: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load jobs")
		return
	}
	sources, err := s.store.Sources(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load sources: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load sources")
		return
	}
	s.writeJSON(w, http.StatusOK, FeedResponse{FeedPage: page, Sources: sources})
}

// handleSaved returns saved jobs of all lists or of the list from path
func (s *Server) handleSaved(w http.ResponseWriter, r *http.Request) {
	listName := r.PathValue("list")
	jobs, err := s.store.Saved(r.Context(), listName)
	if err != nil {
		log.Printf("[ERROR] failed to load saved jobs: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load saved jobs")
		return
	}
	lists, err := s.store.Lists(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load lists: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load lists")
		return
	}
	s.writeJSON(w, http.StatusOK, SavedResponse{Jobs: jobs, Lists: lists, CurrentList: listName})
}

// handleLists returns all lists with saved counts
func (s *Server) handleLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.store.Lists(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load lists: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load lists")
		return
	}
	s.writeJSON(w, http.StatusOK, lists)
}

// handleSave puts job into a list, the default list is used if list_name is empty
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.JobID == 0 {
		s.writeJSONError(w, http.StatusBadRequest, "job_id required")
		return
	}
	listName := strings.TrimSpace(req.ListName)
	if listName == "" {
		listName = store.DefaultList
	}

	if err := s.store.SaveJob(r.Context(), int64(req.JobID), listName); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeJSONError(w, http.StatusNotFound, "job not found")
			return
		}
		log.Printf("[ERROR] failed to save job %d: %v", req.JobID, err)
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("[INFO] job %d saved to %q", req.JobID, listName)
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "saved", "job_id": req.JobID, "list": listName})
}

// handleUnsave removes job from a list, or from every list if list_name is empty
func (s *Server) handleUnsave(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.JobID == 0 {
		s.writeJSONError(w, http.StatusBadRequest, "job_id required")
		return
	}

	n, err := s.store.UnsaveJob(r.Context(), int64(req.JobID), strings.TrimSpace(req.ListName))
	if err != nil {
		log.Printf("[ERROR] failed to unsave job %d: %v", req.JobID, err)
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("[INFO] job %d unsaved, %d entries removed", req.JobID, n)
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "unsaved", "job_id": req.JobID})
}

// handleCreateList makes a new empty list
func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.writeJSONError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := s.store.CreateList(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrListExists) {
			s.writeJSONError(w, http.StatusConflict, "List already exists")
			return
		}
		log.Printf("[ERROR] failed to create list %q: %v", name, err)
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("[INFO] list %q created", name)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "created", "name": name})
}

// handleDeleteList removes the list and its saved entries
func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.store.DeleteList(r.Context(), name); err != nil {
		log.Printf("[ERROR] failed to delete list %q: %v", name, err)
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("[INFO] list %q deleted", name)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "name": name})
}

// handleScrape starts a background scrape and returns immediately
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scraper.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := s.scraper.Start(s.baseCtx, req); err != nil {
		if errors.Is(err, scraper.ErrRunning) {
			s.writeJSONError(w, http.StatusConflict, "scrape already running")
			return
		}
		log.Printf("[ERROR] failed to start scrape: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to start scrape")
		return
	}
	log.Printf("[INFO] scrape triggered, terms: %q, sources: %q", req.Terms, req.Sources)
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "scraping started", "terms": req.Terms, "sources": req.Sources})
}

// handleStats returns totals and the state of scraping
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load stats: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	resp := StatsResponse{Stats: st, ScrapeRunning: s.scraper.Running()}
	if last, ok := s.scraper.LastResult(); ok {
		resp.LastScrape = &last
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response with the given status code
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[WARN] failed to encode JSON error response: %v", err)
	}
}

func atoiOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
