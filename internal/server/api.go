package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/report"
	"github.com/wethinkt/go-suhoor/internal/schedule"
)

// API response types

// ScheduleResponse lists timetable entries.
type ScheduleResponse struct {
	Name     string         `json:"name"`
	Language string         `json:"language"`
	Entries  []report.Entry `json:"entries"`
}

// LanguagesResponse lists the supported languages.
type LanguagesResponse struct {
	Languages []i18n.LangInfo `json:"languages"`
}

// PhrasesResponse holds every UI phrase for one language.
type PhrasesResponse struct {
	Language string                   `json:"language"`
	Phrases  map[i18n.PhraseID]string `json:"phrases"`
	Months   []string                 `json:"months"`
	Digits   []string                 `json:"digits"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, err string, msg string) {
	writeJSON(w, status, ErrorResponse{Error: err, Message: msg})
}

// language reads ?lang=, falling back to the server default.
func (s *HTTPServer) language(r *http.Request) (i18n.Language, error) {
	v := r.URL.Query().Get("lang")
	if v == "" {
		return s.config.Language, nil
	}
	return i18n.ParseLanguage(v)
}

// handleGetNext returns the next Suhoor and Iftar.
//
//	@Summary	Next Suhoor and Iftar
//	@Tags		schedule
//	@Produce	json
//	@Param		lang	query		string	false	"Language label, English name or BCP 47 tag"
//	@Param		policy	query		string	false	"upcoming or absolute"
//	@Param		at		query		string	false	"Reference instant (RFC 3339), default now"
//	@Success	200		{object}	report.Next
//	@Failure	400		{object}	ErrorResponse
//	@Router		/next [get]
func (s *HTTPServer) handleGetNext(w http.ResponseWriter, r *http.Request) {
	lang, err := s.language(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_language", err.Error())
		return
	}

	policy := s.config.Policy
	if v := r.URL.Query().Get("policy"); v != "" {
		policy, err = schedule.ParsePolicy(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_policy", err.Error())
			return
		}
	}

	now := s.clock.Now()
	if v := r.URL.Query().Get("at"); v != "" {
		now, err = time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_time", "at must be RFC 3339, e.g. 2024-03-11T12:00:00Z")
			return
		}
	}

	next := report.BuildNext(s.catalog, s.currentTimetable(), now, lang, policy)
	for _, kind := range schedule.Kinds {
		found := false
		for _, ev := range next.Events {
			if ev.Kind == kind {
				found = true
			}
		}
		lookupsTotal.WithLabelValues(kind.String(), policy.String(), strconv.FormatBool(found)).Inc()
	}
	languageRequestsTotal.WithLabelValues(lang.Code()).Inc()

	writeJSON(w, http.StatusOK, next)
}

// handleGetSchedule lists the timetable.
//
//	@Summary	Full timetable
//	@Tags		schedule
//	@Produce	json
//	@Param		kind	query		string	false	"suhoor or iftar (default both)"
//	@Param		lang	query		string	false	"Language"
//	@Success	200		{object}	ScheduleResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/schedule [get]
func (s *HTTPServer) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	lang, err := s.language(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_language", err.Error())
		return
	}

	var kinds []schedule.Kind
	if v := r.URL.Query().Get("kind"); v != "" {
		kind, err := schedule.ParseKind(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_kind", err.Error())
			return
		}
		kinds = append(kinds, kind)
	}
	languageRequestsTotal.WithLabelValues(lang.Code()).Inc()

	tt := s.currentTimetable()
	writeJSON(w, http.StatusOK, ScheduleResponse{
		Name:     tt.Name(),
		Language: lang.Code(),
		Entries:  report.BuildSchedule(s.catalog, tt, lang, kinds...),
	})
}

// handleGetLanguages lists supported languages.
//
//	@Summary	Supported languages
//	@Tags		i18n
//	@Produce	json
//	@Success	200	{object}	LanguagesResponse
//	@Router		/languages [get]
func (s *HTTPServer) handleGetLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{
		Languages: i18n.AvailableLanguages(s.config.Language),
	})
}

// handleGetPhrases returns the phrase catalog for one language.
//
//	@Summary	Phrase catalog
//	@Tags		i18n
//	@Produce	json
//	@Param		lang	query		string	false	"Language"
//	@Success	200		{object}	PhrasesResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/phrases [get]
func (s *HTTPServer) handleGetPhrases(w http.ResponseWriter, r *http.Request) {
	lang, err := s.language(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_language", err.Error())
		return
	}
	languageRequestsTotal.WithLabelValues(lang.Code()).Inc()

	months := s.catalog.Months(lang)
	digits := s.catalog.Digits(lang)
	writeJSON(w, http.StatusOK, PhrasesResponse{
		Language: lang.Code(),
		Phrases:  s.catalog.Phrases(lang),
		Months:   months[1:],
		Digits:   digits[:],
	})
}
