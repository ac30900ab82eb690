// Package server serves the JSON HTTP API.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/at-ishikawa/transcriptus/internal/history"
	"github.com/at-ishikawa/transcriptus/internal/metrics"
	"github.com/at-ishikawa/transcriptus/internal/provider"
	"github.com/at-ishikawa/transcriptus/internal/translator"
)

// userIDHeader carries the signed-in user set by the authentication proxy.
const userIDHeader = "X-User-ID"

// Services are what the handlers delegate to.
type Services struct {
	Words        WordService
	Daily        DailyService
	Translations TranslationService
	History      HistoryService
	Validator    WordValidator
}

type Server struct {
	services       Services
	allowedOrigins []string
	metricsHandler http.Handler
	metrics        *metrics.Recorder
	log            *slog.Logger
}

// New creates a Server. metricsHandler serves /metrics and may be nil.
func New(services Services, allowedOrigins []string, metricsHandler http.Handler, recorder *metrics.Recorder, logger *slog.Logger) *Server {
	return &Server{
		services:       services,
		allowedOrigins: allowedOrigins,
		metricsHandler: metricsHandler,
		metrics:        recorder,
		log:            logger.With("component", "server"),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.health)
	mux.HandleFunc("GET /api/daily-word", s.dailyWord)
	mux.HandleFunc("POST /api/random-word", s.randomWord)
	mux.HandleFunc("GET /api/words/{word}", s.word)
	mux.HandleFunc("POST /api/words/{word}/phrases", s.morePhrases)
	mux.HandleFunc("POST /api/pronunciations", s.pronunciation)
	mux.HandleFunc("POST /api/translations", s.translation)
	mux.HandleFunc("GET /api/history", s.history)
	if s.metricsHandler != nil {
		mux.Handle("GET /metrics", s.metricsHandler)
	}
	return s.logRequests(s.cors(mux))
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	jsonSuccess(w, map[string]string{"health": "ok"})
}

func (s *Server) dailyWord(w http.ResponseWriter, r *http.Request) {
	jsonSuccess(w, s.services.Daily.SelectDailyWord(r.Context()))
}

func (s *Server) randomWord(w http.ResponseWriter, r *http.Request) {
	jsonSuccess(w, s.services.Daily.RandomWord(r.Context()))
}

func (s *Server) word(w http.ResponseWriter, r *http.Request) {
	word, err := s.services.Validator.Validate(r.PathValue("word"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.services.History.Record(r.Context(), r.Header.Get(userIDHeader), history.SearchWord, word)
	jsonSuccess(w, s.services.Words.Enrich(r.Context(), word))
}

type phrasesRequest struct {
	Exclude []provider.Phrase `json:"exclude"`
}

func (s *Server) morePhrases(w http.ResponseWriter, r *http.Request) {
	word, err := s.services.Validator.Validate(r.PathValue("word"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req phrasesRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonSuccess(w, s.services.Words.GenerateMorePhrases(r.Context(), word, req.Exclude))
}

type pronunciationRequest struct {
	Text string `json:"text"`
}

// pronunciation records a practiced word and returns its details.
func (s *Server) pronunciation(w http.ResponseWriter, r *http.Request) {
	var req pronunciationRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	word, err := s.services.Validator.Validate(req.Text)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.services.History.Record(r.Context(), r.Header.Get(userIDHeader), history.SearchPronunciation, word)
	jsonSuccess(w, s.services.Words.Enrich(r.Context(), word))
}

type translationRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type translationResponse struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	SourceLang  string `json:"sourceLang"`
	TargetLang  string `json:"targetLang"`
}

func (s *Server) translation(w http.ResponseWriter, r *http.Request) {
	var req translationRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = translator.DefaultSourceLanguage
	}
	if req.TargetLang == "" {
		req.TargetLang = translator.DefaultTargetLanguage
	}

	translated, err := s.services.Translations.TranslateText(r.Context(), r.Header.Get(userIDHeader), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		status := http.StatusServiceUnavailable
		switch {
		case errors.Is(err, translator.ErrInvalidText):
			status = http.StatusBadRequest
		case errors.Is(err, provider.ErrRateLimited):
			status = http.StatusTooManyRequests
		}
		jsonError(w, status, err.Error())
		return
	}

	jsonSuccess(w, translationResponse{
		Text:        req.Text,
		Translation: translated,
		SourceLang:  req.SourceLang,
		TargetLang:  req.TargetLang,
	})
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		jsonError(w, http.StatusUnauthorized, "sign in to see your history")
		return
	}
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	jsonSuccess(w, s.services.History.List(r.Context(), userID, page))
}
