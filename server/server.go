// Package server exposes the solvers over HTTP.
//
// Routes:
//
//	GET  /health
//	POST /hint      {"strategy":"frequency","turns":[{"guess":"crane","feedback":"rggyr"}]}
//	POST /evaluate  {"solution":"train","guess":"crane"}
//
// Each request builds its own solver from the shared read only dictionary.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/powellquiring/wordlesolvers/solver"
	"github.com/powellquiring/wordlesolvers/wordle"
)

// candidateLimit caps the candidates listed in a hint response
const candidateLimit = 20

type Server struct {
	r          *chi.Mux
	dictionary *wordle.Dictionary
}

type TurnRequest struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

type HintRequest struct {
	Strategy string        `json:"strategy"`
	Turns    []TurnRequest `json:"turns"`
}

type HintResponse struct {
	Guess      string   `json:"guess"`
	Remaining  int      `json:"remaining"`
	Candidates []string `json:"candidates"`
}

type EvaluateRequest struct {
	Solution string `json:"solution"`
	Guess    string `json:"guess"`
}

type EvaluateResponse struct {
	Feedback string `json:"feedback"`
	Solved   bool   `json:"solved"`
}

func New(d *wordle.Dictionary) *Server {
	s := &Server{r: chi.NewRouter(), dictionary: d}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(accessLog)
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words": s.dictionary.Len()})
	})
	s.r.Post("/hint", s.handleHint)
	s.r.Post("/evaluate", s.handleEvaluate)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})
	return s
}

// Start serves HTTP on addr
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

func (s *Server) Router() chi.Router { return s.r }

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if req.Strategy == "" {
		req.Strategy = string(solver.KindFrequency)
	}
	kind, err := solver.ParseKind(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sv, err := solver.New(kind, s.dictionary, nil, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for _, turn := range req.Turns {
		guess, err := wordle.ParseWord(turn.Guess)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		feedback, err := wordle.ParseFeedback(turn.Feedback)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := sv.Update(guess, feedback); err != nil {
			writeSolverError(w, err)
			return
		}
	}
	if sv.State() == solver.Solved {
		last := req.Turns[len(req.Turns)-1]
		writeJSON(w, http.StatusOK, HintResponse{Guess: last.Guess, Remaining: sv.Remaining(), Candidates: []string{last.Guess}})
		return
	}
	guess, err := sv.NextGuess()
	if err != nil {
		writeSolverError(w, err)
		return
	}
	resp := HintResponse{Guess: string(guess), Remaining: sv.Remaining(), Candidates: []string{}}
	if engine, ok := sv.(interface{ Candidates() *wordle.WordList }); ok {
		for i, id := range engine.Candidates().Range {
			if i >= candidateLimit {
				break
			}
			resp.Candidates = append(resp.Candidates, string(s.dictionary.At(id)))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	solution, err := wordle.ParseWord(req.Solution)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	guess, err := wordle.ParseWord(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	feedback, err := wordle.Evaluate(solution, guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, EvaluateResponse{Feedback: feedback.String(), Solved: feedback.Solved()})
}

func writeSolverError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wordle.ErrNoCandidates):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		level := zerolog.InfoLevel
		if ww.Status() >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}
		log.WithLevel(level).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
