package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.PredictMatch(r.Context(), req))
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.PredictRecommend(r.Context(), req))
}

func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	var req types.InterviewRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.PredictInterview(r.Context(), req))
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.PredictFeedback(r.Context(), req))
}

func (s *Server) handleATS(w http.ResponseWriter, r *http.Request) {
	var req types.ATSRequest
	if err := s.decodeRequest(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.analyzer.PredictATS(r.Context(), req))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"models":             s.analyzer.Versions(),
		"embeddings_enabled": s.cfg.EnableEmbeddings,
		"cache_enabled":      s.cfg.EnableCache,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": Version})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"models": s.analyzer.Versions(),
		"features": map[string]any{
			"matching_strategies": []string{"tfidf", "embedding", "skill_based"},
			"embedding_model":     s.cfg.EmbeddingModel,
			"cache_enabled":       s.cfg.EnableCache,
		},
	})
}

// decodeRequest reads, decodes, and validates a JSON request body.
func (s *Server) decodeRequest(r *http.Request, req any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return &ErrBadRequest{Detail: err.Error()}
	}
	if err := types.ValidateRequest(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return &ErrValidation{Detail: first.Field() + " failed " + first.Tag() + " validation"}
		}
		return &ErrValidation{Detail: err.Error()}
	}
	return s.checkTextLimits(req)
}

// checkTextLimits enforces the configurable MAX_TEXT_LENGTH ceiling on top
// of the baseline struct-tag bounds.
func (s *Server) checkTextLimits(req any) error {
	limit := s.cfg.MaxTextLength
	over := func(text string) bool { return len(text) > limit }

	switch v := req.(type) {
	case *types.MatchRequest:
		if over(v.ResumeText) {
			return &ErrTooLarge{Field: "resume_text", Limit: limit}
		}
		if over(v.JobDescription) {
			return &ErrTooLarge{Field: "job_description", Limit: limit}
		}
	case *types.RecommendRequest:
		if over(v.ResumeText) {
			return &ErrTooLarge{Field: "resume_text", Limit: limit}
		}
		for _, job := range v.JobPool {
			if over(job.Description) {
				return &ErrTooLarge{Field: "job_pool description", Limit: limit}
			}
		}
	case *types.FeedbackRequest:
		if over(v.ResumeText) {
			return &ErrTooLarge{Field: "resume_text", Limit: limit}
		}
	case *types.ATSRequest:
		if over(v.ResumeText) {
			return &ErrTooLarge{Field: "resume_text", Limit: limit}
		}
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
