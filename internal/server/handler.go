package server

import (
	"encoding/json"
	"net/http"

	"github.com/abhisek/quizforge/internal/imagegen"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/logging"
	"github.com/abhisek/quizforge/internal/quizgen"
)

const maxBodyBytes = 1 << 20

type handler struct {
	quizzes quizgen.Generator
	images  imagegen.Generator
}

type imageRequest struct {
	BaseType    string `json:"base_type"`
	ImagePrompt string `json:"image_prompt"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	log := logging.WithContext(r.Context())

	var spec quizgen.Spec
	if err := decodeBody(w, r, &spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", llm.KindInvalidRequest)
		return
	}

	content, err := h.quizzes.Generate(r.Context(), spec)
	if err != nil {
		log.WithError(err).Error("failed to generate quiz")
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, content)
}

func (h *handler) createImage(w http.ResponseWriter, r *http.Request) {
	log := logging.WithContext(r.Context())

	var req imageRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", llm.KindInvalidRequest)
		return
	}
	log = log.WithField("base_type", req.BaseType)

	data, err := h.images.GenerateBinary(r.Context(), req.ImagePrompt)
	if err != nil {
		log.WithError(err).Error("failed to generate image")
		writeGenerationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warn("failed to write image response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// statusFor maps a failure kind to an HTTP status. Only caller mistakes
// are 4xx; everything that went wrong upstream is a bad gateway.
func statusFor(kind llm.Kind) int {
	if kind == llm.KindInvalidRequest {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func writeGenerationError(w http.ResponseWriter, err error) {
	kind := llm.KindOf(err)
	writeError(w, statusFor(kind), err.Error(), kind)
}

func writeError(w http.ResponseWriter, status int, msg string, kind llm.Kind) {
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind.String()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
