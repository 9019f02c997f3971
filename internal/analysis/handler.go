package analysis

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/campuslex/campuslex/internal/auth"
	"github.com/campuslex/campuslex/internal/platform/httpx"
)

const multipartMemoryLimit = 4 << 20

// Handler manages the document analysis endpoints. Every route requires an
// authenticated principal of any kind.
type Handler struct {
	logger         *slog.Logger
	auth           auth.Middleware
	maxUploadBytes int64
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, authmw auth.Middleware, maxUploadBytes int64) *Handler {
	return &Handler{logger: logger, auth: authmw, maxUploadBytes: maxUploadBytes}
}

// MountRoutes registers analysis routes. Paths match the original API.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth.Authenticate)
		r.Post("/analyze_file", h.analyzeFile)
		r.Post("/word_frequency", h.wordFrequency)
		r.Post("/pos_tags", h.posTags)
		r.Post("/named_entities", h.namedEntities)
		r.Post("/sentiment_analysis", h.sentiment)
		r.Post("/ngrams", h.ngrams)
		r.Post("/concordance", h.concordance)
	})
}

// extractUpload reads the multipart upload and returns the extracted text.
// On failure it has already written the error response.
func (h *Handler) extractUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed multipart body")
		return "", false
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "file field is required")
		return "", false
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "could not read upload")
		return "", false
	}
	text, err := ExtractText(data, r.FormValue("file_type"))
	if err != nil {
		httpx.RespondError(w, err)
		return "", false
	}
	return text, true
}

func (h *Handler) analyzeFile(w http.ResponseWriter, r *http.Request) {
	text, ok := h.extractUpload(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"text": text})
}

func (h *Handler) wordFrequency(w http.ResponseWriter, r *http.Request) {
	text, ok := h.extractUpload(w, r)
	if !ok {
		return
	}
	freq, err := WordFrequency(text)
	if err != nil {
		h.logger.Error("word frequency", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, freq)
}

func (h *Handler) posTags(w http.ResponseWriter, r *http.Request) {
	text, ok := h.extractUpload(w, r)
	if !ok {
		return
	}
	tagged, err := POSTags(text)
	if err != nil {
		h.logger.Error("pos tags", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, tagged)
}

func (h *Handler) namedEntities(w http.ResponseWriter, r *http.Request) {
	text, ok := h.extractUpload(w, r)
	if !ok {
		return
	}
	entities, err := NamedEntities(text)
	if err != nil {
		h.logger.Error("named entities", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entities)
}

func (h *Handler) sentiment(w http.ResponseWriter, r *http.Request) {
	text, ok := h.extractUpload(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, Sentiment(text))
}

func (h *Handler) ngrams(w http.ResponseWriter, r *http.Request) {
	text, ok := h.extractUpload(w, r)
	if !ok {
		return
	}
	n := 2
	if raw := r.FormValue("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "n must be a positive integer")
			return
		}
		n = parsed
	}
	grams, err := NGrams(text, n)
	if err != nil {
		h.logger.Error("ngrams", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, grams)
}

func (h *Handler) concordance(w http.ResponseWriter, r *http.Request) {
	text, ok := h.extractUpload(w, r)
	if !ok {
		return
	}
	word := r.FormValue("word")
	if word == "" {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "word field is required")
		return
	}
	lines, err := Concordance(text, word)
	if err != nil {
		h.logger.Error("concordance", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, lines)
}
