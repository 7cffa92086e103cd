package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/emailwriter/internal/api/shared"
	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/phrazzld/emailwriter/internal/platform/logger"
)

// EmailHandler handles email generation HTTP requests
type EmailHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(generator generation.Generator, logger *slog.Logger) *EmailHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailHandler{
		generator: generator,
		logger:    logger.With("component", "email_handler"),
	}
}

// GenerateEmail handles POST /api/email/generate requests
func (h *EmailHandler) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req generation.Request
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgEmptyContent, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidFormat, err,
			shared.WithElevatedLogLevel())
		return
	}

	if err := req.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.InfoContext(r.Context(), "generating email",
		"content_length", len(req.Content),
		"tone_present", req.Tone != "")

	text, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if strings.TrimSpace(text) == "" {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			MsgGenerationFailed, generation.ErrGenerationFailed)
		return
	}

	log.InfoContext(r.Context(), "email generated", "email_length", len(text))
	shared.RespondWithText(w, r, http.StatusOK, text)
}

// Health handles GET /api/email/health requests.
// It never consults the generator.
func (h *EmailHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, HealthMessage)
}
