package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/cv-profiler/internal/common"
	"github.com/joseph-ayodele/cv-profiler/internal/export"
	"github.com/joseph-ayodele/cv-profiler/internal/pipeline"
	"github.com/joseph-ayodele/cv-profiler/internal/repository"
)

// ProfileHandler serializes pipeline results and maps error kinds onto HTTP
// status codes. All business behavior lives below this layer.
type ProfileHandler struct {
	processor      *pipeline.Processor
	profiles       repository.ProfileRepository
	exporter       *export.Service
	maxUploadBytes int64
	logger         *slog.Logger
}

func NewProfileHandler(
	processor *pipeline.Processor,
	profiles repository.ProfileRepository,
	exporter *export.Service,
	maxUploadBytes int64,
	logger *slog.Logger,
) *ProfileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &ProfileHandler{
		processor:      processor,
		profiles:       profiles,
		exporter:       exporter,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// UploadResume accepts a multipart "file" upload, runs the extraction
// pipeline and returns the persisted profile.
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_INPUT", "user_id is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_INPUT", "'file' form field is required"))
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge,
			errorBody("INVALID_INPUT", fmt.Sprintf("file exceeds %d bytes", h.maxUploadBytes)))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_INPUT", "failed to open uploaded file"))
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_INPUT", "failed to read uploaded file"))
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge,
			errorBody("INVALID_INPUT", fmt.Sprintf("file exceeds %d bytes", h.maxUploadBytes)))
		return
	}

	stored, err := h.processor.ProcessResume(c.Request.Context(), userID, fileHeader.Filename, content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetProfile returns the stored profile for a user, or 404.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	stored, err := h.profiles.FindByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// ExportProfile streams the stored profile as an XLSX workbook.
func (h *ProfileHandler) ExportProfile(c *gin.Context) {
	userID := c.Param("user_id")
	data, err := h.exporter.ExportProfileXLSX(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", userID+"-profile.xlsx"))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *ProfileHandler) writeError(c *gin.Context, err error) {
	kind := common.KindOf(err)
	status := statusForKind(kind)
	if raw := common.RawOf(err); raw != "" {
		h.logger.Error("request failed with raw diagnostic",
			"kind", kind, "error", err, "raw", raw)
	} else if status >= 500 {
		h.logger.Error("request failed", "kind", kind, "error", err)
	} else {
		h.logger.Warn("request rejected", "kind", kind, "error", err)
	}
	c.JSON(status, errorBody(string(kind), err.Error()))
}

// Client-input kinds map to 4xx, dependency/service kinds to 5xx.
func statusForKind(kind common.Kind) int {
	switch kind {
	case common.KindUnsupportedFormat, common.KindExtractionFailed:
		return http.StatusBadRequest
	case common.KindEmptyDocument:
		return http.StatusUnprocessableEntity
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindCompletionService, common.KindResponseRecovery, common.KindNormalization:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(kind, message string) gin.H {
	return gin.H{"error": gin.H{"kind": kind, "message": message}}
}
