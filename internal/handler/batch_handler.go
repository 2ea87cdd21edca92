package handler

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maximvlah/ntf/internal/archive"
	"github.com/maximvlah/ntf/internal/config"
	"github.com/maximvlah/ntf/internal/port"
	"github.com/maximvlah/ntf/internal/service"
)

// BatchHandler handles archive upload and spreadsheet retrieval.
type BatchHandler struct {
	batchService service.BatchService
	registry     port.JobRegistry
	storage      *config.StorageConfig
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(batchService service.BatchService, registry port.JobRegistry, storage *config.StorageConfig) *BatchHandler {
	return &BatchHandler{batchService: batchService, registry: registry, storage: storage}
}

// Upload handles POST /upload. The request carries one zip archive in the
// "file" field; every .json document found inside becomes one batch input.
// The per-request upload and extraction directories are removed when the
// batch finishes, success or not.
func (h *BatchHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}

	// Working area keyed by a fresh id, separate from the job id the
	// coordinator generates.
	requestID := uuid.New().String()
	uploadDir := filepath.Join(h.storage.UploadDir, requestID)
	workDir := filepath.Join(h.storage.WorkDir, requestID)
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Printf("batchHandler.Upload: cleanup %s: %v", workDir, err)
		}
		if err := os.RemoveAll(uploadDir); err != nil {
			log.Printf("batchHandler.Upload: cleanup %s: %v", uploadDir, err)
		}
	}()

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		HandleError(c, fmt.Errorf("creating upload dir: %w", err))
		return
	}
	archivePath := filepath.Join(uploadDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, archivePath); err != nil {
		HandleError(c, fmt.Errorf("saving upload: %w", err))
		return
	}

	if err := archive.ExtractZip(archivePath, workDir); err != nil {
		HandleError(c, err)
		return
	}

	paths, err := archive.FindDocuments(workDir)
	if err != nil {
		HandleError(c, err)
		return
	}

	job, err := h.batchService.RunBatch(c.Request.Context(), paths)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{
		"message":   fmt.Sprintf("saved to %s", filepath.Base(job.ArtifactPath)),
		"id":        job.ID.String(),
		"filename":  fileHeader.Filename,
		"documents": job.DocumentCount,
		"rows":      job.RowCount,
	})
}

// Export handles GET /export/excel/:id. Retrieval is one-shot: the job entry
// is consumed and the artifact deleted after being served, so a second
// request for the same id gets 404.
func (h *BatchHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid job ID")
		return
	}

	job, err := h.registry.Take(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.FileAttachment(job.ArtifactPath, job.ID.String()+".xlsx")

	if err := os.Remove(job.ArtifactPath); err != nil {
		log.Printf("batchHandler.Export: removing artifact %s: %v", job.ArtifactPath, err)
	}
}
