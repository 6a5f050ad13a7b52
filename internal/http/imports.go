package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/storefront/internal/importers"
	"github.com/mrlokans/storefront/internal/tasks"
)

const (
	maxUploadSize = 32 * 1024 * 1024 // 32 MB
)

type ImportsController struct {
	importer  FileImporter
	queue     TaskQueue
	importDir string
	log       *zap.Logger
}

func NewImportsController(importer FileImporter, queue TaskQueue, importDir string, log *zap.Logger) *ImportsController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportsController{
		importer:  importer,
		queue:     queue,
		importDir: importDir,
		log:       log,
	}
}

// Upload handles POST /api/imports/:entity
// Imports one uploaded CSV file synchronously and returns the run summary.
// A run in which any record errored answers 422 with the same body.
func (ic *ImportsController) Upload(c *gin.Context) {
	entity, err := importers.ParseEntityType(c.Param("entity"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondBadRequest(c, "file not provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respondBadRequest(c, fmt.Sprintf("file too large (max %d MB)", maxUploadSize/(1024*1024)))
		return
	}

	summary, err := ic.importer.ImportFile(c.Request.Context(), entity, io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		respondInternalError(c, ic.log, err, "import "+string(entity))
		return
	}

	status := http.StatusOK
	if summary.HasErrors() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, summary)
}

// RunImportRequest is the optional body of a directory import request.
// Clearing the store is only available from the CLI.
type RunImportRequest struct {
	DryRun bool `json:"dry_run" form:"dry_run"`
}

// RunDirectory handles POST /api/imports/run
// Enqueues an import of the configured directory. Existing records are
// never cleared from here.
func (ic *ImportsController) RunDirectory(c *gin.Context) {
	var req RunImportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}

	taskID, err := ic.queue.EnqueueImport(tasks.ImportDirectoryTask{
		Dir:         ic.importDir,
		DryRun:      req.DryRun,
		RequestedBy: "api",
	})
	if err != nil {
		respondInternalError(c, ic.log, err, "enqueue import")
		return
	}

	respondAccepted(c, "import enqueued", gin.H{"task_id": taskID})
}
