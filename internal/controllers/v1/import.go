package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paisaflow/backend/internal/categorize"
	"github.com/paisaflow/backend/internal/httperror"
	"github.com/paisaflow/backend/internal/importer"
	"github.com/paisaflow/backend/internal/metrics"
	"github.com/paisaflow/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// ImportResponse reports the outcome of one ingestion run.
type ImportResponse struct {
	ImportID  uuid.UUID `json:"importId"`            // Groups the created transactions
	File      string    `json:"file"`                // Name the upload was cached under
	Processed int       `json:"processed"`           // Number of transactions created
	Dropped   int       `json:"dropped"`             // Number of rows dropped for unparseable dates
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (*multipart.FileHeader, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile, nil
}

// CreateImport ingests an uploaded CSV export. The upload is cached in
// the upload directory under its original filename, repeated uploads
// of the same filename overwrite the prior copy. The ingestion is
// atomic: either all parseable rows are stored or none.
func (co *Controller) CreateImport(c *gin.Context) {
	start := time.Now()

	formFile, err := getUploadedFile(c, ".csv")
	if err != nil {
		metrics.Imports.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	path := filepath.Join(co.uploadDir, filepath.Base(formFile.Filename))
	if err := c.SaveUploadedFile(formFile, path); err != nil {
		metrics.Imports.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	f, err := os.Open(path)
	if err != nil {
		metrics.Imports.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}
	defer f.Close()

	cfg := co.loader.Config()

	result, err := importer.Parse(f, cfg)
	if err != nil {
		// Missing date column and malformed CSV are caller problems
		metrics.Imports.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	categorize.New(cfg.Categories).Apply(result.Transactions)

	importID := uuid.New()
	for i := range result.Transactions {
		result.Transactions[i].ImportID = importID
	}

	if len(result.Transactions) > 0 {
		if err := models.DB.Create(&result.Transactions).Error; err != nil {
			metrics.Imports.WithLabelValues("failure").Inc()
			c.JSON(http.StatusInternalServerError, httperror.New(err))
			return
		}
	}

	metrics.Imports.WithLabelValues("success").Inc()
	metrics.RowsImported.Add(float64(len(result.Transactions)))
	metrics.RowsDropped.Add(float64(result.Dropped))
	metrics.ImportDuration.Observe(time.Since(start).Seconds())

	log.Info().
		Str("import-id", importID.String()).
		Str("file", formFile.Filename).
		Int("processed", len(result.Transactions)).
		Int("dropped", result.Dropped).
		Msg("import complete")

	c.JSON(http.StatusCreated, ImportResponse{
		ImportID:  importID,
		File:      filepath.Base(formFile.Filename),
		Processed: len(result.Transactions),
		Dropped:   result.Dropped,
	})
}
