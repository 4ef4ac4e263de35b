package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scorecard/errors"
	dto "github.com/johnquangdev/meeting-scorecard/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-scorecard/internal/adapter/presenter"
	analysisuc "github.com/johnquangdev/meeting-scorecard/internal/usecase/analysis"
	pkgvalidator "github.com/johnquangdev/meeting-scorecard/pkg/validator"
)

const apiBasePath = "/v1"

// Analysis handles meeting scoring and CSV import endpoints
type Analysis struct {
	svc         analysisuc.Service
	maxCSVBytes int64
	logger      *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysisuc.Service, maxCSVBytes int64, logger *zap.Logger) *Analysis {
	return &Analysis{svc: svc, maxCSVBytes: maxCSVBytes, logger: logger}
}

// AnalyzeMeeting scores one manually entered meeting
// @Summary      Analyze a meeting
// @Description  Scores a single meeting entered through the form and returns its breakdown and recommendations
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeMeetingRequest  true  "Meeting details"
// @Success      200      {object}  dto.AnalysisResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid payload or validation failed"
// @Failure      408      {object}  map[string]interface{}  "Request cancelled"
// @Router       /meetings/analyze [post]
func (h *Analysis) AnalyzeMeeting(c echo.Context) error {
	var req dto.AnalyzeMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(pkgvalidator.ValidationDetails(err)))
	}

	input, err := presenter.ToManualInput(&req)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(map[string]string{"date": err.Error()}))
	}

	result, err := h.svc.AnalyzeMeeting(requestContext(c), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(result, &req))
}

// ImportCSV scores an uploaded CSV file
// @Summary      Import a CSV file
// @Description  Scores every meeting in a CSV document sent as a multipart "file" field or as a raw text/csv body
// @Tags         Imports
// @Accept       multipart/form-data
// @Accept       text/csv
// @Produce      json
// @Param        file  formData  file  false  "CSV file"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  map[string]interface{}  "Empty or malformed CSV"
// @Failure      413   {object}  map[string]interface{}  "CSV too large"
// @Router       /imports/csv [post]
func (h *Analysis) ImportCSV(c echo.Context) error {
	text, err := h.readCSV(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.svc.AnalyzeCSV(requestContext(c), text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToBatchResponse(result, apiBasePath))
}

// ImportURL downloads and scores a CSV file
// @Summary      Import a CSV from a URL
// @Description  Downloads a CSV document with a single attempt and scores every meeting in it
// @Tags         Imports
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ImportURLRequest  true  "CSV location"
// @Success      200      {object}  dto.BatchResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid URL"
// @Failure      502      {object}  map[string]interface{}  "Remote file could not be fetched"
// @Router       /imports/url [post]
func (h *Analysis) ImportURL(c echo.Context) error {
	var req dto.ImportURLRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(pkgvalidator.ValidationDetails(err)))
	}

	result, err := h.svc.ImportFromURL(requestContext(c), req.URL)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToBatchResponse(result, apiBasePath))
}

// ImportDemo scores the sample data set
// @Summary      Import the demo data set
// @Description  Downloads and scores the configured sample CSV
// @Tags         Imports
// @Produce      json
// @Success      200  {object}  dto.BatchResponse
// @Failure      502  {object}  map[string]interface{}  "Sample could not be fetched"
// @Router       /imports/demo [post]
func (h *Analysis) ImportDemo(c echo.Context) error {
	result, err := h.svc.ImportDemo(requestContext(c))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToBatchResponse(result, apiBasePath))
}

// GetImport returns a previously scored batch
// @Summary      Get an import
// @Description  Returns a cached batch result while it has not expired
// @Tags         Imports
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  map[string]interface{}  "Batch not found or expired"
// @Router       /imports/{id} [get]
func (h *Analysis) GetImport(c echo.Context) error {
	result, err := h.svc.GetBatch(requestContext(c), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToBatchResponse(result, apiBasePath))
}

// ExportImport downloads a batch as JSON
// @Summary      Export an import
// @Description  Downloads the batch result as meeting-analysis-results.json
// @Tags         Imports
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]interface{}  "Batch not found or expired"
// @Router       /imports/{id}/export [get]
func (h *Analysis) ExportImport(c echo.Context) error {
	id := c.Param("id")
	document, err := h.svc.Export(requestContext(c), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Info("http.response.export",
			zap.String("request_id", getRequestID(c)),
			zap.String("batch_id", id),
			zap.Int("bytes", len(document)),
		)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", analysisuc.ExportFileName))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, document)
}

// PublishImport uploads a batch export to object storage
// @Summary      Publish an import
// @Description  Uploads the export document to object storage and returns a presigned download link
// @Tags         Imports
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  dto.PublishResponse
// @Failure      404  {object}  map[string]interface{}  "Batch not found or expired"
// @Failure      501  {object}  map[string]interface{}  "Object storage disabled"
// @Router       /imports/{id}/publish [post]
func (h *Analysis) PublishImport(c echo.Context) error {
	id := c.Param("id")
	url, err := h.svc.Publish(requestContext(c), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToPublishResponse(id, url, analysisuc.ExportFileName))
}

// Catalog lists the meeting form choices
// @Summary      Form catalog
// @Description  Lists meeting types, functional categories and form defaults
// @Tags         Analysis
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /catalog [get]
func (h *Analysis) Catalog(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToCatalogResponse())
}

// readCSV extracts CSV text from a multipart upload or a raw body
func (h *Analysis) readCSV(c echo.Context) (string, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	var reader io.Reader
	if strings.HasPrefix(strings.ToLower(contentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return "", errors.ErrInvalidArgument("Missing multipart field \"file\"")
		}
		if h.maxCSVBytes > 0 && fileHeader.Size > h.maxCSVBytes {
			return "", errors.ErrSourceTooLarge(h.maxCSVBytes)
		}
		file, err := fileHeader.Open()
		if err != nil {
			return "", errors.ErrInternal(err)
		}
		defer file.Close()
		reader = file
	} else {
		if c.Request().Body == nil {
			return "", errors.ErrSourceEmpty()
		}
		reader = c.Request().Body
	}

	if h.maxCSVBytes > 0 {
		reader = io.LimitReader(reader, h.maxCSVBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.ErrInvalidPayload()
	}
	if h.maxCSVBytes > 0 && int64(len(data)) > h.maxCSVBytes {
		return "", errors.ErrSourceTooLarge(h.maxCSVBytes)
	}
	return string(data), nil
}
