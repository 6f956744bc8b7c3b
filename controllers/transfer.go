package controllers

import (
	"errors"
	"io"
	"net/http"

	"productlib/middleware"
	"productlib/tools"
	"productlib/transfer"

	"github.com/gin-gonic/gin"
)

// POST /api/import (multipart field "file")
// Replaces the whole catalog with the uploaded document.
func (h *Handler) ImportData(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		RespondError(c, "file is required", http.StatusBadRequest)
		return
	}
	if !tools.IsJSONFilename(fh.Filename) {
		RespondError(c, "Only JSON files are allowed", http.StatusBadRequest)
		return
	}

	f, err := fh.Open()
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	s, ok := storeInstance(c)
	if !ok {
		return
	}
	result, err := transfer.NewReplacer(s, middleware.Logger(c)).Replace(fh.Filename, data)
	if err != nil {
		var verr *transfer.ValidationError
		if errors.As(err, &verr) {
			RespondError(c, verr.Msg, http.StatusBadRequest)
			return
		}
		RespondError(c, "Import failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, result)
}

// GET /api/export
// Writes an export file on the server and returns its name.
func (h *Handler) ExportData(c *gin.Context) {
	s, ok := storeInstance(c)
	if !ok {
		return
	}
	exporter := transfer.NewExporter(s, h.Conf.ExportDir, h.Conf.StaticPrefix, middleware.Logger(c))
	result, err := exporter.Export()
	if err != nil {
		respondInternal(c, err)
		return
	}
	RespondSuccess(c, result)
}
