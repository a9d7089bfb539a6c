package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobgenix/crm-system/internal/core/ports"
)

// DocumentHandler handles uploads, listing and deletion of employee
// documents. Contents are stored opaquely; nothing here parses them.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Upload handles POST /v1/documents/:kind with a multipart "file" field.
//
// @Summary      Upload a document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Document kind: spreadsheets or resumes"
// @Param        file  formData  file    true  "File to store"
// @Success      201   {object}  ports.DocumentInfo
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/documents/{kind} [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}

	info, err := h.service.Upload(c.Request().Context(), actor, c.Param("kind"), fh.Filename, content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, info)
}

// List handles GET /v1/documents/:kind.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Document kind: spreadsheets or resumes"
// @Success      200   {array}   ports.DocumentInfo
// @Failure      400   {object}  errorResponse
// @Router       /v1/documents/{kind} [get]
func (h *DocumentHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	docs, err := h.service.List(c.Request().Context(), actor, c.Param("kind"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Delete handles DELETE /v1/documents/:kind/:name.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Document kind: spreadsheets or resumes"
// @Param        name  path      string  true  "Stored file name"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/documents/{kind}/{name} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("kind"), c.Param("name")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "document deleted"})
}
