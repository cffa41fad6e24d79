package handlers

import (
	"mime"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/storage"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
)

// UploadHandler handles file upload routes
type UploadHandler struct {
	Store    *store.Store
	Files    *storage.FileStore
	MaxBytes int64
}

// Create handles POST /api/uploads
// @Summary Upload a file
// @Description Multipart field "file"; the type is detected from the content
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Success 201 {object} models.Upload
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 413 {object} utils.ErrorResponseStruct
// @Failure 415 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /uploads [post]
func (h *UploadHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, types.NewError(fiber.StatusBadRequest, "validation.input", "Multipart field \"file\" is required"), "uploads.create")
	}
	if fh.Size > h.MaxBytes {
		return respondError(c, services.ErrTooLarge, "uploads.create")
	}

	f, err := fh.Open()
	if err != nil {
		return respondError(c, err, "uploads.create")
	}
	defer f.Close()

	upload, err := services.SaveUpload(c.UserContext(), h.Store, h.Files, claims(c), fh.Filename, f, h.MaxBytes)
	if err != nil {
		return respondError(c, err, "uploads.create")
	}
	return c.Status(fiber.StatusCreated).JSON(upload)
}

// Get handles GET /api/uploads/:id
// @Summary Download an uploaded file
// @Tags Uploads
// @Produce octet-stream
// @Param id path string true "Upload id"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /uploads/{id} [get]
func (h *UploadHandler) Get(c *fiber.Ctx) error {
	upload, f, err := services.OpenUpload(c.UserContext(), h.Store, h.Files, c.Params("id"))
	if err != nil {
		return respondError(c, err, "uploads.get")
	}

	disposition := "attachment"
	if queryBool(c, "inline") {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, upload.ContentType)
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType(disposition, map[string]string{"filename": upload.FileName}))

	// the stream is closed once sent
	return c.SendStream(f, int(upload.Size))
}
