package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
)

var errNoFile = domain.NewValidationError("Please select a file to upload")

// DocumentHandler maneja las peticiones HTTP de documentos (protegido).
type DocumentHandler struct {
	uc *crm.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *crm.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List godoc
// @Summary      Listar documentos
// @Tags         documents
// @Produce      json
// @Param        lead_id      query  string  false  "filtrar por lead"
// @Param        customer_id  query  string  false  "filtrar por cliente"
// @Success      200  {array}   dto.DocumentResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	leadID, err := uuidQuery(c, "lead_id")
	if err != nil {
		return respondError(c, err)
	}
	customerID, err := uuidQuery(c, "customer_id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.List(c.UserContext(), GetUserID(c), leadID, customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Upload godoc
// @Summary      Subir documento
// @Tags         documents
// @Accept       mpfd
// @Produce      json
// @Param        file           formData  file    true   "archivo"
// @Param        document_name  formData  string  true   "nombre"
// @Param        document_type  formData  string  false  "tipo"
// @Success      201  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	var in dto.UploadDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(&in); err != nil {
		return respondError(c, err)
	}

	var file *crm.FileUpload
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return respondError(c, err)
		}
		file = &crm.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Data:        data,
		}
	}

	doc, err := h.uc.Upload(c.UserContext(), GetUserID(c), in, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// Delete DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Document deleted!"})
}
