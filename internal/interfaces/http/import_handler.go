package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
)

// ImportHandler vista previa y confirmación de importación de leads.
type ImportHandler struct {
	uc *crm.LeadImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *crm.LeadImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Preview godoc
// @Summary      Vista previa de importación
// @Description  Acepta multipart con "file" (.xlsx/.csv), JSON {url} de Google Sheets o JSON {rows}.
// @Tags         leads
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.ImportPreviewRequest  false  "url o rows"
// @Success      200   {object}  dto.ImportPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/leads/import/preview [post]
func (h *ImportHandler) Preview(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return respondError(c, errNoFile)
		}
		f, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return respondError(c, err)
		}
		out, err := h.uc.PreviewFile(c.UserContext(), actorID, fh.Filename, data)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}

	var in dto.ImportPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var (
		out *dto.ImportPreviewResponse
		err error
	)
	if in.Rows != nil {
		out, err = h.uc.PreviewRows(c.UserContext(), actorID, in.Rows)
	} else {
		out, err = h.uc.PreviewURL(c.UserContext(), actorID, in.URL)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar importación
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportConfirmRequest  true  "registros"
// @Success      201   {object}  dto.ImportConfirmResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/leads/import/confirm [post]
func (h *ImportHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ImportConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Confirm(c.UserContext(), GetUserID(c), in.Records)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
