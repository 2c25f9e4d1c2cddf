package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/billing"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas y pagos (protegido).
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler. pdfUC puede ser nil si no hay generador configurado.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// List GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear factura
// @Description  Cantidad x tarifa por línea; total = subtotal + impuesto - descuento. El ID se genera en el servidor.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	invoice, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Preview POST /api/invoices/preview
//
// Calcula los totales del formulario sin persistir nada.
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoicePreviewRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	return c.JSON(h.uc.Preview(in.Items, in.Tax, in.Discount))
}

// UpdatePaymentStatus PATCH /api/invoices/:id/payment-status
func (h *InvoiceHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	var in dto.UpdatePaymentStatusRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	invoice, err := h.uc.UpdatePaymentStatus(c.UserContext(), GetUserID(c), c.Params("id"), in.PaymentStatus)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "ID de la factura (INV-...)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	if h.pdfUC == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "PDF_DISABLED", Message: "PDF generation is not configured"})
	}
	pdf, filename, err := h.pdfUC.DownloadInvoicePDF(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Payments godoc
// @Summary      Pagos: facturas filtradas por estado y totales pendiente/cobrado
// @Tags         payments
// @Produce      json
// @Param        status  query  string  false  "pending | paid | overdue | all"
// @Success      200  {object}  dto.PaymentsResponse
// @Router       /api/payments [get]
func (h *InvoiceHandler) Payments(c *fiber.Ctx) error {
	out, err := h.uc.Payments(c.UserContext(), GetUserID(c), c.Query("status", billing.StatusAll))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
