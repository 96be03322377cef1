package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Get the electronic invoice
// @Description Returns the generated invoice for one appointment as JSON
// @Tags Invoices
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} successResponseBody "Invoice"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/invoice [get]
func (h *Handler) getInvoice(c *gin.Context) {
	invoice, err := h.services.Invoice.Build(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "appointment not found")
		return
	}

	successResponse(c, http.StatusOK, invoice)
}

// @Summary Download the invoice as PDF
// @Tags Invoices
// @Produce application/pdf
// @Param id path string true "Appointment ID"
// @Success 200 {file} file "PDF document"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 500 {object} errorResponseBody "Rendering failed"
// @Router /appointments/{id}/invoice/pdf [get]
func (h *Handler) getInvoicePDF(c *gin.Context) {
	data, filename, err := h.services.Invoice.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("rendering invoice PDF", zap.String("id", c.Param("id")), zap.Error(err))
		notFoundResponse(c, "appointment not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
