package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/report"
)

// maxImportSize tamaño máximo del CSV de importación.
const maxImportSize = 10 << 20

// ReportHandler descargas de reportes e importación de productos.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Reporte de stock (CSV)
// @Tags         reports
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	return h.download(c, h.uc.StockReport)
}

// Movements godoc
// @Summary      Reporte de movimientos (CSV)
// @Tags         reports
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	return h.download(c, h.uc.MovementsReport)
}

// Valuation godoc
// @Summary      Reporte de valorización (CSV)
// @Tags         reports
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/reports/valuation [get]
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	return h.download(c, h.uc.ValuationReport)
}

// ValuationPDF godoc
// @Summary      Reporte de valorización (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/reports/valuation.pdf [get]
func (h *ReportHandler) ValuationPDF(c *fiber.Ctx) error {
	return h.download(c, h.uc.ValuationPDF)
}

// Import godoc
// @Summary      Importar productos desde CSV
// @Description  Encabezados reconocidos: Producto, SKU, Categoría, Stock Actual, Stock Mínimo, Precio Unitario, Proveedor.
// @Description  Los productos se agregan a los existentes.
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reports/import [post]
func (h *ReportHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "el campo file es requerido", Fields: []string{"file"},
		})
	}
	if fh.Size > maxImportSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code: "FILE_TOO_LARGE", Message: "el archivo supera 10 MB",
		})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	out, err := h.uc.ImportProducts(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ReportHandler) download(c *fiber.Ctx, build func(context.Context) (*dto.ReportFile, error)) error {
	file, err := build(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}
