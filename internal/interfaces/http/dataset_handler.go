package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/elparadero/inventario-api/internal/application/dataset"
	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain"
)

// DatasetHandler maneja exportación, importación y reporte del inventario completo.
type DatasetHandler struct {
	exportUC *dataset.ExportUseCase
	importUC *dataset.ImportUseCase
	reportUC *dataset.ReportUseCase
}

// NewDatasetHandler construye el handler del dataset.
func NewDatasetHandler(exportUC *dataset.ExportUseCase, importUC *dataset.ImportUseCase, reportUC *dataset.ReportUseCase) *DatasetHandler {
	return &DatasetHandler{exportUC: exportUC, importUC: importUC, reportUC: reportUC}
}

// Export godoc
// @Summary      Exportar dataset completo
// @Description  Devuelve las cinco colecciones en el formato portable versionado.
// @Tags         dataset
// @Produce      json
// @Success      200  {object}  dto.DatasetSnapshot
// @Router       /api/dataset/export [get]
func (h *DatasetHandler) Export(c *fiber.Ctx) error {
	snap, err := h.exportUC.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario_%s.json", snap.ExportDate.Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(snap)
}

// Import godoc
// @Summary      Importar dataset completo
// @Description  Reemplaza las cinco colecciones por el contenido del archivo.
// @Description  Operación destructiva: requiere confirm=true; sin él responde
// @Description  409 con los conteos del payload para que el cliente confirme.
// @Tags         dataset
// @Accept       json
// @Produce      json
// @Param        confirm  query  bool                 false  "confirmación explícita"
// @Param        body     body   dto.DatasetSnapshot  true   "snapshot exportado"
// @Success      200  {object}  dto.ImportResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dataset/import [post]
func (h *DatasetHandler) Import(c *fiber.Ctx) error {
	var snap dto.DatasetSnapshot
	if err := c.BodyParser(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "el archivo no es un JSON válido"})
	}
	if err := dataset.Validate(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato de archivo inválido: faltan colecciones requeridas"})
	}
	if !c.QueryBool("confirm") {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":    "CONFIRMATION_REQUIRED",
			"message": domain.ErrImportNotConfirmed.Error() + ": la importación reemplaza todos los datos actuales, repite la petición con confirm=true",
			"counts":  dataset.Counts(&snap),
		})
	}
	result, err := h.importUC.Import(c.UserContext(), &snap)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato de archivo inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// Report godoc
// @Summary      Reporte completo de inventario en PDF
// @Tags         dataset
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dataset/report [get]
func (h *DatasetHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.ExportPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("reporte_inventario_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
