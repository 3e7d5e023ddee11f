package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catering-api/internal/application/dto"
	"github.com/jhoicas/catering-api/internal/application/movements"
	"github.com/jhoicas/catering-api/internal/application/reports"
	"github.com/jhoicas/catering-api/internal/domain"
)

// MovementHandler maneja la lectura del libro de movimientos y la orden de consumo en PDF.
type MovementHandler struct {
	listUC   *movements.ListMovementsUseCase
	reportUC *reports.ConsumptionReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(listUC *movements.ListMovementsUseCase, reportUC *reports.ConsumptionReportUseCase) *MovementHandler {
	return &MovementHandler{listUC: listUC, reportUC: reportUC}
}

// parseDateParam acepta fecha corta (2006-01-02) o RFC3339.
func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List godoc
// @Summary      Listar movimientos agrupados
// @Description  Movimientos del proyecto en la ventana [from, to], agrupados por transacción lógica (grupo bulk o movimiento suelto).
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Fecha inicial (2006-01-02 o RFC3339)"
// @Param        to      query  string  false  "Fecha final (2006-01-02 o RFC3339)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}   dto.MovementGroupDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	projectID := GetProjectID(c)
	if projectID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "project_id requerido"})
	}
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: formato de fecha inválido"})
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: formato de fecha inválido"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if page.Limit > 100 {
		page.Limit = 100
	}

	groups, err := h.listUC.List(c.UserContext(), projectID, from, to, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(groups)
}

// DownloadReport godoc
// @Summary      Descargar orden de consumo (PDF)
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        bulk_id  path  string  true  "ID del grupo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{bulk_id}/report [get]
func (h *MovementHandler) DownloadReport(c *fiber.Ctx) error {
	projectID := GetProjectID(c)
	if projectID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "project_id requerido"})
	}
	bulkID := c.Params("bulk_id")
	if bulkID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "bulk_id es requerido"})
	}

	pdfBytes, filename, err := h.reportUC.DownloadBulkReport(c.UserContext(), projectID, bulkID)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "grupo no encontrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el grupo no pertenece a este proyecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
