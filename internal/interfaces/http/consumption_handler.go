package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catering-api/internal/application/consumption"
	"github.com/jhoicas/catering-api/internal/application/dto"
	"github.com/jhoicas/catering-api/internal/domain"
	"github.com/jhoicas/catering-api/internal/domain/entity"
)

// ConsumptionHandler maneja el flujo de consumo: calcular, confirmar y revertir.
type ConsumptionHandler struct {
	calculateUC *consumption.CalculateConsumptionUseCase
	commitUC    *consumption.CommitConsumptionUseCase
	reverseUC   *consumption.ReverseBulkMovementUseCase
}

// NewConsumptionHandler construye el handler.
func NewConsumptionHandler(
	calculateUC *consumption.CalculateConsumptionUseCase,
	commitUC *consumption.CommitConsumptionUseCase,
	reverseUC *consumption.ReverseBulkMovementUseCase,
) *ConsumptionHandler {
	return &ConsumptionHandler{calculateUC: calculateUC, commitUC: commitUC, reverseUC: reverseUC}
}

// Calculate godoc
// @Summary      Calcular consumo de un menú
// @Description  Requerimiento agregado por producto, suficiencia contra el stock actual y costo. No escribe nada.
// @Tags         consumption
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateConsumptionRequest  true  "menu_id, guest_count"
// @Success      200   {object}  dto.CalculateConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consumption/calculate [post]
func (h *ConsumptionHandler) Calculate(c *fiber.Ctx) error {
	projectID := GetProjectID(c)
	if projectID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "project_id requerido"})
	}
	var in dto.CalculateConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MenuID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "menu_id es requerido"})
	}

	items, err := h.calculateUC.Calculate(c.UserContext(), projectID, in.MenuID, in.GuestCount)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "guest_count debe ser mayor que cero"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú o receta no encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el menú no pertenece a este proyecto"})
		case domain.ErrEmptyMenu:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_MENU", Message: "el menú no tiene recetas"})
		case domain.ErrInvalidRecipe:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RECIPE", Message: "receta con porción o tandas inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toCalculateResponse(items))
}

// Commit godoc
// @Summary      Confirmar consumo
// @Description  Registra el grupo de movimientos, un movimiento de salida por producto y descuenta stock en una sola transacción.
// @Tags         consumption
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitConsumptionRequest  true  "items calculados"
// @Success      201   {object}  dto.CommitConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Router       /api/consumption/commit [post]
func (h *ConsumptionHandler) Commit(c *fiber.Ctx) error {
	projectID := GetProjectID(c)
	userID := GetUserID(c)
	if projectID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "project_id requerido"})
	}
	var in dto.CommitConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := consumption.CommitInput{
		BulkID:     in.BulkID,
		MenuLabel:  in.MenuLabel,
		GuestCount: in.GuestCount,
		Items:      make([]entity.ConsumptionItem, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, entity.ConsumptionItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Unit:         item.Unit,
			TotalNeeded:  item.TotalNeeded,
			CurrentStock: item.CurrentStock,
			Sufficient:   item.Sufficient,
			UnitPrice:    item.UnitPrice,
			Cost:         item.Cost,
		})
	}

	bulkID, err := h.commitUC.Commit(c.UserContext(), projectID, userID, input)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			resp := dto.InsufficientStockResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: insufficient.Error(),
			}
			for _, p := range insufficient.Products {
				resp.Products = append(resp.Products, dto.InsufficientProductDTO{
					ProductID:   p.ProductID,
					ProductName: p.ProductName,
				})
			}
			return c.Status(fiber.StatusConflict).JSON(resp)
		}
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items y guest_count son requeridos"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el bulk_id ya fue confirmado"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "producto de otro proyecto"})
		case domain.ErrConcurrentModification:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_CHANGED", Message: "el stock cambió durante la operación, recalcule el consumo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommitConsumptionResponse{BulkMovementID: bulkID})
}

// Reverse godoc
// @Summary      Revertir un grupo de movimientos
// @Description  Genera movimientos compensatorios y restaura stock. Cada grupo se revierte una sola vez.
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Param        bulk_id  path  string  true  "ID del grupo a revertir"
// @Success      201  {object}  dto.ReverseConsumptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/consumption/{bulk_id}/reverse [post]
func (h *ConsumptionHandler) Reverse(c *fiber.Ctx) error {
	projectID := GetProjectID(c)
	userID := GetUserID(c)
	if projectID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "project_id requerido"})
	}
	bulkID := c.Params("bulk_id")
	if bulkID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "bulk_id es requerido"})
	}

	reversalID, err := h.reverseUC.Reverse(c.UserContext(), projectID, userID, bulkID)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "grupo no encontrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el grupo no pertenece a este proyecto"})
		case domain.ErrNotReversible:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_REVERSIBLE", Message: "el grupo ya fue revertido"})
		case domain.ErrConcurrentModification:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_CHANGED", Message: "revertir dejaría stock negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReverseConsumptionResponse{ReversalBulkID: reversalID})
}

func toCalculateResponse(items []entity.ConsumptionItem) dto.CalculateConsumptionResponse {
	resp := dto.CalculateConsumptionResponse{
		Items:         make([]dto.ConsumptionItemDTO, 0, len(items)),
		AllSufficient: true,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.ConsumptionItemDTO{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Unit:         item.Unit,
			TotalNeeded:  item.TotalNeeded,
			CurrentStock: item.CurrentStock,
			Sufficient:   item.Sufficient,
			UnitPrice:    item.UnitPrice,
			Cost:         item.Cost,
		})
		resp.TotalCost = resp.TotalCost.Add(item.Cost)
		if !item.Sufficient {
			resp.AllSufficient = false
		}
	}
	return resp
}
