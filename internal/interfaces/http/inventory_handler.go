package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
)

// HeaderUser cabecera con el actor que registra el movimiento.
const HeaderUser = "X-User"

// InventoryHandler movimientos y lista de reposición.
type InventoryHandler struct {
	registerUC      *inventory.RegisterMovementUseCase
	replenishmentUC *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(registerUC *inventory.RegisterMovementUseCase, replenishmentUC *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{registerUC: registerUC, replenishmentUC: replenishmentUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  type es entrada o salida. Una salida mayor que el stock responde 409 y no modifica nada.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-User  header  string  false  "Usuario que registra"
// @Param        body    body    dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201     {object}  dto.MovementResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.registerUC.RegisterMovementFromRequest(c.UserContext(), c.Get(HeaderUser), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Libro de movimientos
// @Description  Del más reciente al más antiguo.
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200         {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var filter dto.MovementFilter
	if err := c.QueryParser(&filter); err != nil {
		return writeError(c, err)
	}
	out, err := h.registerUC.List(c.UserContext(), filter.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos con stock bajo o agotado, primero los agotados.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	out, err := h.replenishmentUC.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
