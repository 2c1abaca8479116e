package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastillo/ventas-pap-api/internal/application/analytics"
	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/application/sales"
	"github.com/jcastillo/ventas-pap-api/internal/domain"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// SaleHandler maneja las peticiones HTTP del flujo de ventas (protegido).
type SaleHandler struct {
	submit *sales.SubmitSaleUseCase
	decide *sales.DecideSaleUseCase
	sale   *sales.SaleUseCase
	stats  *analytics.StatsUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(submit *sales.SubmitSaleUseCase, decide *sales.DecideSaleUseCase, sale *sales.SaleUseCase, stats *analytics.StatsUseCase) *SaleHandler {
	return &SaleHandler{submit: submit, decide: decide, sale: sale, stats: stats}
}

// Submit godoc
// @Summary      Registrar una venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitSaleRequest  true  "Datos de la venta; los puntos se calculan en servidor"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.submit.Submit(c.Context(), GetUserID(c), GetUserName(c), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "pending, approved, rejected, cancelled"
// @Param        sales_rep_id  query  string  false  "Filtrar por representante (requiere sales:view_all)"
// @Param        limit         query  int     false  "Límite"  default(50)
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	salesRepID := c.Query("sales_rep_id")
	limit := c.QueryInt("limit", 0)

	// Sin sales:view_all solo se ven las ventas propias, ignorando el filtro pedido.
	if !entity.RoleHasPermission(GetRole(c), entity.PermSalesViewAll) {
		salesRepID = GetUserID(c)
	}

	out, err := h.sale.List(c.Context(), status, salesRepID, limit)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de ventas de una ventana de tiempo
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        period        query  string  false  "day, week, month, year"  default(month)
// @Param        sales_rep_id  query  string  false  "Acotar a un representante (requiere sales:view_all)"
// @Success      200  {object}  dto.StatsSnapshot
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/stats [get]
func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	period := c.Query("period")
	salesRepID := c.Query("sales_rep_id")

	if !entity.RoleHasPermission(GetRole(c), entity.PermSalesViewAll) {
		salesRepID = GetUserID(c)
	}

	out, err := h.stats.ComputeStats(c.Context(), period, salesRepID)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// Decide godoc
// @Summary      Aprobar o rechazar una venta pendiente
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DecideSaleRequest  true  "sale_id, status (approved|rejected), rejection_reason"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/approve [post]
func (h *SaleHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecideSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.decide.Decide(c.Context(), GetUserID(c), GetUserName(c), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.sale.GetByID(c.Context(), id)
	if err != nil {
		return saleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	// Sin sales:view_all solo se puede ver una venta propia.
	if out.SalesRepID != GetUserID(c) && !entity.RoleHasPermission(GetRole(c), entity.PermSalesViewAll) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la venta pertenece a otro representante"})
	}
	return c.JSON(out)
}

// AdminUpdate godoc
// @Summary      Editar una venta (administrativo)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.AdminUpdateSaleRequest  true  "Campos a sobrescribir"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) AdminUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AdminUpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sale.AdminUpdate(c.Context(), id, in)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una venta (administrativo)
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.sale.Delete(c.Context(), id); err != nil {
		return saleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// saleError traduce errores de dominio a respuestas HTTP.
func saleError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrPlanNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLAN_NOT_FOUND", Message: "plan no existe en el catálogo"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la venta ya fue decidida"})
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
