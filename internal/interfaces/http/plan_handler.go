package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
	"github.com/jcastillo/ventas-pap-api/internal/domain/catalog"
	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// PlanHandler expone el catálogo de planes (solo lectura).
type PlanHandler struct{}

// NewPlanHandler construye el handler del catálogo.
func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// List godoc
// @Summary      Listar planes del catálogo
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        company  query  string  false  "Filtrar por proveedor (att, frontier, spectrum, directv, vivint)"
// @Success      200  {object}  dto.PlanListResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	company := c.Query("company")
	items := make([]dto.PlanResponse, 0)
	for _, p := range catalog.List(company) {
		items = append(items, toPlanResponse(p))
	}
	return c.JSON(dto.PlanListResponse{Items: items})
}

// GetByID godoc
// @Summary      Obtener un plan por ID
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plan, ej: att-1gig"
// @Success      200  {object}  dto.PlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *PlanHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	p := catalog.Get(id)
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plan no existe en el catálogo"})
	}
	return c.JSON(toPlanResponse(*p))
}

func toPlanResponse(p entity.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:      p.ID,
		Company: p.Company,
		Name:    p.Name,
		Speed:   p.Speed,
		Price:   p.Price,
		Points:  p.Points,
	}
}
