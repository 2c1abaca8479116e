package dto

import "github.com/shopspring/decimal"

// PlanResponse un plan del catálogo tal como se expone por la API.
type PlanResponse struct {
	ID      string          `json:"id"`
	Company string          `json:"company"`
	Name    string          `json:"name"`
	Speed   string          `json:"speed,omitempty"`
	Price   decimal.Decimal `json:"price"`
	Points  int             `json:"points"`
}

// PlanListResponse listado de planes.
type PlanListResponse struct {
	Items []PlanResponse `json:"items"`
}
