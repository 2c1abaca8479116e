package entity

import "github.com/shopspring/decimal"

// Compañías proveedoras disponibles en el catálogo.
const (
	CompanyATT      = "att"
	CompanyFrontier = "frontier"
	CompanySpectrum = "spectrum"
	CompanyDirecTV  = "directv"
	CompanyVivint   = "vivint"
)

// Plan representa un plan vendible del catálogo (fibra, TV o seguridad).
// El catálogo es inmutable en runtime: los puntos y el precio de un plan nunca
// cambian mientras el proceso vive; las ventas históricas guardan su propia copia.
type Plan struct {
	ID      string          // único en todo el catálogo, ej: "att-1gig"
	Company string          // una de las constantes Company*
	Name    string          // nombre comercial
	Speed   string          // etiqueta de velocidad, ej: "1 Gbps" (vacío para TV/seguridad)
	Price   decimal.Decimal // cargo mensual, nunca negativo
	Points  int             // puntos que otorga la venta, fijos por plan
}
