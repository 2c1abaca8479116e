// Package catalog contiene el catálogo estático de planes vendibles.
//
// Es la única fuente de verdad para precios y puntos: todo cálculo de puntos
// (registro, stats, leaderboard) debe derivar de aquí y nunca de valores
// enviados por el cliente o copias en caché.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jcastillo/ventas-pap-api/internal/domain/entity"
)

// plans es la tabla fija de planes. Inmutable en runtime: los lectores reciben
// copias, nunca referencias a las entradas de esta tabla.
var plans = []entity.Plan{
	// ── AT&T Fiber ───────────────────────────────────────────────────────────
	{ID: "att-300", Company: entity.CompanyATT, Name: "AT&T Fiber 300", Speed: "300 Mbps", Price: dec("55"), Points: 4},
	{ID: "att-500", Company: entity.CompanyATT, Name: "AT&T Fiber 500", Speed: "500 Mbps", Price: dec("65"), Points: 5},
	{ID: "att-1gig", Company: entity.CompanyATT, Name: "AT&T Fiber 1 Gig", Speed: "1 Gbps", Price: dec("80"), Points: 8},
	{ID: "att-2gig", Company: entity.CompanyATT, Name: "AT&T Fiber 2 Gig", Speed: "2 Gbps", Price: dec("110"), Points: 10},
	{ID: "att-5gig", Company: entity.CompanyATT, Name: "AT&T Fiber 5 Gig", Speed: "5 Gbps", Price: dec("180"), Points: 12},

	// ── Frontier Fiber ───────────────────────────────────────────────────────
	{ID: "frontier-200", Company: entity.CompanyFrontier, Name: "Frontier Fiber 200", Speed: "200 Mbps", Price: dec("30"), Points: 3},
	{ID: "frontier-500", Company: entity.CompanyFrontier, Name: "Frontier Fiber 500", Speed: "500 Mbps", Price: dec("45"), Points: 4},
	{ID: "frontier-1gig", Company: entity.CompanyFrontier, Name: "Frontier Fiber 1 Gig", Speed: "1 Gbps", Price: dec("65"), Points: 6},
	{ID: "frontier-2gig", Company: entity.CompanyFrontier, Name: "Frontier Fiber 2 Gig", Speed: "2 Gbps", Price: dec("100"), Points: 9},
	{ID: "frontier-5gig", Company: entity.CompanyFrontier, Name: "Frontier Fiber 5 Gig", Speed: "5 Gbps", Price: dec("155"), Points: 12},

	// ── Spectrum ─────────────────────────────────────────────────────────────
	{ID: "spectrum-500", Company: entity.CompanySpectrum, Name: "Spectrum Internet 500", Speed: "500 Mbps", Price: dec("50"), Points: 3},
	{ID: "spectrum-1gig", Company: entity.CompanySpectrum, Name: "Spectrum Internet Gig", Speed: "1 Gbps", Price: dec("70"), Points: 5},
	{ID: "spectrum-tv-select", Company: entity.CompanySpectrum, Name: "Spectrum TV Select", Price: dec("60"), Points: 4},

	// ── DirecTV ──────────────────────────────────────────────────────────────
	{ID: "directv-entertainment", Company: entity.CompanyDirecTV, Name: "DIRECTV Entertainment", Price: dec("85"), Points: 5},
	{ID: "directv-choice", Company: entity.CompanyDirecTV, Name: "DIRECTV Choice", Price: dec("115"), Points: 6},

	// ── Vivint seguridad ─────────────────────────────────────────────────────
	{ID: "vivint-core", Company: entity.CompanyVivint, Name: "Vivint Smart Security", Price: dec("40"), Points: 6},
	{ID: "vivint-premium", Company: entity.CompanyVivint, Name: "Vivint Premium Security", Price: dec("60"), Points: 8},
}

// byID índice por ID, construido una vez al cargar el paquete.
var byID = func() map[string]entity.Plan {
	m := make(map[string]entity.Plan, len(plans))
	for _, p := range plans {
		m[p.ID] = p
	}
	return m
}()

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// List devuelve los planes del catálogo. Si company no está vacío, filtra por
// proveedor. Siempre devuelve una copia; el catálogo nunca se muta.
func List(company string) []entity.Plan {
	out := make([]entity.Plan, 0, len(plans))
	for _, p := range plans {
		if company != "" && p.Company != company {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get busca un plan por ID. Devuelve nil si no existe; los llamadores deben
// tratarlo como fallo de validación, no como error fatal.
func Get(id string) *entity.Plan {
	if p, ok := byID[id]; ok {
		cp := p
		return &cp
	}
	return nil
}
