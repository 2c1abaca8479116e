// Package pdf genera el reporte imprimible del leaderboard (A4) que las
// oficinas cuelgan cada semana: ranking, ventas y puntos por representante.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jcastillo/ventas-pap-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 84, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGold    = &props.Color{Red: 184, Green: 134, Blue: 11}
)

// LeaderboardReportGenerator genera el PDF del ranking usando Maroto v2.
type LeaderboardReportGenerator struct{}

// NewLeaderboardReportGenerator construye el generador.
func NewLeaderboardReportGenerator() *LeaderboardReportGenerator {
	return &LeaderboardReportGenerator{}
}

// Generate produce los bytes del PDF para el ranking indicado.
func (g *LeaderboardReportGenerator) Generate(
	_ context.Context,
	orgName string,
	board *dto.LeaderboardResponse,
	dateLabel string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Leaderboard de Ventas", true).
		WithAuthor(orgName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(orgName, dateLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(board.Metric))
	for _, r := range entryRows(board.Entries) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(board))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la organización (izq) y período (der).
func headerRow(orgName, dateLabel string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(orgName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Leaderboard de ventas aprobadas", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(dateLabel, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla; marca la métrica de ordenamiento.
func tableHeaderRow(metric string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	salesLabel, pointsLabel := "Ventas", "Puntos"
	if metric == dto.MetricTotalSales {
		salesLabel = "Ventas ▼"
	} else {
		pointsLabel = "Puntos ▼"
	}
	return row.New(9).Add(
		h("#", 1, align.Center),
		h("Representante", 6, align.Left),
		h(salesLabel, 2, align.Right),
		h(pointsLabel, 3, align.Right),
	)
}

// entryRows: una fila por posición; el primer lugar va resaltado.
func entryRows(entries []dto.LeaderboardEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		nameProps := props.Text{Size: 9, Align: align.Left, Top: 1}
		if e.Rank == 1 {
			nameProps.Style = fontstyle.Bold
			nameProps.Color = colorGold
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(e.Rank), props.Text{
				Size: 9, Align: align.Center, Top: 1,
			})),
			col.New(6).Add(text.New(e.SalesRepName, nameProps)),
			col.New(2).Add(text.New(strconv.Itoa(e.TotalSales), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			})),
			col.New(3).Add(text.New(strconv.Itoa(e.TotalPoints), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			})),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas aprobadas en el período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	return result
}

// footerRow: totales agregados del ranking.
func footerRow(board *dto.LeaderboardResponse) core.Row {
	var totalSales, totalPoints int
	for _, e := range board.Entries {
		totalSales += e.TotalSales
		totalPoints += e.TotalPoints
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("%d representantes · %d ventas aprobadas · %d puntos",
				len(board.Entries), totalSales, totalPoints),
			props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 2},
		)),
	)
}
