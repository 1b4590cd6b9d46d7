// Package pdf implementa la generación del reporte de consumo de combustible
// de un vehículo usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Marca Modelo (centrado, grande)                     │
//	│  MATRÍCULA (centrada)                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Año | VIN | Kilometraje | Caja de cambios            │
//	│  fecha de generación (der)                                   │
//	│  TABLA: Fecha | Cantidad | Precio | Kilometraje | Persona    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

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

	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/internal/domain/entity"
	"github.com/fleetflow/fleetflow-api/internal/domain/repository"
)

var _ usecase.FuelReportGenerator = (*MarotoFuelReportGenerator)(nil)

const datetimeFormat = "2006-01-02 15:04"

var (
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoFuelReportGenerator implementa usecase.FuelReportGenerator usando Maroto v2.
type MarotoFuelReportGenerator struct{}

// NewMarotoFuelReportGenerator construye el generador.
func NewMarotoFuelReportGenerator() *MarotoFuelReportGenerator {
	return &MarotoFuelReportGenerator{}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoFuelReportGenerator) Generate(v *entity.Vehicle, refuels []repository.RefuelWithAuthor) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Reporte de combustible "+v.RegistrationNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(v)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(carDataRows(v)...)
	m.AddRows(metaRow())
	m.AddRows(fuelTableRows(refuels)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRows: nombre del vehículo y matrícula, centrados.
func titleRows(v *entity.Vehicle) []core.Row {
	return []core.Row{
		row.New(16).Add(
			col.New(12).Add(
				text.New(v.DisplayName(), props.Text{
					Style: fontstyle.Bold, Size: 26, Align: align.Center, Top: 2,
				}),
			),
		),
		row.New(12).Add(
			col.New(12).Add(
				text.New(v.RegistrationNumber, props.Text{
					Style: fontstyle.Bold, Size: 20, Align: align.Center, Top: 1,
				}),
			),
		),
	}
}

// carDataRows: tabla de datos del vehículo.
func carDataRows(v *entity.Vehicle) []core.Row {
	return []core.Row{
		row.New(8).Add(
			headerCell("Año de producción"),
			headerCell("VIN"),
			headerCell("Kilometraje"),
			headerCell("Caja de cambios"),
		),
		row.New(8).Add(
			bodyCell(strconv.Itoa(v.ProductionYear)),
			bodyCell(v.VIN),
			bodyCell(strconv.Itoa(v.Kilometrage)),
			bodyCell(string(v.GearboxType)),
		),
	}
}

// metaRow: fecha de generación alineada a la derecha.
func metaRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(time.Now().Format(datetimeFormat), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// fuelTableRows: cabecera y filas de repostajes, de más reciente a más antiguo.
func fuelTableRows(refuels []repository.RefuelWithAuthor) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			headerCellN(2, "Fecha"),
			headerCellN(2, "Cantidad"),
			headerCellN(2, "Precio"),
			headerCellN(3, "Kilometraje"),
			headerCellN(3, "Persona"),
		),
	}
	for _, r := range refuels {
		rf := r.Refuel
		rows = append(rows, row.New(7).Add(
			bodyCellN(2, rf.Date.Format(datetimeFormat)),
			bodyCellN(2, strconv.FormatFloat(rf.FuelAmount, 'f', -1, 64)),
			bodyCellN(2, rf.Price.String()),
			bodyCellN(3, strconv.Itoa(rf.KilometrageAtRefuel)),
			bodyCellN(3, r.AuthorName),
		))
	}
	return rows
}

func headerCell(s string) core.Col { return headerCellN(3, s) }
func bodyCell(s string) core.Col   { return bodyCellN(3, s) }

func headerCellN(size int, s string) core.Col {
	return col.New(size).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2}),
	)
}

func bodyCellN(size int, s string) core.Col {
	return col.New(size).Add(
		text.New(s, props.Text{Size: 9, Align: align.Center, Top: 2}),
	)
}
