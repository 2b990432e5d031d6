package infrastructure

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"medresFront/internal/modules/reservations/application/usecase"
	"medresFront/internal/modules/reservations/domain"
)

// ReportDocument renders the admin reservation report as a PDF: header,
// applied filters, totals block, status counts and the detail table.
type ReportDocument struct {
	Filters      usecase.FilterSet
	Reservations []domain.Reservation
	Totals       usecase.ReportTotals
	Occupancy    float64
	ByStatus     map[domain.Status]int
	GeneratedAt  time.Time
}

func (d ReportDocument) Render(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Reporte de Reservas")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generado: %s", d.GeneratedAt.Format("02/01/2006 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Filtros aplicados")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Huesped: %s", orDash(d.Filters.Name)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Estados: %s", statusFilterLabel(d.Filters.Statuses)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Desde: %s   Hasta: %s", dateLabel(d.Filters.From), dateLabel(d.Filters.To)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Totales")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Reservas: %d", d.Totals.ReservationCount))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Ingresos: $%.2f", d.Totals.TotalRevenue))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Estadia promedio: %.1f noches", d.Totals.AverageStayNights))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Ocupacion: %.2f%%", d.Occupancy))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Por estado")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, status := range domain.KnownStatuses() {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %d", status, d.ByStatus[status]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Detalle")
	pdf.Ln(8)
	d.renderTable(pdf)

	return pdf.Output(w)
}

var reportColumns = []struct {
	title string
	width float64
}{
	{"Nro", 14},
	{"Huesped", 46},
	{"Ingreso", 24},
	{"Salida", 24},
	{"Noches", 16},
	{"Total", 26},
	{"Estado", 28},
}

func (d ReportDocument) renderTable(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	for _, col := range reportColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range d.Reservations {
		cells := []string{
			fmt.Sprintf("%d", r.Number),
			fmt.Sprintf("%s %s", r.FirstName, r.LastName),
			r.CheckIn.Format("02/01/2006"),
			r.CheckOut.Format("02/01/2006"),
			fmt.Sprintf("%d", r.Nights),
			fmt.Sprintf("$%.2f", r.TotalPrice),
			string(r.Status),
		}
		for i, col := range reportColumns {
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func dateLabel(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("02/01/2006")
}

func statusFilterLabel(statuses []domain.Status) string {
	if len(statuses) == 0 {
		return "Todos"
	}
	label := ""
	for i, s := range statuses {
		if i > 0 {
			label += ", "
		}
		label += string(s)
	}
	return label
}
