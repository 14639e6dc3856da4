package receipts

import (
	"bytes"
	"time"

	"manolos-gestion/internal/platform/money"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Data es lo mínimo que necesita un comprobante. Client/Service ya vienen
// resueltos a nombre (o "-" si la referencia está rota).
type Data struct {
	Client  string
	Service string
	Date    time.Time
	Total   decimal.Decimal
}

// Render produce el comprobante como PDF de una página, en memoria.
// Layout fijo: título centrado, cliente, servicio, fecha y total en COP.
func Render(d Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // tildes y ñ en core fonts
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr("Comprobante - Manolo's Gestión"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr("Cliente: "+d.Client), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Servicio: "+d.Service), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Fecha: "+d.Date.Format(time.RFC3339)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 10, tr("Total: "+money.FormatCOP(d.Total)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
