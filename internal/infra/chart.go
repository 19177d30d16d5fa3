package infra

// Price-evolution chart export using go-pdf/fpdf.
// One A4 landscape page:
//   - Title with product name
//   - Unit price (y) over purchase date (x), grid and tick labels
//   - One coloured polyline with markers per store, in first-seen order
//   - Legend with store names

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/format"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ErrNoChartData is returned when there are no points to plot.
var ErrNoChartData = errors.New("nenhum dado encontrado para este produto")

// palette is the tab10 colour cycle; stores past the tenth reuse it.
var palette = [][3]int{
	{31, 119, 180}, {255, 127, 14}, {44, 160, 44}, {214, 39, 40},
	{148, 103, 189}, {140, 86, 75}, {227, 119, 194}, {127, 127, 127},
	{188, 189, 34}, {23, 190, 207},
}

type storeSeries struct {
	name   string
	points []dto.PricePoint
}

func groupByStore(points []dto.PricePoint) []storeSeries {
	index := map[string]int{}
	var out []storeSeries
	for _, p := range points {
		i, ok := index[p.Supermercado]
		if !ok {
			i = len(out)
			index[p.Supermercado] = i
			out = append(out, storeSeries{name: p.Supermercado})
		}
		out[i].points = append(out[i].points, p)
	}
	return out
}

// RenderPriceChart writes a one-page PDF chart of unit price over time for
// the given points (expected in ascending date order).
func RenderPriceChart(w io.Writer, produto string, points []dto.PricePoint) error {
	if len(points) == 0 {
		return ErrNoChartData
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()

	// ── Title ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(pageW-30, 8, tr("Evolução de Preços: "+produto), "", 1, "C", false, 0, "")

	// ── Plot area ─────────────────────────────────────────────────────────────
	left, top := 35.0, 30.0
	right, bottom := pageW-60, pageH-30
	plotW, plotH := right-left, bottom-top

	minT, maxT := points[0].DataCompra.Time, points[0].DataCompra.Time
	minP, maxP := points[0].PrecoUnitario, points[0].PrecoUnitario
	for _, p := range points[1:] {
		if p.DataCompra.Before(minT) {
			minT = p.DataCompra.Time
		}
		if p.DataCompra.Time.After(maxT) {
			maxT = p.DataCompra.Time
		}
		minP = decimal.Min(minP, p.PrecoUnitario)
		maxP = decimal.Max(maxP, p.PrecoUnitario)
	}
	if !maxT.After(minT) {
		minT = minT.AddDate(0, 0, -1)
		maxT = maxT.AddDate(0, 0, 1)
	}
	lo, _ := minP.Float64()
	hi, _ := maxP.Float64()
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = hi*0.1 + 0.5
	}
	lo, hi = lo-pad, hi+pad
	if lo < 0 {
		lo = 0
	}

	xOf := func(t time.Time) float64 {
		return left + plotW*float64(t.Sub(minT))/float64(maxT.Sub(minT))
	}
	yOf := func(v decimal.Decimal) float64 {
		f, _ := v.Float64()
		return bottom - plotH*(f-lo)/(hi-lo)
	}

	// ── Grid and ticks ────────────────────────────────────────────────────────
	const ticks = 5
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(220, 220, 220)
	for i := 0; i <= ticks; i++ {
		v := lo + (hi-lo)*float64(i)/ticks
		y := bottom - plotH*float64(i)/ticks
		pdf.Line(left, y, right, y)
		pdf.SetXY(left-28, y-2)
		pdf.CellFormat(26, 4, format.Currency(decimal.NewFromFloat(v)), "", 0, "R", false, 0, "")

		t := minT.Add(time.Duration(float64(maxT.Sub(minT)) * float64(i) / ticks))
		x := left + plotW*float64(i)/ticks
		pdf.Line(x, top, x, bottom)
		pdf.SetXY(x-12, bottom+2)
		pdf.CellFormat(24, 4, t.Format("02/01/2006"), "", 0, "C", false, 0, "")
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(left, bottom, right, bottom)
	pdf.Line(left, top, left, bottom)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(left, bottom+8)
	pdf.CellFormat(plotW, 5, "Data", "", 0, "C", false, 0, "")
	pdf.TransformBegin()
	pdf.TransformRotate(90, 12, top+plotH/2)
	pdf.SetXY(12-plotH/2, top+plotH/2-2.5)
	pdf.CellFormat(plotH, 5, tr("Preço Unitário (R$)"), "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	// ── Series ───────────────────────────────────────────────────────────────
	series := groupByStore(points)
	pdf.SetLineWidth(0.6)
	for i, s := range series {
		c := palette[i%len(palette)]
		pdf.SetDrawColor(c[0], c[1], c[2])
		pdf.SetFillColor(c[0], c[1], c[2])
		for j, p := range s.points {
			x, y := xOf(p.DataCompra.Time), yOf(p.PrecoUnitario)
			if j > 0 {
				prev := s.points[j-1]
				pdf.Line(xOf(prev.DataCompra.Time), yOf(prev.PrecoUnitario), x, y)
			}
			pdf.Circle(x, y, 1.2, "F")
		}
	}

	// ── Legend ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for i, s := range series {
		c := palette[i%len(palette)]
		y := top + float64(i)*6
		pdf.SetFillColor(c[0], c[1], c[2])
		pdf.Rect(right+6, y, 4, 4, "F")
		pdf.SetXY(right+12, y)
		pdf.CellFormat(pageW-right-27, 4, tr(s.name), "", 0, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("chart: write pdf: %w", err)
	}
	return nil
}
