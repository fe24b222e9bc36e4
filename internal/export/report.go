package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ADML003/analytics-dashboard/internal/models"
)

// ReportData is everything the dashboard report renders.
type ReportData struct {
	Metrics   []models.MetricCard
	Campaigns []models.CampaignRecord
	Traffic   []models.TrafficSource
}

// ReportFilename builds the dated report name.
func ReportFilename(t time.Time) string {
	return fmt.Sprintf("marketing-dashboard-report-%s.pdf", t.Format("2006-01-02"))
}

const (
	pageBreakMargin = 25.0
	headerRowHeight = 7.0
	bodyRowHeight   = 6.0
)

// Campaign section columns are fixed-width so wrapping stays identical
// across report runs regardless of content.
var campaignWidths = []float64{40, 24, 20, 22, 22, 24, 24, 14}

// Report lays out the three-section dashboard report: a title block,
// the generation date, then Key Metrics Overview, Campaign Performance
// and Traffic Sources as bordered tables. Rows that would overflow the
// page trigger a break with the section header repeated, and every page
// carries a "Page X of Y" footer resolved after layout via the page
// count alias.
func Report(title string, generated time.Time, data ReportData) ([]byte, error) {
	r := newReport()

	r.titleBlock(title, generated)

	r.section("Key Metrics Overview")
	r.table(tableStyle{fontSize: 10, fill: [3]int{41, 128, 185}},
		[]string{"Metric", "Value", "Change", "Trend"}, nil, metricRows(data.Metrics))

	r.section("Campaign Performance")
	r.table(tableStyle{fontSize: 8, fill: [3]int{46, 204, 113}},
		[]string{"Campaign", "Platform", "Status", "Budget", "Spent", "Conversions", "Revenue", "ROAS"},
		campaignWidths, campaignRows(data.Campaigns))

	r.section("Traffic Sources")
	r.table(tableStyle{fontSize: 10, fill: [3]int{155, 89, 182}},
		[]string{"Source", "Visitors", "Percentage"}, nil, trafficRows(data.Traffic))

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func metricRows(cards []models.MetricCard) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, m := range cards {
		rows = append(rows, []string{
			m.Title,
			m.FormattedValue(),
			models.FormatSignedPercent(m.Change),
			models.ChangeWord(m.ChangeType),
		})
	}
	return rows
}

func campaignRows(records []models.CampaignRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, c := range records {
		rows = append(rows, []string{
			c.Name,
			string(c.Platform),
			string(c.Status),
			models.FormatCurrency(c.Budget),
			models.FormatCurrency(c.Spent),
			models.FormatNumber(float64(c.Conversions)),
			models.FormatCurrency(c.Revenue),
			models.FormatRatio(c.ROAS()),
		})
	}
	return rows
}

func trafficRows(sources []models.TrafficSource) [][]string {
	rows := make([][]string, 0, len(sources))
	for _, s := range sources {
		rows = append(rows, []string{
			s.Source,
			models.FormatNumber(float64(s.Visitors)),
			models.FormatDecimal(s.Percentage) + "%",
		})
	}
	return rows
}

type report struct {
	pdf    *gofpdf.Fpdf
	pageW  float64
	breakY float64
	left   float64
	usable float64
}

type tableStyle struct {
	fontSize float64
	fill     [3]int
}

func newReport() *report {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return &report{
		pdf:    pdf,
		pageW:  w,
		breakY: h - pageBreakMargin,
		left:   left,
		usable: w - left - right,
	}
}

func (r *report) titleBlock(title string, generated time.Time) {
	r.pdf.SetFont("Helvetica", "B", 20)
	r.pdf.SetTextColor(40, 40, 40)
	r.pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")

	r.pdf.SetFont("Helvetica", "", 12)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(0, 8, "Generated on: "+generated.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *report) section(name string) {
	// A section never starts closer to the bottom than one header and
	// one body row.
	if r.pdf.GetY()+10+headerRowHeight+bodyRowHeight > r.breakY {
		r.pdf.AddPage()
	}
	r.pdf.SetFont("Helvetica", "B", 16)
	r.pdf.SetTextColor(40, 40, 40)
	r.pdf.SetX(r.left)
	r.pdf.CellFormat(0, 9, name, "", 1, "L", false, 0, "")
	r.pdf.Ln(1)
}

func (r *report) table(style tableStyle, head []string, widths []float64, rows [][]string) {
	if widths == nil {
		widths = make([]float64, len(head))
		for i := range widths {
			widths[i] = r.usable / float64(len(head))
		}
	}

	r.tableHeader(style, head, widths)

	if len(rows) == 0 {
		r.pdf.SetFont("Helvetica", "I", style.fontSize)
		r.pdf.SetTextColor(100, 100, 100)
		r.pdf.SetX(r.left)
		r.pdf.CellFormat(sum(widths), bodyRowHeight, "No data available for this section", "1", 1, "C", false, 0, "")
		r.pdf.Ln(4)
		return
	}

	r.pdf.SetFont("Helvetica", "", style.fontSize)
	r.pdf.SetTextColor(40, 40, 40)
	for _, row := range rows {
		if r.pdf.GetY()+bodyRowHeight > r.breakY {
			r.pdf.AddPage()
			r.tableHeader(style, head, widths)
			r.pdf.SetFont("Helvetica", "", style.fontSize)
			r.pdf.SetTextColor(40, 40, 40)
		}
		r.pdf.SetX(r.left)
		for i, cell := range row {
			r.pdf.CellFormat(widths[i], bodyRowHeight, r.fit(cell, widths[i]), "1", 0, "L", false, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(4)
}

func (r *report) tableHeader(style tableStyle, head []string, widths []float64) {
	r.pdf.SetFont("Helvetica", "B", style.fontSize)
	r.pdf.SetFillColor(style.fill[0], style.fill[1], style.fill[2])
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetX(r.left)
	for i, h := range head {
		r.pdf.CellFormat(widths[i], headerRowHeight, r.fit(h, widths[i]), "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
}

// fit trims a cell's text to its fixed column width so rows keep a
// uniform height. Trimming is by rune so a multi-byte character is
// never cut mid-sequence.
func (r *report) fit(s string, width float64) string {
	max := width - 2 // cell padding
	if r.pdf.GetStringWidth(s) <= max {
		return s
	}
	rs := []rune(s)
	for len(rs) > 1 && r.pdf.GetStringWidth(string(rs)+"...") > max {
		rs = rs[:len(rs)-1]
	}
	return string(rs) + "..."
}

func sum(ws []float64) float64 {
	var t float64
	for _, w := range ws {
		t += w
	}
	return t
}
