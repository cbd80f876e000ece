package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/loadplanner/internal/model"
)

// Page layout constants (A4 landscape in mm), matching pdf.go's sheet-page layout.
const (
	manifestPageWidth  = 297.0
	manifestPageHeight = 210.0
	manifestMarginL    = 15.0
	manifestMarginR    = 15.0
	manifestMarginTop  = 15.0
	manifestMarginBot  = 15.0
	manifestHeaderH    = 12.0
	manifestDrawTop    = manifestMarginTop + manifestHeaderH + 5.0
)

// ExportManifestPDF renders a solved container's loading manifest: one page
// per stack layer showing a top-down floor plan of that layer's footprints,
// followed by a summary page with weight-distribution and utilization
// statistics.
func ExportManifestPDF(path string, container *model.Container) error {
	if len(container.Placed) == 0 {
		return fmt.Errorf("no placed items to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, manifestMarginBot)

	for _, layer := range layerNumbers(container) {
		pdf.AddPage()
		renderLayerPage(pdf, container, layer)
	}

	pdf.AddPage()
	renderManifestSummaryPage(pdf, container)

	return pdf.OutputFileAndClose(path)
}

func layerNumbers(c *model.Container) []int {
	seen := map[int]bool{}
	for _, it := range c.Placed {
		seen[it.StackLayer] = true
	}
	layers := make([]int, 0, len(seen))
	for l := range seen {
		layers = append(layers, l)
	}
	sort.Ints(layers)
	return layers
}

func renderLayerPage(pdf *fpdf.Fpdf, c *model.Container, layer int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(manifestMarginL, manifestMarginTop)
	title := fmt.Sprintf("Stack layer %d  (container %.0f x %.0f x %.0f mm)", layer, c.L, c.W, c.H)
	pdf.CellFormat(manifestPageWidth-manifestMarginL-manifestMarginR, manifestHeaderH, title, "", 0, "L", false, 0, "")

	var onLayer []model.Item
	for _, it := range c.Placed {
		if it.StackLayer == layer {
			onLayer = append(onLayer, it)
		}
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(manifestMarginL, manifestMarginTop+manifestHeaderH)
	pdf.CellFormat(manifestPageWidth-manifestMarginL-manifestMarginR, 5,
		fmt.Sprintf("Items on this layer: %d", len(onLayer)), "", 0, "L", false, 0, "")

	drawWidth := manifestPageWidth - manifestMarginL - manifestMarginR
	drawHeight := manifestPageHeight - manifestDrawTop - manifestMarginBot - 20.0

	scaleX := drawWidth / c.L
	scaleY := drawHeight / c.W
	scale := math.Min(scaleX, scaleY)

	canvasW := c.L * scale
	canvasH := c.W * scale
	offsetX := manifestMarginL + (drawWidth-canvasW)/2
	offsetY := manifestDrawTop

	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for _, it := range onLayer {
		l, w, _ := it.Dimension()
		col := hexToColor(it.Color)
		px := offsetX + it.X*scale
		py := offsetY + it.Y*scale
		pw := l * scale
		ph := w * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 10 && ph > 6 {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetXY(px+0.5, py+0.5)
			pdf.CellFormat(pw-1, ph-1, it.Name, "", 0, "L", false, 0, "")
		}
	}
	pdf.SetTextColor(0, 0, 0)
}

func renderManifestSummaryPage(pdf *fpdf.Fpdf, c *model.Container) {
	stats := model.ComputeStatistics(c)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(manifestMarginL, manifestMarginTop)
	pdf.CellFormat(manifestPageWidth-manifestMarginL-manifestMarginR, manifestHeaderH, "Loading Summary", "", 0, "L", false, 0, "")

	lines := []string{
		fmt.Sprintf("Packed items: %d   Unpacked items: %d", stats.PackedCount, stats.UnpackedCount),
		fmt.Sprintf("Volume utilization: %.1f%%   Weight utilization: %.1f%%", stats.VolumeUtilization, stats.WeightUtilization),
		fmt.Sprintf("Weight total: %.0f kg", stats.WeightTotal),
		fmt.Sprintf("Longitudinal balance (nose/door): %.1f%% / %.1f%%", stats.BalanceRatioLen, 100-stats.BalanceRatioLen),
		fmt.Sprintf("Lateral balance (left/right): %.1f%% / %.1f%%", stats.BalanceRatioWidth, 100-stats.BalanceRatioWidth),
		fmt.Sprintf("Vertical balance (bottom/top): %.1f%% / %.1f%%", stats.BalanceRatioHeight, 100-stats.BalanceRatioHeight),
		fmt.Sprintf("Center of gravity: (%.0f, %.0f, %.0f) mm", stats.CoGX, stats.CoGY, stats.CoGZ),
	}

	pdf.SetFont("Helvetica", "", 11)
	y := manifestMarginTop + manifestHeaderH + 8
	for _, line := range lines {
		pdf.SetXY(manifestMarginL, y)
		pdf.CellFormat(manifestPageWidth-manifestMarginL-manifestMarginR, 7, line, "", 0, "L", false, 0, "")
		y += 8
	}
}

type rgbColor struct{ R, G, B int }

// hexToColor parses an "rgb(r, g, b)" string produced by engine.AssignColor,
// falling back to a neutral gray when empty or malformed.
func hexToColor(s string) rgbColor {
	var r, g, b int
	if s == "" {
		return rgbColor{180, 180, 180}
	}
	n, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b)
	if err != nil || n != 3 {
		return rgbColor{180, 180, 180}
	}
	return rgbColor{r, g, b}
}
