// loadplanner — 3D container loading optimizer
//
// Reads an item manifest as JSON, solves the loading problem against a
// named container preset (or explicit dimensions), and writes the solved
// container plus any requested hand-off documents (manifest PDF, QR
// placement labels, manifest spreadsheet, per-layer floor-plan DXF).
//
// Build:
//
//	go build -o loadplanner ./cmd/loadplanner
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/loadplanner/internal/engine"
	"github.com/piwi3910/loadplanner/internal/export"
	"github.com/piwi3910/loadplanner/internal/model"
	"github.com/piwi3910/loadplanner/internal/project"
)

func main() {
	var (
		itemsPath     = flag.String("items", "", "Path to a JSON file containing a list of items (required)")
		preset        = flag.String("preset", "40ft Standard", "Container preset name: "+presetNameList())
		length        = flag.Float64("length", 0, "Container interior length in mm (overrides preset)")
		width         = flag.Float64("width", 0, "Container interior width in mm (overrides preset)")
		height        = flag.Float64("height", 0, "Container interior height in mm (overrides preset)")
		maxWeight     = flag.Float64("max-weight", 0, "Container max payload in kg (overrides preset)")
		allowStacking = flag.Bool("allow-stacking", true, "Allow stacking in the first placement pass of containers up to 9000 mm long (leftovers are always retried with stacking on)")
		outDir        = flag.String("out", ".", "Output directory for generated documents")
		envelopePath  = flag.String("envelope", "", "Write a SolveEnvelope JSON snapshot to this path")
		manifestPDF   = flag.Bool("manifest-pdf", true, "Write a loading manifest PDF")
		labelsPDF     = flag.Bool("labels-pdf", false, "Write a QR placement-label PDF")
		manifestXLSX  = flag.Bool("manifest-xlsx", false, "Write a manifest spreadsheet")
		floorPlanDXF  = flag.Bool("floorplan-dxf", false, "Write per-layer floor-plan DXF drawings")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -items items.json [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -items load.json -preset \"20ft Standard\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -items load.json -manifest-xlsx -floorplan-dxf -out ./out\n", os.Args[0])
	}
	flag.Parse()

	if *itemsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -items flag is required")
		flag.Usage()
		os.Exit(1)
	}

	items, err := loadItems(*itemsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading items: %v\n", err)
		os.Exit(1)
	}

	p := model.GetContainerPreset(*preset)
	if *length > 0 {
		p.L = *length
	}
	if *width > 0 {
		p.W = *width
	}
	if *height > 0 {
		p.H = *height
	}
	if *maxWeight > 0 {
		p.MaxWeight = *maxWeight
	}

	req := engine.SolveRequest{
		ContainerL:    p.L,
		ContainerW:    p.W,
		ContainerH:    p.H,
		MaxWeight:     p.MaxWeight,
		AllowStacking: *allowStacking,
		Items:         items,
		Config:        model.DefaultSolveConfig(),
	}

	result := engine.Solve(req)
	stats := model.ComputeStatistics(result.Container)

	fmt.Printf("Winning strategy: %s (score %.2f)\n", result.WinningStrategy, result.Score)
	fmt.Printf("Packed: %d   Unpacked: %d\n", stats.PackedCount, stats.UnpackedCount)
	fmt.Printf("Volume utilization: %.1f%%   Weight utilization: %.1f%%\n", stats.VolumeUtilization, stats.WeightUtilization)
	fmt.Printf("Balance ratios  length: %.1f%%  width: %.1f%%  height: %.1f%%\n",
		stats.BalanceRatioLen, stats.BalanceRatioWidth, stats.BalanceRatioHeight)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	if *envelopePath != "" {
		cfg := model.DefaultAppConfig()
		if err := project.ExportSolveEnvelope(*envelopePath, req, result, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing solve envelope: %v\n", err)
			os.Exit(1)
		}
	}

	if *manifestPDF {
		if err := export.ExportManifestPDF(*outDir+"/manifest.pdf", result.Container); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing manifest PDF: %v\n", err)
			os.Exit(1)
		}
	}
	if *labelsPDF {
		if err := export.ExportLabels(*outDir+"/labels.pdf", result.Container); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing labels PDF: %v\n", err)
			os.Exit(1)
		}
	}
	if *manifestXLSX {
		if err := export.ExportManifestXLSX(*outDir+"/manifest.xlsx", result.Container); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing manifest spreadsheet: %v\n", err)
			os.Exit(1)
		}
	}
	if *floorPlanDXF {
		if err := export.ExportFloorPlanDXF(*outDir+"/floorplan.dxf", result.Container); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing floor-plan DXF: %v\n", err)
			os.Exit(1)
		}
	}
}

// itemSpec is the JSON wire shape for one input item; NewItem fills in
// derived defaults (TypeID, MaxLoadOnTop) the caller didn't specify.
type itemSpec struct {
	Name          string              `json:"name"`
	L             float64             `json:"l"`
	W             float64             `json:"w"`
	H             float64             `json:"h"`
	Weight        float64             `json:"weight"`
	PackagingType model.PackagingType `json:"packaging_type"`
	TypeID        string              `json:"type_id"`
	MaxLoadOnTop  float64             `json:"max_load_on_top"`
	AllowStacking *bool               `json:"allow_stacking"`
	Priority      int                 `json:"priority"`
	Quantity      int                 `json:"quantity"`
}

func loadItems(path string) ([]model.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}

	var specs []itemSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse items file: %w", err)
	}

	var items []model.Item
	for _, s := range specs {
		qty := s.Quantity
		if qty <= 0 {
			qty = 1
		}
		if err := model.ValidateItemSpec(s.L, s.W, s.H, s.Weight, qty, s.PackagingType); err != nil {
			return nil, fmt.Errorf("item %q: %w", s.Name, err)
		}
		for i := 0; i < qty; i++ {
			it := model.NewItem(s.Name, s.L, s.W, s.H, s.Weight, s.PackagingType)
			if s.TypeID != "" {
				it.TypeID = s.TypeID
			}
			if s.MaxLoadOnTop > 0 {
				it.MaxLoadOnTop = s.MaxLoadOnTop
			}
			if s.AllowStacking != nil {
				it.AllowStacking = *s.AllowStacking
			}
			if s.Priority != 0 {
				it.Priority = s.Priority
			}
			items = append(items, it)
		}
	}
	return items, nil
}

func presetNameList() string {
	names := model.ContainerPresetNames()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
