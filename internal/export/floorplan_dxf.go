package export

import (
	"fmt"

	"github.com/piwi3910/loadplanner/internal/model"
	"github.com/yofu/dxf"
)

// ExportFloorPlanDXF writes one DXF drawing per stack layer, each containing
// the rectangular footprint outline of every item placed on that layer. It
// writes item footprints as closed LWPOLYLINE-style rectangles built from
// four lines per item.
//
// path is treated as a template: for a single-layer container the file is
// written as-is, otherwise "_layerN" is inserted before the extension.
func ExportFloorPlanDXF(path string, container *model.Container) error {
	if len(container.Placed) == 0 {
		return fmt.Errorf("no placed items to export")
	}

	layers := layerNumbers(container)
	for _, layer := range layers {
		layerPath := path
		if len(layers) > 1 {
			layerPath = insertLayerSuffix(path, layer)
		}
		if err := writeLayerDXF(layerPath, container, layer); err != nil {
			return fmt.Errorf("write layer %d: %w", layer, err)
		}
	}
	return nil
}

func writeLayerDXF(path string, container *model.Container, layer int) error {
	d := dxf.NewDrawing()
	d.Layer(fmt.Sprintf("LAYER_%d", layer), true)

	// Container outline.
	drawRectangle(d, 0, 0, container.L, container.W)

	for _, it := range container.Placed {
		if it.StackLayer != layer {
			continue
		}
		l, w, _ := it.Dimension()
		drawRectangle(d, it.X, it.Y, l, w)
	}

	return d.SaveAs(path)
}

func drawRectangle(d *dxf.Drawing, x, y, l, w float64) {
	d.Line(x, y, 0, x+l, y, 0)
	d.Line(x+l, y, 0, x+l, y+w, 0)
	d.Line(x+l, y+w, 0, x, y+w, 0)
	d.Line(x, y+w, 0, x, y, 0)
}

func insertLayerSuffix(path string, layer int) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return fmt.Sprintf("%s_layer%d%s", path[:i], layer, path[i:])
		}
	}
	return fmt.Sprintf("%s_layer%d", path, layer)
}
