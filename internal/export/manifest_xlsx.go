package export

import (
	"fmt"

	"github.com/piwi3910/loadplanner/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportManifestXLSX writes a solved container to a three-sheet workbook:
// "Placed" (one row per loaded item with position, rotation, and stack
// layer), "Unpacked" (items that did not fit), and "Statistics" (weight and
// volume utilization, balance ratios, center of gravity).
func ExportManifestXLSX(path string, container *model.Container) error {
	f := excelize.NewFile()
	defer f.Close()

	placedSheet := "Placed"
	f.SetSheetName("Sheet1", placedSheet)
	if err := writePlacedSheet(f, placedSheet, container); err != nil {
		return fmt.Errorf("write placed sheet: %w", err)
	}

	unpackedSheet := "Unpacked"
	if _, err := f.NewSheet(unpackedSheet); err != nil {
		return fmt.Errorf("create unpacked sheet: %w", err)
	}
	if err := writeUnpackedSheet(f, unpackedSheet, container); err != nil {
		return fmt.Errorf("write unpacked sheet: %w", err)
	}

	statsSheet := "Statistics"
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("create statistics sheet: %w", err)
	}
	if err := writeStatisticsSheet(f, statsSheet, container); err != nil {
		return fmt.Errorf("write statistics sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

var placedHeaders = []string{
	"Name", "Type ID", "Packaging", "Weight (kg)",
	"L", "W", "H", "Rotated",
	"X", "Y", "Z", "Stack Layer", "Color",
}

func writePlacedSheet(f *excelize.File, sheet string, container *model.Container) error {
	for col, header := range placedHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for i, it := range container.Placed {
		row := i + 2
		l, w, h := it.Dimension()
		values := []interface{}{
			it.Name, it.TypeID, it.PackagingType.String(), it.Weight,
			l, w, h, it.Rotation == model.RotationRotated,
			it.X, it.Y, it.Z, it.StackLayer, it.Color,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

var unpackedHeaders = []string{"Name", "Type ID", "Packaging", "Weight (kg)", "L", "W", "H", "Reason"}

func writeUnpackedSheet(f *excelize.File, sheet string, container *model.Container) error {
	for col, header := range unpackedHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for i, it := range container.Unpacked {
		row := i + 2
		values := []interface{}{
			it.Name, it.TypeID, it.PackagingType.String(), it.Weight,
			it.L, it.W, it.H, "No valid anchor found within weight and space limits",
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStatisticsSheet(f *excelize.File, sheet string, container *model.Container) error {
	stats := model.ComputeStatistics(container)

	rows := [][2]interface{}{
		{"Packed items", stats.PackedCount},
		{"Unpacked items", stats.UnpackedCount},
		{"Total weight (kg)", stats.WeightTotal},
		{"Volume utilization (%)", stats.VolumeUtilization},
		{"Weight utilization (%)", stats.WeightUtilization},
		{"Length balance ratio (%)", stats.BalanceRatioLen},
		{"Width balance ratio (%)", stats.BalanceRatioWidth},
		{"Height balance ratio (%)", stats.BalanceRatioHeight},
		{"Center of gravity X (mm)", stats.CoGX},
		{"Center of gravity Y (mm)", stats.CoGY},
		{"Center of gravity Z (mm)", stats.CoGZ},
	}

	for i, r := range rows {
		row := i + 1
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheet, labelCell, r[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, r[1]); err != nil {
			return err
		}
	}
	return nil
}
