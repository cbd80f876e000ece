package model

import "testing"

func TestCollidesOverlapping(t *testing.T) {
	other := Item{X: 0, Y: 0, Z: 0, L: 1000, W: 1000, H: 1000}
	if !Collides(500, 500, 500, 1000, 1000, 1000, other) {
		t.Error("expected overlapping boxes to collide")
	}
}

func TestCollidesAdjacentNoOverlap(t *testing.T) {
	other := Item{X: 0, Y: 0, Z: 0, L: 1000, W: 1000, H: 1000}
	if Collides(1000, 0, 0, 1000, 1000, 1000, other) {
		t.Error("expected flush-adjacent boxes not to collide")
	}
}

func TestCollidesSeparate(t *testing.T) {
	other := Item{X: 0, Y: 0, Z: 0, L: 1000, W: 1000, H: 1000}
	if Collides(5000, 5000, 0, 1000, 1000, 1000, other) {
		t.Error("expected distant boxes not to collide")
	}
}

func TestSupportsFlatSurfaceFullCoverage(t *testing.T) {
	cfg := DefaultSolveConfig()
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 500,
		MaxLoadOnTop: 500, PackagingType: Pallet, StackLayer: 1,
	}
	above := Item{L: 1200, W: 1000, H: 800, Weight: 400, PackagingType: Pallet}
	if !Supports(below, above, 0, 0, 1000, 4, cfg) {
		t.Error("expected full-coverage stack to be supported")
	}
}

func TestSupportsRejectsOverweightAbove(t *testing.T) {
	cfg := DefaultSolveConfig()
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 500,
		MaxLoadOnTop: 1000, PackagingType: Pallet, StackLayer: 1,
	}
	above := Item{L: 1200, W: 1000, H: 800, Weight: 1000, PackagingType: Pallet}
	if Supports(below, above, 0, 0, 1000, 4, cfg) {
		t.Error("expected pyramid rule to reject overweight item on top")
	}
}

func TestSupportsAllowsPyramidTolerance(t *testing.T) {
	cfg := DefaultSolveConfig()
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 500,
		MaxLoadOnTop: 1000, PackagingType: Pallet, StackLayer: 1,
	}
	above := Item{L: 1200, W: 1000, H: 800, Weight: 550, PackagingType: Pallet}
	if !Supports(below, above, 0, 0, 1000, 4, cfg) {
		t.Error("expected 10%% tolerance to allow a slightly heavier item on top")
	}
}

func TestSupportsRejectsCrateOnPallet(t *testing.T) {
	cfg := DefaultSolveConfig()
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 500,
		MaxLoadOnTop: 1000, PackagingType: Pallet, StackLayer: 1,
	}
	above := Item{L: 1200, W: 1000, H: 800, Weight: 400, PackagingType: Crate}
	if Supports(below, above, 0, 0, 1000, 4, cfg) {
		t.Error("expected crate-on-pallet to be forbidden")
	}
}

func TestSupportsPalletOnCrateRequiresStrictlySmaller(t *testing.T) {
	cfg := DefaultSolveConfig()
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 500,
		MaxLoadOnTop: 1000, PackagingType: Crate, StackLayer: 1,
	}
	sameSize := Item{L: 1200, W: 1000, H: 800, Weight: 400, PackagingType: Pallet}
	if Supports(below, sameSize, 0, 0, 1000, 4, cfg) {
		t.Error("expected same-size pallet on crate to be rejected")
	}
	smaller := Item{L: 1000, W: 800, H: 800, Weight: 400, PackagingType: Pallet}
	if !Supports(below, smaller, 0, 0, 1000, 4, cfg) {
		t.Error("expected strictly smaller pallet on crate to be allowed")
	}
}

func TestSupportsRejectsInsufficientSupportArea(t *testing.T) {
	cfg := DefaultSolveConfig()
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 900,
		MaxLoadOnTop: 1000, PackagingType: Pallet, StackLayer: 1,
	}
	above := Item{L: 1000, W: 900, H: 800, Weight: 400, PackagingType: Pallet}
	// Offset so only a sliver of the footprint overlaps the supporter.
	if Supports(below, above, 900, 800, 1000, 4, cfg) {
		t.Error("expected mostly-overhanging placement to fail support-area check")
	}
}

func TestSupportsRejectsBeyondLayerCap(t *testing.T) {
	cfg := DefaultSolveConfig()
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 500,
		MaxLoadOnTop: 1000, PackagingType: Pallet, StackLayer: 2,
	}
	above := Item{L: 1200, W: 1000, H: 800, Weight: 400, PackagingType: Pallet}
	if Supports(below, above, 0, 0, 1000, 2, cfg) {
		t.Error("expected layer cap to reject stacking beyond max layers")
	}
}

func TestSupportsThreadsConfigEpsilon(t *testing.T) {
	cfg := DefaultSolveConfig()
	cfg.Epsilon = 50
	below := Item{
		L: 1200, W: 1000, H: 1000, Weight: 500,
		MaxLoadOnTop: 500, PackagingType: Pallet, StackLayer: 1,
	}
	above := Item{L: 1200, W: 1000, H: 800, Weight: 400, PackagingType: Pallet}
	// z is 40mm off true adjacency; default epsilon (1.0) would reject this,
	// but a widened cfg.Epsilon should accept it.
	if !Supports(below, above, 0, 0, 1040, 4, cfg) {
		t.Error("expected widened cfg.Epsilon to loosen the adjacency check")
	}
}
