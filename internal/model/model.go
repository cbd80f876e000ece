// Package model defines the data types for the container loading engine:
// items, containers, placements, and the load-bearing constants that
// govern support, stacking, and scoring decisions.
package model

import (
	"strconv"

	"github.com/google/uuid"
)

// PackagingType distinguishes the two stacking-policy classes of cargo.
type PackagingType int

const (
	Pallet PackagingType = 1
	Crate  PackagingType = 2
)

func (p PackagingType) String() string {
	if p == Crate {
		return "Crate"
	}
	return "Pallet"
}

// Rotation selects which horizontal axis the item's length lies along.
// The height axis is never exchanged with a horizontal axis ("no upside down").
type Rotation int

const (
	RotationNone    Rotation = 0 // footprint (L, W)
	RotationRotated Rotation = 1 // footprint (W, L)
)

// Item is a cuboid with intrinsic properties plus mutable placement state.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Intrinsic properties.
	L             float64       `json:"l"`
	W             float64       `json:"w"`
	H             float64       `json:"h"`
	Weight        float64       `json:"weight"`
	TypeID        string        `json:"type_id"`
	PackagingType PackagingType `json:"packaging_type"`
	MaxLoadOnTop  float64       `json:"max_load_on_top"`
	AllowStacking bool          `json:"allow_stacking"`
	Priority      int           `json:"priority"` // higher = loaded later / closer to door
	Color         string        `json:"color,omitempty"`

	// Mutable placement state.
	X                float64  `json:"x"`
	Y                float64  `json:"y"`
	Z                float64  `json:"z"`
	Rotation         Rotation `json:"rotation"`
	StackLayer       int      `json:"stack_layer"`
	CurrentLoadOnTop float64  `json:"current_load_on_top"`
}

// NewItem constructs an Item with sensible defaults for fields left
// unspecified: TypeID derived from the floored footprint, MaxLoadOnTop
// defaulted to the item's own weight.
func NewItem(name string, l, w, h, weight float64, packaging PackagingType) Item {
	it := Item{
		ID:            uuid.New().String()[:8],
		Name:          name,
		L:             l,
		W:             w,
		H:             h,
		Weight:        weight,
		PackagingType: packaging,
		AllowStacking: true,
		Priority:      1,
		StackLayer:    1,
	}
	it.TypeID = DefaultTypeID(l, w)
	it.MaxLoadOnTop = weight
	return it
}

// DefaultTypeID derives the grouping tag used when no explicit type_id is
// supplied: the floored footprint, e.g. "1200x1000".
func DefaultTypeID(l, w float64) string {
	return strconv.Itoa(int(l)) + "x" + strconv.Itoa(int(w))
}

// Dimension returns (length, width, height) along x, y, z under the item's
// current rotation. Height is never swapped with a horizontal axis.
func (it Item) Dimension() (float64, float64, float64) {
	if it.Rotation == RotationRotated {
		return it.W, it.L, it.H
	}
	return it.L, it.W, it.H
}

// Volume returns the item's volume (rotation-invariant).
func (it Item) Volume() float64 {
	return it.L * it.W * it.H
}

// BaseArea returns the item's unrotated footprint area.
func (it Item) BaseArea() float64 {
	return it.L * it.W
}

// Container holds the placed and unpacked item sets plus the intrinsic
// limits of the physical box being loaded.
type Container struct {
	L             float64 `json:"l"`
	W             float64 `json:"w"`
	H             float64 `json:"h"`
	MaxWeight     float64 `json:"max_weight"`
	AllowStacking bool    `json:"allow_stacking"`
	// MinGap is accepted for API compatibility but forced to 0 by NewContainer:
	// the engine always runs in strict no-gap mode.
	MinGap float64 `json:"min_gap"`

	CurrentWeight float64 `json:"current_weight"`
	Placed        []Item  `json:"placed"`
	Unpacked      []Item  `json:"unpacked"`
}

// DefaultMaxWeight is the default container weight limit in kg.
const DefaultMaxWeight = 28000.0

// NewContainer builds a container. minGap is accepted but always forced to
// zero internally: the engine operates in strict no-gap mode everywhere.
func NewContainer(l, w, h, maxWeight float64, allowStacking bool, minGap float64) *Container {
	if maxWeight <= 0 {
		maxWeight = DefaultMaxWeight
	}
	return &Container{
		L: l, W: w, H: h,
		MaxWeight:     maxWeight,
		AllowStacking: allowStacking,
		MinGap:        0,
	}
}

// FortyFootThreshold is the interior length (mm) above which a container is
// treated as a "40ft" long box by the load partitioner and by the solver's
// initial stacking mode. The layer cap uses LayerCapThreshold instead.
const FortyFootThreshold = 9000.0

// LayerCapThreshold is the interior length (mm) below which max stack layers
// drops from 4 to 2.
const LayerCapThreshold = 7000.0

// IsLongContainer reports whether the container should use the 40ft (three
// zone) load-partitioning mode rather than the 20ft (two zone) mode.
func (c *Container) IsLongContainer() bool {
	return c.L > FortyFootThreshold
}

// MaxLayers returns the global stacking-layer cap for this container.
func (c *Container) MaxLayers() int {
	if c.L < LayerCapThreshold {
		return 2
	}
	return 4
}
