package engine

import "github.com/piwi3910/loadplanner/internal/model"

// Mutation operators act directly on a container's placement ledger for
// interactive overrides. None of them re-validate collision, support, or
// stacking-policy legality afterward — a caller is allowed to force an
// illegal-looking placement and inspect the consequences.

// ForcePack moves the item at unpackedIdx from Unpacked into Placed at the
// exact coordinates given, bypassing anchor search entirely.
func ForcePack(c *model.Container, unpackedIdx int, x, y, z float64) error {
	if unpackedIdx < 0 || unpackedIdx >= len(c.Unpacked) {
		return &model.MutationIndexError{Op: "ForcePack", Index: unpackedIdx, Len: len(c.Unpacked)}
	}
	item := c.Unpacked[unpackedIdx]
	item.X, item.Y, item.Z = x, y, z
	item.StackLayer = 1
	c.Unpacked = append(c.Unpacked[:unpackedIdx], c.Unpacked[unpackedIdx+1:]...)
	c.Placed = append(c.Placed, item)
	c.CurrentWeight += item.Weight
	return nil
}

// DropUnpacked drops the item at unpackedIdx straight down at (x, y) until
// it hits the floor or the top of whatever placed item's footprint
// overlaps it, then force-packs it at the resulting resting height. It
// does not check support, collision, or stacking policy at the landing
// spot — like ForcePack, it trusts the caller.
func DropUnpacked(c *model.Container, unpackedIdx int, x, y float64) error {
	if unpackedIdx < 0 || unpackedIdx >= len(c.Unpacked) {
		return &model.MutationIndexError{Op: "DropUnpacked", Index: unpackedIdx, Len: len(c.Unpacked)}
	}
	item := c.Unpacked[unpackedIdx]
	l, w, _ := item.Dimension()

	var dropZ float64
	for _, placed := range c.Placed {
		pl, pw, ph := placed.Dimension()
		if x < placed.X+pl-model.Epsilon && x+l > placed.X+model.Epsilon &&
			y < placed.Y+pw-model.Epsilon && y+w > placed.Y+model.Epsilon {
			topZ := placed.Z + ph
			if topZ > dropZ {
				dropZ = topZ
			}
		}
	}

	return ForcePack(c, unpackedIdx, x, y, dropZ)
}

// Unpack moves the item at placedIdx from Placed back to Unpacked, clearing
// its placement coordinates and stack layer and refunding its weight. It
// does not repair the load-on-top ledger of whatever item it was resting
// on; that is the caller's responsibility if it matters for a subsequent
// re-solve.
func Unpack(c *model.Container, placedIdx int) error {
	if placedIdx < 0 || placedIdx >= len(c.Placed) {
		return &model.MutationIndexError{Op: "Unpack", Index: placedIdx, Len: len(c.Placed)}
	}
	item := c.Placed[placedIdx]
	c.Placed = append(c.Placed[:placedIdx], c.Placed[placedIdx+1:]...)
	c.CurrentWeight -= item.Weight

	item.X, item.Y, item.Z = 0, 0, 0
	item.StackLayer = 0
	item.Rotation = model.RotationNone
	c.Unpacked = append(c.Unpacked, item)
	return nil
}

// RotateInPlace toggles the rotation of the item at placedIdx without
// moving its (x, y) anchor, clamping the item back inside the container if
// the rotated footprint would otherwise poke through a wall. It does not
// check for new collisions or support loss — callers that need a legal
// configuration should re-solve.
func RotateInPlace(c *model.Container, placedIdx int) error {
	if placedIdx < 0 || placedIdx >= len(c.Placed) {
		return &model.MutationIndexError{Op: "RotateInPlace", Index: placedIdx, Len: len(c.Placed)}
	}
	item := &c.Placed[placedIdx]
	if item.Rotation == model.RotationRotated {
		item.Rotation = model.RotationNone
	} else {
		item.Rotation = model.RotationRotated
	}
	l, w, _ := item.Dimension()
	if item.X+l > c.L {
		item.X = c.L - l
	}
	if item.X < 0 {
		item.X = 0
	}
	if item.Y+w > c.W {
		item.Y = c.W - w
	}
	if item.Y < 0 {
		item.Y = 0
	}
	return nil
}
