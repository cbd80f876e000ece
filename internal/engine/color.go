package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/piwi3910/loadplanner/internal/model"
)

// AssignColor derives a deterministic cosmetic RGB color for an item, seeded
// by its TypeID (falling back to Name), mirroring genetic.go's pattern of
// a private seeded *rand.Rand. Pallets get cool tones, crates warm tones,
// so a floor plan reads at a glance without a legend. This is purely
// cosmetic — no placement decision ever consults it.
func AssignColor(it model.Item) string {
	seedKey := it.TypeID
	if seedKey == "" {
		seedKey = it.Name
	}
	h := fnv.New64a()
	h.Write([]byte(seedKey))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	var r, g, b int
	switch it.PackagingType {
	case model.Pallet:
		r = 50 + rng.Intn(51)
		g = 150 + rng.Intn(71)
		b = 200 + rng.Intn(56)
	case model.Crate:
		r = 200 + rng.Intn(56)
		g = 100 + rng.Intn(61)
		b = 50 + rng.Intn(51)
	default:
		r = 100 + rng.Intn(101)
		g = 100 + rng.Intn(101)
		b = 100 + rng.Intn(101)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}
