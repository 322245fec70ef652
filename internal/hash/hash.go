// Package hash derives reproducible base hues from workspace identifiers.
package hash

import "strconv"

// Sum32 returns a deterministic djb2 hash of s. Identical input always
// produces identical output, and the mod-360 reduction of realistic
// identifiers spreads roughly uniformly over the hue circle.
func Sum32(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

// BaseHue maps an identifier and seed to a hue in [0,360). A zero seed
// leaves the identifier hash untouched. Non-zero seeds are hashed as
// strings before mixing; XOR-ing the raw integer would shift the hue by a
// near-constant amount for small seed changes.
func BaseHue(identifier string, seed int64) float64 {
	h := Sum32(identifier)
	if seed != 0 {
		h ^= Sum32(strconv.FormatInt(seed, 10))
	}
	return float64(h % 360)
}
