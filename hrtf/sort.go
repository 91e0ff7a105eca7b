// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"cmp"
	"slices"
)

// Sort returns a copy of c ordered by elevation*1000 + azimuth. Entries
// with equal keys keep their relative order. The key is only monotonic
// while azimuths stay within three digits.
func Sort(c Catalog) Catalog {
	out := slices.Clone(c)
	slices.SortStableFunc(out, func(a, b OrientationEntry) int {
		return cmp.Compare(a.Key(), b.Key())
	})

	return out
}
