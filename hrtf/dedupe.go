// SPDX-License-Identifier: EPL-2.0

package hrtf

import "fmt"

// DuplicatePolicy decides what happens when two files share an orientation.
type DuplicatePolicy string

const (
	// DuplicateFail rejects the catalog.
	DuplicateFail DuplicatePolicy = "fail"
	// DuplicateFirst keeps the entry walked first.
	DuplicateFirst DuplicatePolicy = "first"
	// DuplicateLast keeps the entry walked last, at the first one's position.
	DuplicateLast DuplicatePolicy = "last"
	// DuplicateKeep retains every entry.
	DuplicateKeep DuplicatePolicy = "keep"
)

// ParseDuplicatePolicy maps a policy name to its DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(s); p {
	case DuplicateFail, DuplicateFirst, DuplicateLast, DuplicateKeep:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDuplicatePolicy, s)
	}
}

type orientation struct {
	elevation, azimuth int
}

// Dedupe applies policy to entries sharing one (elevation, azimuth) pair.
// The returned catalog preserves the order of first appearance.
func Dedupe(c Catalog, policy DuplicatePolicy) (Catalog, error) {
	if policy == DuplicateKeep {
		return c, nil
	}
	if _, err := ParseDuplicatePolicy(string(policy)); err != nil {
		return nil, err
	}

	seen := make(map[orientation]int, len(c))
	out := make(Catalog, 0, len(c))

	for _, e := range c {
		key := orientation{e.Elevation, e.Azimuth}

		idx, dup := seen[key]
		if !dup {
			seen[key] = len(out)
			out = append(out, e)
			continue
		}

		switch policy {
		case DuplicateFail:
			return nil, pathError(ErrDuplicateOrientation, e.Path,
				fmt.Errorf("elevation %d azimuth %d already read from %s", e.Elevation, e.Azimuth, out[idx].Path))
		case DuplicateLast:
			out[idx] = e
		}
	}

	return out, nil
}
