// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

const (
	elevationMarker = "elev"
	azimuthDigits   = 3
)

var errAzimuthTooShort = errors.New("azimuth needs 3 characters")

// ParseElevationDir extracts the elevation from a directory base name such
// as "elev-40" or "Elev10". The marker is matched case-insensitively and
// only at the start of the name or after a non-letter, so "Radelev5" is not
// an elevation directory. ok is false when no marker is present; err is set
// when the marker is present but the remainder is not an integer.
func ParseElevationDir(name string) (elevation int, ok bool, err error) {
	idx := markerIndex(name)
	if idx < 0 {
		return 0, false, nil
	}

	elevation, err = strconv.Atoi(name[idx+len(elevationMarker):])
	return elevation, true, err
}

func markerIndex(name string) int {
	lower := strings.ToLower(name)

	for from := 0; from < len(lower); {
		i := strings.Index(lower[from:], elevationMarker)
		if i < 0 {
			return -1
		}
		i += from

		if i == 0 || !unicode.IsLetter(rune(lower[i-1])) {
			return i
		}
		from = i + 1
	}

	return -1
}

// AzimuthMarker returns the file name prefix used for files measured at elevation.
func AzimuthMarker(elevation int) string {
	return "H" + strconv.Itoa(elevation) + "e"
}

// ParseAzimuthFile extracts the azimuth from a file base name such as
// "H-40e072a.wav": the three characters following AzimuthMarker(elevation).
// ok is false when the name does not start with the marker.
func ParseAzimuthFile(name string, elevation int) (azimuth int, ok bool, err error) {
	marker := AzimuthMarker(elevation)
	if !strings.HasPrefix(name, marker) {
		return 0, false, nil
	}

	rest := name[len(marker):]
	if len(rest) < azimuthDigits {
		return 0, true, errAzimuthTooShort
	}

	azimuth, err = strconv.Atoi(rest[:azimuthDigits])
	return azimuth, true, err
}
