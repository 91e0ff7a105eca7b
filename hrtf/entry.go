// SPDX-License-Identifier: EPL-2.0

package hrtf

// OrientationEntry is one decoded HRTF measurement.
type OrientationEntry struct {
	Elevation   int
	Azimuth     int
	Left        []int16
	Right       []int16
	SampleCount int
	SampleRate  int

	// Path of the audio file the entry was decoded from.
	Path string
}

// Key is the composite sort key elevation*1000 + azimuth.
func (e OrientationEntry) Key() int {
	return e.Elevation*1000 + e.Azimuth
}

// Catalog is an ordered sequence of entries.
type Catalog []OrientationEntry
