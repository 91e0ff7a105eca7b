// SPDX-License-Identifier: EPL-2.0

// Package hrtf discovers and decodes HRTF measurement sets laid out on disk
// by elevation and azimuth.
//
// # Layout
//
// The tree follows the MIT KEMAR convention:
//
//	full/
//	  elev-40/
//	    H-40e000a.wav
//	    H-40e006a.wav
//	  elev0/
//	    H0e000a.wav
//
// A directory whose name carries "elev" followed by an integer is an
// elevation directory. Inside it, a file named H<elevation>e<azimuth>... is
// an orientation file, where <azimuth> is exactly three characters.
//
// # Pipeline
//
//	catalog, err := hrtf.NewScanner(reg).Scan(root)
//	catalog, err = hrtf.Dedupe(catalog, hrtf.DuplicateFail)
//	catalog = hrtf.Sort(catalog)
//
// Any unreadable, undecodable or misnamed file aborts the scan; errors
// carry the offending path in a *PathError and match ErrIO, ErrDecode or
// ErrParse with errors.Is.
package hrtf
