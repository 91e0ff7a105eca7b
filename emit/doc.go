// SPDX-License-Identifier: EPL-2.0

// Package emit renders an HRTF catalog as C source.
//
// The output holds two declarations, an orientation table and a sample
// table, in the order of the catalog:
//
//	const int kHRTFOrientation[2][2] = { {0, 0}, {0, 5} };
//	const int kHRTF[2][2][128] = {
//	{ { 0x1, -0x2, ... },
//	  { 0x0, 0x3, ... } }
//	, { ... }
//	};
//
// Samples are written as hexadecimal literals by default (LiteralHex) with
// the sign ahead of the prefix; LiteralDec writes plain decimals. Both
// forms round-trip through ParseSample.
//
// The inner dimension comes from the SampleLengthPolicy. SampleLengthStrict
// rejects catalogs whose rows differ in length, SampleLengthMax uses the
// longest row and SampleLengthLast reproduces the legacy generator, which
// sized the table from whichever row came last.
package emit
