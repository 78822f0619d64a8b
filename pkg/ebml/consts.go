/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ebml

// Value bounds per class. The lower bound excludes values which have a shorter encoding,
// the upper bound excludes the reserved all-ones value
var classes = [Class_Count]classBounds{
	Class_A: {marker: 0x80, min: 0x01, max: 0x7E},
	Class_B: {marker: 0x4000, min: 0x7F, max: 0x3FFE},
	Class_C: {marker: 0x20_0000, min: 0x3FFF, max: 0x1F_FFFE},
	Class_D: {marker: 0x1000_0000, min: 0x1F_FFFF, max: 0x0FFF_FFFE},
}
