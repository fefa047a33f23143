// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

// Valid is an interface with the CheckValid function, implemented by the
// types of this package. Structural parse errors surface during ParseChunk
// or ParsePng; CheckValid covers the softer specification rules a parsed
// value may still break, like a chunk type's reserved bit. Aggregating
// types collect their members' errors with the multierror package.
type Valid interface {
	// CheckValid returns an error for incorrect data.
	CheckValid() error
}
