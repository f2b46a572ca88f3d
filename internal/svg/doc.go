// SPDX-License-Identifier: MPL-2.0

// Package svg rewrites the fill color of SVG documents by wrapping their
// inner content in a colored group element. The transform is purely
// textual: the document is split at the end of the opening svg tag and
// the start of the closing one, no XML parsing involved.
package svg
