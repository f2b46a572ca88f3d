// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types: actionable errors that
// carry operation context and fix suggestions, and a small catalog of
// known issues rendered as markdown for common setup mistakes.
package issue
