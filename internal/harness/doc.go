// SPDX-License-Identifier: MPL-2.0

// Package harness drives a mocked libsecret test binary across the full
// combinatorial matrix of mock configurations. Each combination of axis
// values is a trial: one child process invocation with a freshly built
// environment. The driver runs trials strictly in order and stops at the
// first non-zero exit code.
package harness
