// SPDX-License-Identifier: MPL-2.0

// Package diag provides user-facing diagnostics: errors annotated with the
// operation and resource involved, remediation hints, and helpers for
// printing an ordered cause chain.
package diag
