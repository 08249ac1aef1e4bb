// SPDX-License-Identifier: MPL-2.0

// Package fsx wraps common filesystem operations so that every error comes
// back annotated with the path (or paths) involved. It adds nothing beyond
// the annotation plus a few codec conveniences for JSON and TOML files.
package fsx
