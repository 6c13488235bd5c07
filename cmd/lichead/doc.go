// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for lichead.
//
// This package implements the Cobra command hierarchy: render prints a license,
// apply prepends it as a comment header to a file, list shows the supported
// licenses, and config manages the configuration file. Commands receive an App
// that carries the config provider, file store and name/year resolver.
package cmd
