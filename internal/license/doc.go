// SPDX-License-Identifier: MPL-2.0

// Package license renders the supported license texts (MIT, Apache-2.0,
// BSD-2-Clause and BSD-3-Clause) for a copyright holder and year.
//
// A Variant is built once with fully resolved inputs and is read-only afterwards.
// Missing holder names fall back to the USER environment variable and missing
// years to the current UTC calendar year; neither lookup can fail.
package license
