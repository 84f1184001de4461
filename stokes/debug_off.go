// SPDX-License-Identifier: MIT

//go:build !polconv_debug

package stokes

// debugChecks enables precondition panics on the apply path.
const debugChecks = false
