// SPDX-License-Identifier: MIT

//go:build polconv_debug

package stokes

const debugChecks = true
