//go:build !release

package logger

// defaultDebugMode is true unless the binary is built with -tags release.
const defaultDebugMode = true
