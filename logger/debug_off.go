//go:build release

package logger

const defaultDebugMode = false
