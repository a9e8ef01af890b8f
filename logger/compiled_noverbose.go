//go:build nolog_verbose

package logger

const verboseCompiled = false
