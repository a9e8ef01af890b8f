//go:build !nolog_debug && !release

package logger

const debugCompiled = true
