//go:build !nolog_warning

package logger

const warningCompiled = true
