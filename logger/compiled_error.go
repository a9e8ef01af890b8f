//go:build !nolog_error

package logger

const errorCompiled = true
