//go:build nolog_fatal

package logger

const fatalCompiled = false
