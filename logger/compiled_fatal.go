//go:build !nolog_fatal

package logger

const fatalCompiled = true
