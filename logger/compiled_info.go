//go:build !nolog_info

package logger

const infoCompiled = true
