// Package config loads logging thresholds from strings, the environment
// and files, and applies them to a Logger.
//
// The compact form is a comma separated list: an optional bare level
// sets the global threshold and category=level pairs set overrides.
//
//	info,net=debug,db=silent
//
// YAML and TOML files use the keys level and categories:
//
//	level: info
//	categories:
//	  net: debug
//
// Level names are case-insensitive and may be numeric (0 = SILENT,
// 6 = DEBUG).
package config
