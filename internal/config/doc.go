// Package config resolves seqtool settings from flags, SEQTOOL_* environment
// variables, an optional .env file and built-in defaults, in that order of
// precedence, and validates them with struct tags.
package config
