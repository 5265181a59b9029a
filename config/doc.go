// Package config resolves the settings of the cm command. Values come from
// command line flags, then CM_* environment variables, then an optional
// config file, then defaults derived from the input file name.
package config
