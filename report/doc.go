// Package report describes a finished translation: the files involved,
// their digests and the scanner statistics. Reports are written as JSON or
// YAML so build tooling can check whether a generated program is stale.
package report
