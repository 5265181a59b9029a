// Package digester computes SHA256 digests of templates and generated
// programs for translation reports.
package digester
