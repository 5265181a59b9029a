// Package headers provides the C header that generated programs include.
// The header pulls in every standard C library header available for the
// compiler's language version and, on unix systems, the POSIX headers.
// Bundle renders it from embedded templates; Create writes it next to the
// generated program unless a header of that name already exists.
package headers
