// Package transpile turns a C template into a compilable C program. Template
// text is split into three regions: literal text, which becomes printf string
// literals; code between "<?c " and "?>", copied verbatim; and print
// expressions between two toggle bytes (default '@'), passed to printf as its
// argument list.
//
// Translate runs the single-pass scanner over an in-memory buffer. Engine
// wraps it with the file handling of the cm command: existence checks,
// reading the template and creating the output without overwriting.
package transpile
