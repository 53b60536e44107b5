// Package config defines the format-agnostic settings model for the filter
// and the Loader interface used to read it from a file.
//
// Settings only cover ambient concerns (logging and stream transport). The
// character sets and the mode always come from the command line. A concrete
// HCL implementation of Loader lives in the hcl package.
package config
