// Package hcl provides the HCL implementation of config.Loader.
//
// A settings file has two optional blocks:
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	stream {
//	  buffer_size        = 4096
//	  input_compression  = "gzip"
//	  output_compression = "none"
//	}
//
// Attribute expressions are evaluated with an `env` object holding the
// loader's environment, so `format = env.LOG_FORMAT` reads a variable.
// Referencing an unset variable is a decode error. Unknown blocks and
// attributes are rejected.
package hcl
