// Package stream applies a compiled character set to a byte stream.
//
// Translate writes exactly one output byte per input byte. Delete writes
// every input byte that is not in the set. Both read in chunks, transform
// each chunk independently of the others and write it before the next read,
// so interactive input is echoed as soon as it arrives. Both stop at end of
// input and check the context between chunks.
//
// NewReader and NewWriter optionally wrap the transport in gzip or zstd
// framing. The transforms themselves only ever see plain bytes.
package stream
