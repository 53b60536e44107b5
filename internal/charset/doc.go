// Package charset turns the raw set arguments of the filter into the
// structures the stream transforms consume.
//
// # Pipeline
//
// Every argument goes through the same two pure stages:
//
//	raw argument ──Decode──▶ decoded bytes ──Expand──▶ expanded set
//
// Parse chains both. In translate mode the two expanded sets are then
// reconciled (Reconcile) and compiled into a Mapping; in delete mode the
// single set is compiled into a Membership.
//
// # Escapes
//
// Decode collapses the two-byte tokens \\ \a \b \f \n \r \t \v \' \" into the
// byte they denote. A backslash followed by any other byte is kept verbatim
// together with that byte, and a lone trailing backslash is kept as is.
//
// # Ranges
//
// Expand replaces every X-Y token with X, X+1, ..., Y. A dash at either end of
// the argument, a dash next to another dash, and a descending range are all
// rejected with an error that matches ErrIllegalRange. A dash directly after a
// completed range is a literal, so ranges cannot be chained: "a-c-e" is
// "abc-e".
//
// # Reconciliation
//
// With truncation only the source set is shortened. Without it a shorter
// target is extended by repeating its last byte. A longer target is never
// shortened.
//
// # Lookup
//
// Mapping and Membership are 256-entry tables indexed by the input byte.
// When a byte occurs more than once in the source set the rightmost position
// wins.
package charset
