package charset

// escapes maps the byte following a backslash to the byte the pair denotes.
// A zero entry means the pair is not an escape.
var escapes = [256]byte{
	'\\': '\\',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\'': '\'',
	'"':  '"',
}

// Decode returns a copy of s with every recognized backslash escape collapsed
// into a single byte. Unrecognized pairs and a trailing lone backslash are
// copied unchanged. The result is never longer than s.
func Decode(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			out = append(out, s[i])
			continue
		}
		next := s[i+1]
		if b := escapes[next]; b != 0 {
			out = append(out, b)
		} else {
			out = append(out, '\\', next)
		}
		i++
	}
	return out
}
