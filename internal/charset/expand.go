package charset

// Expand returns s with every X-Y range token replaced by the ascending run
// of bytes from X to Y inclusive. On failure the returned error matches
// ErrIllegalRange and no set is returned.
func Expand(s []byte) ([]byte, error) {
	out := make([]byte, 0, len(s))
	// first is true once a literal has been emitted since the last range,
	// which keeps a range end from starting another range.
	first := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '-' {
			out = append(out, c)
			first = true
			continue
		}

		switch {
		case i == 0:
			return nil, &RangeError{Pos: i, Reason: "range has no start"}
		case i == len(s)-1:
			return nil, &RangeError{Pos: i, Reason: "range has no end"}
		case s[i-1] == '-':
			return nil, &RangeError{Pos: i, Reason: "range starts with '-'"}
		}

		if !first {
			out = append(out, c)
			first = true
			continue
		}

		lo, hi := s[i-1], s[i+1]
		switch {
		case hi == '-':
			return nil, &RangeError{Pos: i, Reason: "range ends with '-'"}
		case lo > hi:
			return nil, &RangeError{Pos: i, Reason: "descending range"}
		}

		// lo is already in out.
		for b := int(lo) + 1; b < int(hi); b++ {
			out = append(out, byte(b))
		}
		out = append(out, hi)
		i++
		first = false
	}
	return out, nil
}

// Parse decodes escapes in arg and expands its ranges.
func Parse(arg string) ([]byte, error) {
	return Expand(Decode([]byte(arg)))
}
