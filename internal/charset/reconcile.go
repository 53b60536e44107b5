package charset

// Reconcile pairs a source set with a target set for translation.
//
// With truncate set, a source longer than the target is cut to the target's
// length; the target itself is never shortened. Without truncate, a target
// shorter than the source is returned extended by repeating its last byte.
// Neither input slice is modified.
func Reconcile(source, target []byte, truncate bool) ([]byte, []byte, error) {
	if len(source) <= len(target) {
		return source, target, nil
	}
	if truncate {
		return source[:len(target):len(target)], target, nil
	}
	if len(target) == 0 {
		return nil, nil, ErrEmptyTarget
	}

	extended := make([]byte, len(source))
	n := copy(extended, target)
	last := target[n-1]
	for i := n; i < len(extended); i++ {
		extended[i] = last
	}
	return source, extended, nil
}
