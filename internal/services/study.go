package services

// NextCardIndex computes the next card position in a study deck of the
// given length, wrapping around at both ends. Callers must not invoke
// it on an empty deck; with no cards there is no valid position.
func NextCardIndex(length, current int, backward bool) int {
	if backward {
		if current <= 0 {
			return length - 1
		}
		return current - 1
	}

	if current >= length-1 {
		return 0
	}
	return current + 1
}
