package tex

// StripComments removes a trailing comment from a line of TeX source. The
// comment starts at the first % that is not escaped: a % counts as escaped
// when an odd number of consecutive backslashes sits directly before it.
// Escaped markers and their backslashes are kept as-is.
func StripComments(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '%' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return line[:i]
		}
	}
	return line
}
