package token

// number scans the JSON number grammar at the start of d, not counting
// any leading '-'. It returns the lexeme length and whether the lexeme
// has a fraction or exponent part. rfc 8259: the integer part is a
// single 0 or a nonzero digit followed by digits.
func number(d []byte) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if digits > 1 && d[0] == '0' {
		return 0, false, ErrNumberLeadingZero
	}
	f, err := fract(d[digits:])
	if err != nil {
		return 0, false, err
	}
	e, err := exp(d[digits+f:])
	if err != nil {
		return 0, false, err
	}
	return digits + f + e, f+e != 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// fract scans an optional fraction part. A '.' with no following digit
// is malformed rather than the end of the lexeme.
func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0, ErrNumber
	}
	return 1 + n, nil
}

// exp scans an optional exponent part. 'e'/'E' must be followed by an
// optional sign and at least one digit.
func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, ErrNumber
	}
	return i + n, nil
}
