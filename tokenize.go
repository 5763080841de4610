package nicecase

// Tokenize splits s into words at separators, case transitions and digit runs. Any byte that is not
// an ASCII letter or digit is a separator and never part of a token. An uppercase run followed by a
// lowercase letter gives up its last letter to the following word, so "XMLHttp" yields "XML" and
// "Http". Input without letters or digits yields no tokens.
func Tokenize(s string) []Token {
	return tokenize(s, false)
}

func tokenize(s string, lettersOnly bool) []Token {
	type scanState int
	const (
		boundary scanState = iota
		lower
		upper
		digits
	)
	var tokens []Token
	state := boundary
	start := 0
	flush := func(end int) {
		if end <= start {
			return
		}
		switch state {
		case lower:
			tokens = append(tokens, Token{Text: s[start:end], Kind: Word})
		case upper:
			tokens = append(tokens, Token{Text: s[start:end], Kind: upperKind(end - start)})
		case digits:
			tokens = append(tokens, Token{Text: s[start:end], Kind: Numeric})
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isLower(c):
			switch state {
			case lower:
			case upper:
				// A single capital starts this word. Longer runs end in an acronym, minus the
				// capital that starts this word.
				if i-start > 1 {
					flush(i - 1)
					start = i - 1
				}
				state = lower
			default:
				flush(i)
				start, state = i, lower
			}
		case isUpper(c):
			if state != upper {
				flush(i)
				start, state = i, upper
			}
		case isDigit(c) && !lettersOnly:
			if state != digits {
				flush(i)
				start, state = i, digits
			}
		default:
			flush(i)
			state = boundary
		}
	}
	flush(len(s))
	return tokens
}

// upperKind classifies an uppercase run that is not followed by a lowercase letter.
func upperKind(n int) Kind {
	if n >= 2 {
		return Acronym
	}
	return Word
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
