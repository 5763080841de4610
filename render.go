package nicecase

import "strings"

// Render joins tokens in the given style. It never fails; an empty token slice renders as "".
// Unknown styles render like Camel.
func Render(tokens []Token, style Style) string {
	switch style {
	case Kebab:
		return join(tokens, '-', lowerWord)
	case Dot:
		return join(tokens, '.', lowerWord)
	case Snake:
		return join(tokens, '_', lowerWord)
	case ScreamingSnake:
		return join(tokens, '_', upperWord)
	case Pascal:
		return join(tokens, 0, func(i int, t Token) string {
			return titleWord(t)
		})
	default:
		return join(tokens, 0, camelWord)
	}
}

// join writes every non-empty token through word, separated by sep unless sep is zero. The index
// passed to word counts written tokens only.
func join(tokens []Token, sep byte, word func(i int, t Token) string) string {
	var b strings.Builder
	size := 0
	for _, t := range tokens {
		size += len(t.Text) + 1
	}
	b.Grow(size)
	n := 0
	for _, t := range tokens {
		if t.Text == "" {
			continue
		}
		if n > 0 && sep != 0 {
			b.WriteByte(sep)
		}
		b.WriteString(word(n, t))
		n++
	}
	return b.String()
}

func lowerWord(_ int, t Token) string {
	return strings.ToLower(t.Text)
}

func upperWord(_ int, t Token) string {
	return strings.ToUpper(t.Text)
}

func camelWord(i int, t Token) string {
	if i == 0 {
		return strings.ToLower(t.Text)
	}
	return titleWord(t)
}

// titleWord capitalizes a word and keeps acronyms as they are.
func titleWord(t Token) string {
	if t.Kind == Acronym {
		return t.Text
	}
	return strings.ToUpper(t.Text[:1]) + strings.ToLower(t.Text[1:])
}
