package str

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/omap"
)

// char is one decoded rune together with the exact bytes it came from, so an
// invalid byte decoded as utf8.RuneError is written back unchanged.
type char struct {
	r    rune
	text string
}

func chars(s string) iter.Seq[char] {
	return func(yield func(char) bool) {
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if !yield(char{r: r, text: s[i : i+size]}) {
				return
			}
			i += size
		}
	}
}

func charSlice(s string) []char {
	out := make([]char, 0, utf8.RuneCountInString(s))
	for c := range chars(s) {
		out = append(out, c)
	}
	return out
}

func runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := range chars(s) {
			if !yield(c.r) {
				return
			}
		}
	}
}

func join(cs []char) string {
	var sb strings.Builder
	for _, c := range cs {
		sb.WriteString(c.text)
	}
	return sb.String()
}

func joinAll(chunks [][]char) []string {
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, join(c))
	}
	return out
}

func joined[G comparable](groups *omap.Map[G, []char]) *omap.Map[G, string] {
	out := omap.New[G, string](groups.Len())
	for g, cs := range groups.All() {
		out.Set(g, join(cs))
	}
	return out
}

// prefixLen is the byte length of the longest prefix whose runes satisfy p.
func prefixLen(s string, p fn.Predicate1[rune]) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !p(r) {
			return i
		}
		i += size
	}
	return len(s)
}

func onRune(p fn.Predicate1[rune]) fn.Predicate1[char] {
	return func(c char) bool { return p(c.r) }
}

func byRune(c fn.Comparator[rune]) fn.Comparator[char] {
	return func(a, b char) int { return c(a.r, b.r) }
}

func orCodePoint(c fn.Comparator[rune]) fn.Comparator[rune] {
	if c == nil {
		return fn.NaturalOrder[rune]()
	}
	return c
}
