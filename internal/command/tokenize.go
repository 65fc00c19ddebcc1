package command

import (
	"regexp"
	"strings"
)

var separatorRE = regexp.MustCompile(`[\s,]+`)

// Tokenize splits a command line into ordered key=value tokens. Fragments
// are separated by runs of whitespace or commas; a fragment without '='
// is dropped, and a fragment splits on its first '=' only so values may
// contain further equals signs. Keys are lowercased, values are not.
func Tokenize(line string) []Token {
	fields := separatorRE.Split(line, -1)
	out := make([]Token, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		eq := strings.IndexByte(f, '=')
		if eq < 0 {
			continue
		}
		out = append(out, Token{
			Key:   strings.ToLower(strings.TrimSpace(f[:eq])),
			Value: strings.TrimSpace(f[eq+1:]),
		})
	}
	return out
}
