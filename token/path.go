package token

import "strings"

// Reserved path words, substituted at resolve time against the current
// array node.
const (
	Index  = "$index"
	Length = "$length"
	Last   = "$last"
)

// Token is one step of a compiled data path.
//
// ArrayIndex marks a token that appeared between brackets in the source.
// ArraySegment marks a token whose next access treats the current node as
// an array, i.e. the token was immediately followed by '[' in the source.
type Token struct {
	Text         string
	ArraySegment bool
	ArrayIndex   bool
}

func Reserved(text string) bool {
	switch text {
	case Index, Length, Last:
		return true
	default:
		return false
	}
}

// SplitPath tokenizes a dotted/bracketed path such as "a.b[0].c" or
// "items[$index].name". Dots separate segments and are discarded; a
// bracketed index becomes its own token. A segment beginning with '[' (as
// in "a[0][1]" after the first index, or a path starting with "[0]")
// applies to the node already selected, so no empty-name token is emitted
// and the preceding token, if any, is flagged as an array segment.
//
// There are no compile time errors: malformed index text is only detected
// when the path is resolved or assigned.
func SplitPath(path string) []Token {
	var toks []Token
	for seg := range strings.SplitSeq(path, ".") {
		seg = strings.TrimSpace(seg)
		for seg != "" {
			open := strings.IndexByte(seg, '[')
			if open == -1 {
				toks = append(toks, Token{Text: strings.TrimSpace(seg)})
				break
			}
			name := strings.TrimSpace(seg[:open])
			if name != "" {
				toks = append(toks, Token{Text: name, ArraySegment: true})
			} else if n := len(toks); n > 0 {
				toks[n-1].ArraySegment = true
			}
			rest := seg[open+1:]
			close := strings.IndexByte(rest, ']')
			if close == -1 {
				// unterminated index, keep the remainder as one token
				toks = append(toks, Token{Text: strings.TrimSpace(rest), ArrayIndex: true})
				break
			}
			toks = append(toks, Token{Text: strings.TrimSpace(rest[:close]), ArrayIndex: true})
			seg = rest[close+1:]
		}
	}
	return toks
}

// JoinPath renders tokens back to the normalized dot-joined form.
func JoinPath(toks []Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.Text
	}
	return strings.Join(parts, ".")
}
