package token

import "strings"

// SplitArgs splits a function call argument list on commas that are not
// inside single quotes, so a quoted literal may itself contain commas, nor
// inside parentheses, so a nested call keeps its own argument list intact.
// Each argument is returned trimmed, with its quotes intact. An empty or
// all-whitespace list yields nil.
func SplitArgs(args string) []string {
	if strings.TrimSpace(args) == "" {
		return nil
	}
	var (
		res     []string
		buf     []byte
		inQuote bool
		depth   int
	)
	for i := 0; i < len(args); i++ {
		c := args[i]
		switch c {
		case '\'':
			inQuote = !inQuote
			buf = append(buf, c)
		case '(':
			if !inQuote {
				depth++
			}
			buf = append(buf, c)
		case ')':
			if !inQuote && depth > 0 {
				depth--
			}
			buf = append(buf, c)
		case ',':
			if inQuote || depth > 0 {
				buf = append(buf, c)
				continue
			}
			res = append(res, strings.TrimSpace(string(buf)))
			buf = buf[:0]
		default:
			buf = append(buf, c)
		}
	}
	return append(res, strings.TrimSpace(string(buf)))
}

// Unquote strips the surrounding single quotes of a literal argument. The
// grammar has no escaping inside literals, so the content is returned
// verbatim.
func Unquote(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '\'' {
		return arg, false
	}
	if arg[len(arg)-1] != '\'' {
		return arg, false
	}
	return arg[1 : len(arg)-1], true
}
