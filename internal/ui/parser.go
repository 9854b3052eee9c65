package ui

import (
	"strings"
)

// ParseCSS parses a primitive CSS file: selectors .class or #id (comma-separated lists allowed)
// and blocks of "key: value;". No combinators, no @rules. Later rules override earlier ones.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	content = stripCSSComments(content)
	for {
		rules, rest, ok := parseOneBlock(content)
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	return sheet, nil
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "/*")
		if open == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		close := strings.Index(s[open+2:], "*/")
		if close == -1 {
			return b.String()
		}
		s = s[open+2+close+2:]
	}
}

func validSelector(sel string) bool {
	return len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#')
}

// parseOneBlock finds the next "selectors { ... }" and returns one rule per valid selector and
// the rest of the string. Blocks whose selectors are all unsupported are skipped.
func parseOneBlock(s string) ([]Rule, string, bool) {
	for {
		open := strings.Index(s, "{")
		if open == -1 {
			return nil, "", false
		}
		close := findMatchingBrace(s, open)
		if close == -1 {
			return nil, "", false
		}
		props := parseDeclarations(strings.TrimSpace(s[open+1 : close]))
		rest := strings.TrimSpace(s[close+1:])

		var rules []Rule
		for _, sel := range strings.Split(s[:open], ",") {
			sel = strings.TrimSpace(sel)
			if !validSelector(sel) {
				continue
			}
			rules = append(rules, Rule{Selector: sel, Props: props})
		}
		if len(rules) > 0 {
			return rules, rest, true
		}
		s = rest
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
