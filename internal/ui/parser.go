package ui

import (
	"strings"
)

// ParseCSS parses a primitive CSS subset: selectors .class or #id, optionally
// grouped with commas, and blocks of "key: value;" declarations. No
// combinators, no @rules. A grouped selector emits one Rule per selector
// sharing the same declarations; later rules override earlier ones.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	content = stripCSSComments(content)
	for {
		rules, rest, ok := parseRuleBlock(content)
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
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			if j+1 < len(s) {
				j += 2
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseRuleBlock finds the next "selectors { ... }" and returns one rule per
// valid selector in the group, plus the rest of the string. Blocks whose
// selector group contains no valid selector are skipped.
func parseRuleBlock(s string) (rules []Rule, rest string, ok bool) {
	open := strings.Index(s, "{")
	if open == -1 {
		return nil, "", false
	}
	close := findMatchingBrace(s, open)
	if close == -1 {
		return nil, "", false
	}

	var selectors []string
	for _, sel := range strings.Split(s[:open], ",") {
		sel = strings.TrimSpace(sel)
		if len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') {
			selectors = append(selectors, sel)
		}
	}
	rest = strings.TrimSpace(s[close+1:])
	if len(selectors) == 0 {
		return parseRuleBlock(rest)
	}

	props := parseDeclarations(strings.TrimSpace(s[open+1 : close]))
	for _, sel := range selectors {
		rules = append(rules, Rule{Selector: sel, Props: props})
	}
	return rules, rest, true
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
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.TrimSpace(part[:colon])
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
