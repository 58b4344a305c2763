package rule

import (
	"regexp"
	"strings"
)

// matchString evaluates one StringMatch leaf against candidate.
func matchString(m *StringMatch, candidate string) bool {
	c := candidate
	if m.Flags.NormalizeWS && m.Literal != "" {
		c = normalizeWS(c)
	}
	if m.Flags.CompressWS {
		c = compressWS(c)
	}
	if m.Flags.MaxLen > 0 && len([]rune(c)) > m.Flags.MaxLen {
		c = string([]rune(c)[:m.Flags.MaxLen])
	}
	if m.Literal != "" || (!m.IsRegexp && m.Pattern == "") {
		lit := m.Literal
		if m.Flags.CaseInsensitive {
			return strings.EqualFold(c, lit)
		}
		return c == lit
	}
	pat := m.Pattern
	if m.IsRegexp {
		reFlags := ""
		if m.Flags.CaseInsensitive {
			reFlags += "i"
		}
		if m.Flags.Multiline {
			reFlags += "m"
		}
		if m.Flags.NormalizeWS { // 's' on a pattern means dot-matches-all
			reFlags += "s"
		}
		expr := pat
		if reFlags != "" {
			expr = "(?" + reFlags + ")" + pat
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return false
		}
		if m.Flags.Sticky {
			return re.MatchString(c) && strings.HasPrefix(c, re.FindString(c))
		}
		return re.MatchString(c)
	}
	return wildcardMatch(pat, c, m.Flags.CaseInsensitive)
}

// wildcardMatch implements shell-style '*'/'?' wildcard matching.
func wildcardMatch(pattern, s string, caseInsensitive bool) bool {
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
		s = strings.ToLower(s)
	}
	return wildcardMatchRunes([]rune(pattern), []rune(s))
}

func wildcardMatchRunes(p, s []rune) bool {
	if len(p) == 0 {
		return len(s) == 0
	}
	if p[0] == '*' {
		if wildcardMatchRunes(p[1:], s) {
			return true
		}
		if len(s) > 0 && wildcardMatchRunes(p, s[1:]) {
			return true
		}
		return false
	}
	if len(s) == 0 {
		return false
	}
	if p[0] == '?' || p[0] == s[0] {
		return wildcardMatchRunes(p[1:], s[1:])
	}
	return false
}

func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func compressWS(s string) string {
	var b strings.Builder
	prevSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// matchNumber evaluates one NumCompare leaf against candidate.
func matchNumber(m *NumCompare, candidate float64) bool {
	switch m.Op {
	case NumLT:
		return candidate < m.Target
	case NumLE:
		return candidate <= m.Target
	case NumEQ, NumAs:
		return candidate == m.Target
	case NumNE:
		return candidate != m.Target
	case NumGE:
		return candidate >= m.Target
	case NumGT:
		return candidate > m.Target
	case NumLike:
		// 'like' is a loose equality ignoring sign, per the original
		// executors' documented leniency for numeric-ish string input.
		return candidate == m.Target || -candidate == m.Target
	}
	return false
}
