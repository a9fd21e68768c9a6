package numbering

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/width"
)

// PrefixType classifies a manually typed numbering prefix.
type PrefixType string

const (
	PrefixArabic      PrefixType = "arabic"      // "1.", "1.1 ", "2、"
	PrefixChinese     PrefixType = "chinese"     // "一、", "第二章"
	PrefixParenthesis PrefixType = "parenthesis" // "(1)", "（一）"
)

// Detection describes a manually typed numbering prefix found at the
// start of a paragraph. Match is the exact matched substring of the
// original (trimmed) text; CleanText is the remainder with surrounding
// whitespace removed.
type Detection struct {
	Type      PrefixType `json:"type"`
	Match     string     `json:"match"`
	CleanText string     `json:"clean_text"`
}

type prefixPattern struct {
	typ PrefixType
	re  *regexp2.Regexp
}

// Patterns are tried in fixed priority order. Parenthesis first:
// arabic and Chinese numerals appear inside parens and must not be
// double-matched against the bare-prefix rules.
var prefixPatterns = []prefixPattern{
	{PrefixParenthesis, regexp2.MustCompile(`^([(（【\[]((\d+)|([一二三四五六七八九十]+))[)）】\]])`, regexp2.None)},
	{PrefixArabic, regexp2.MustCompile(`^(\d+(\.\d+)*)[.．、\s]+`, regexp2.None)},
	{PrefixChinese, regexp2.MustCompile(`^((第?([一二三四五六七八九十百]+)[章节条]?) ?[、，,.])`, regexp2.None)},
}

// unitKeywords guards against measurements being mistaken for numbering
// ("10kg 重量标准" is not a list item).
var unitKeywords = []string{
	"kg", "g", "mg", "km", "m", "cm", "mm", "%",
	"年", "月", "日", "时", "分", "秒", "gb", "mb", "tb",
}

const (
	maxPrefixRunes = 15
	maxLeadingNum  = 50 // 超过视为年份等普通数字
	minCleanRunes  = 2
)

// Detect looks for a manually typed numbering prefix at the start of
// text. It is pure and never fails; no detection returns nil.
func Detect(text string) *Detection {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	for _, p := range prefixPatterns {
		m, err := p.re.FindStringMatch(text)
		if err != nil || m == nil {
			continue
		}

		match := m.String()
		if g := m.GroupByNumber(1); g != nil && g.String() != "" {
			match = g.String()
		}
		// regexp2 positions are rune offsets, not byte offsets.
		runes := []rune(text)
		cleanText := strings.TrimSpace(string(runes[m.Index+m.Length:]))

		if utf8.RuneCountInString(match) > maxPrefixRunes {
			continue
		}
		if p.typ == PrefixArabic && leadingNumber(match) > maxLeadingNum {
			continue
		}
		if startsWithUnit(cleanText) {
			continue
		}
		if utf8.RuneCountInString(cleanText) < minCleanRunes {
			continue
		}

		return &Detection{
			Type:      p.typ,
			Match:     match,
			CleanText: cleanText,
		}
	}

	return nil
}

// leadingNumber parses the leading digit span of s, folding full-width
// digits to their ASCII forms first.
func leadingNumber(s string) int {
	s = width.Narrow.String(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func startsWithUnit(s string) bool {
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, unit := range unitKeywords {
		if strings.HasPrefix(lower, unit) {
			return true
		}
	}
	return false
}
