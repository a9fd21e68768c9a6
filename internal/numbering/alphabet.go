package numbering

import (
	"strconv"
	"strings"

	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

// FormatCounter renders n in the given counter alphabet. Values outside
// an alphabet's range fall back to arabic digits, matching how word
// processors degrade out-of-range list counters.
func FormatCounter(n int, t profile.CounterType) string {
	switch t {
	case profile.CounterChinese:
		return toChinese(n, false)
	case profile.CounterChineseFormal:
		return toChinese(n, true)
	case profile.CounterCircled:
		return toCircled(n)
	case profile.CounterRomanUpper:
		return toRoman(n, false)
	case profile.CounterRomanLower:
		return toRoman(n, true)
	case profile.CounterLatinUpper:
		return toLatin(n, false)
	case profile.CounterLatinLower:
		return toLatin(n, true)
	default:
		return strconv.Itoa(n)
	}
}

var (
	chineseDigits       = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	chineseUnits        = []string{"", "十", "百", "千"}
	chineseFormalDigits = []string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}
	chineseFormalUnits  = []string{"", "拾", "佰", "仟"}
)

// toChinese converts n to Chinese numerals, 小写 (一二三) or 大写 (壹贰叁).
func toChinese(n int, formal bool) string {
	digits, units := chineseDigits, chineseUnits
	if formal {
		digits, units = chineseFormalDigits, chineseFormalUnits
	}

	if n < 0 || n > 9999 {
		return strconv.Itoa(n)
	}
	if n == 0 {
		return digits[0]
	}
	// 10..19 drop the leading unit digit: 十/拾, 十一/拾壹 ... 十九/拾玖
	if n >= 10 && n < 20 {
		if n == 10 {
			return units[1]
		}
		return units[1] + digits[n%10]
	}

	s := strconv.Itoa(n)
	var sb strings.Builder
	for i, ch := range s {
		d := int(ch - '0')
		if d != 0 {
			sb.WriteString(digits[d])
			sb.WriteString(units[len(s)-i-1])
		} else if i < len(s)-1 && s[i+1] != '0' {
			sb.WriteString(digits[0])
		}
	}
	return strings.TrimSuffix(sb.String(), digits[0])
}

// toCircled converts n to ①..⑳; the circled alphabet only covers 1..20.
func toCircled(n int) string {
	if n >= 1 && n <= 20 {
		return string(rune(0x2460 + n - 1))
	}
	return strconv.Itoa(n)
}

var (
	romanValues  = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

func toRoman(n int, lower bool) string {
	if n <= 0 || n >= 4000 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for i, v := range romanValues {
		for n >= v {
			sb.WriteString(romanSymbols[i])
			n -= v
		}
	}
	if lower {
		return strings.ToLower(sb.String())
	}
	return sb.String()
}

// toLatin converts n to A, B, ... Z, AA, AB ... (bijective base 26).
func toLatin(n int, lower bool) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	var sb []byte
	for n > 0 {
		n--
		sb = append([]byte{byte('A' + n%26)}, sb...)
		n /= 26
	}
	if lower {
		return strings.ToLower(string(sb))
	}
	return string(sb)
}
