package numbering

import (
	"testing"

	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

func TestFormatCounter(t *testing.T) {
	tests := []struct {
		typ  profile.CounterType
		n    int
		want string
	}{
		{profile.CounterArabic, 1, "1"},
		{profile.CounterArabic, 42, "42"},
		{profile.CounterChinese, 1, "一"},
		{profile.CounterChinese, 10, "十"},
		{profile.CounterChinese, 11, "十一"},
		{profile.CounterChinese, 20, "二十"},
		{profile.CounterChinese, 21, "二十一"},
		{profile.CounterChinese, 105, "一百零五"},
		{profile.CounterChineseFormal, 3, "叁"},
		// 10..19 同样省掉首位：拾、拾贰，而不是 壹拾、壹拾贰
		{profile.CounterChineseFormal, 10, "拾"},
		{profile.CounterChineseFormal, 12, "拾贰"},
		{profile.CounterChineseFormal, 21, "贰拾壹"},
		{profile.CounterCircled, 1, "①"},
		{profile.CounterCircled, 20, "⑳"},
		{profile.CounterRomanUpper, 4, "IV"},
		{profile.CounterRomanUpper, 1994, "MCMXCIV"},
		{profile.CounterRomanLower, 9, "ix"},
		{profile.CounterLatinUpper, 1, "A"},
		{profile.CounterLatinUpper, 26, "Z"},
		{profile.CounterLatinUpper, 27, "AA"},
		{profile.CounterLatinLower, 2, "b"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.want, func(t *testing.T) {
			if got := FormatCounter(tt.n, tt.typ); got != tt.want {
				t.Errorf("FormatCounter(%d, %q) = %q, want %q", tt.n, tt.typ, got, tt.want)
			}
		})
	}
}

func TestFormatCounterOutOfRangeFallsBackToArabic(t *testing.T) {
	tests := []struct {
		typ  profile.CounterType
		n    int
		want string
	}{
		{profile.CounterCircled, 21, "21"},
		{profile.CounterCircled, 0, "0"},
		{profile.CounterRomanUpper, 4000, "4000"},
		{profile.CounterRomanLower, 0, "0"},
		{profile.CounterChinese, 10000, "10000"},
		{profile.CounterLatinUpper, 0, "0"},
	}

	for _, tt := range tests {
		if got := FormatCounter(tt.n, tt.typ); got != tt.want {
			t.Errorf("FormatCounter(%d, %q) = %q, want %q", tt.n, tt.typ, got, tt.want)
		}
	}
}
