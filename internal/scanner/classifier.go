package scanner

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nerdneilsfield/go-docx-styler/internal/numbering"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

// DeltaBand maps a font-size delta (pt over the base size) onto a
// heading level. Bands are consulted largest first; larger delta means
// shallower heading.
type DeltaBand struct {
	MinDeltaPt float64
	Key        profile.StyleKey
}

// Thresholds are the tunable knobs of the heuristic classifier. The
// delta-to-level mapping is deliberately configuration, not hard-coded
// literals: the values below are a reasonable monotonic default, not a
// recovered ground truth.
type Thresholds struct {
	BaseFontSizePt  float64 // 基准字号，默认三号 16 磅
	MinHeadingDelta float64 // 低于该增量不视为标题
	TitleMinDelta   float64 // 达到该增量且居中加粗视为文档标题
	MaxHeadingWidth int     // 标题的显示宽度上限（runewidth）
	Bands           []DeltaBand
}

// DefaultBaseFontSizePt follows the 三号 convention for 公文 body text.
const DefaultBaseFontSizePt = 16

// DefaultThresholds returns the standard heuristic configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BaseFontSizePt:  DefaultBaseFontSizePt,
		MinHeadingDelta: 1,
		TitleMinDelta:   6,
		MaxHeadingWidth: 40,
		Bands: []DeltaBand{
			{MinDeltaPt: 4, Key: profile.KeyHeading1},
			{MinDeltaPt: 2, Key: profile.KeyHeading2},
			{MinDeltaPt: 1, Key: profile.KeyHeading3},
		},
	}
}

// Signal carries everything the classifier may look at for one
// paragraph. FontSizePt is zero when no run declares a size.
type Signal struct {
	StyleName  string
	FontSizePt float64
	Bold       bool
	Centered   bool
	Text       string
	Manual     *numbering.Detection
}

// Classifier infers a suggested style key per paragraph. Best effort:
// it never fails, and anything it cannot place is body.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier builds a classifier. Zero-valued threshold fields are
// filled from the defaults.
func NewClassifier(t Thresholds) *Classifier {
	defaults := DefaultThresholds()
	if t.BaseFontSizePt <= 0 {
		t.BaseFontSizePt = defaults.BaseFontSizePt
	}
	if t.MinHeadingDelta <= 0 {
		t.MinHeadingDelta = defaults.MinHeadingDelta
	}
	if t.TitleMinDelta <= 0 {
		t.TitleMinDelta = defaults.TitleMinDelta
	}
	if t.MaxHeadingWidth <= 0 {
		t.MaxHeadingWidth = defaults.MaxHeadingWidth
	}
	if len(t.Bands) == 0 {
		t.Bands = defaults.Bands
	}
	return &Classifier{thresholds: t}
}

// Classify returns the suggested style key for a paragraph. The
// declared style name is the strongest signal and is never overridden
// by the font-size heuristic or the manual-numbering tie-break.
func (c *Classifier) Classify(sig Signal) profile.StyleKey {
	if key, ok := roleFromStyleName(sig.StyleName); ok {
		return key
	}

	// List styles carry oversized text legitimately (bullets, quotes in
	// lists); plain Normal/正文 does not, and an oversized short Normal
	// paragraph is the classic manually formatted heading.
	if isListStyle(sig.StyleName) {
		return profile.KeyBody
	}

	if sig.FontSizePt > 0 {
		delta := sig.FontSizePt - c.thresholds.BaseFontSizePt
		short := runewidth.StringWidth(sig.Text) <= c.thresholds.MaxHeadingWidth

		if delta >= c.thresholds.MinHeadingDelta && short {
			if delta >= c.thresholds.TitleMinDelta && sig.Centered && sig.Bold {
				return profile.KeyDocumentTitle
			}
			for _, band := range c.thresholds.Bands {
				if delta >= band.MinDeltaPt {
					return band.Key
				}
			}
			// 增量达到阈值但落在任何区间之外，默认二级标题
			return profile.KeyHeading2
		}

		// 与正文同号的加粗短段落，带手动编号时按四级标题处理
		if delta == 0 && sig.Bold && short && sig.Manual != nil {
			return profile.KeyHeading4
		}
	}

	return profile.KeyBody
}

// roleFromStyleName maps a declared style name onto a style key. Names
// are normalized first: the localized "样式 " prefix and "+"/":" format
// suffixes that Word appends to derived styles are stripped.
func roleFromStyleName(raw string) (profile.StyleKey, bool) {
	name := normalizeStyleName(raw)
	if name == "" {
		return "", false
	}

	lower := strings.ToLower(name)
	switch lower {
	case "title", "标题":
		return profile.KeyDocumentTitle, true
	case "heading 1", "heading1", "标题 1", "标题1":
		return profile.KeyHeading1, true
	case "heading 2", "heading2", "标题 2", "标题2":
		return profile.KeyHeading2, true
	case "heading 3", "heading3", "标题 3", "标题3":
		return profile.KeyHeading3, true
	case "heading 4", "heading4", "标题 4", "标题4":
		return profile.KeyHeading4, true
	}
	return "", false
}

// normalizeStyleName cleans a raw style name for matching.
func normalizeStyleName(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.TrimPrefix(name, "样式 ")
	if i := strings.Index(name, "+"); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// isListStyle reports whether the style name belongs to the list
// paragraph family, which is excluded from the font-size heuristic.
func isListStyle(raw string) bool {
	lower := strings.ToLower(normalizeStyleName(raw))
	return strings.HasPrefix(lower, "list paragraph") ||
		strings.HasPrefix(lower, "列出段落")
}
