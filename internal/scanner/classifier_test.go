package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nerdneilsfield/go-docx-styler/internal/numbering"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

func TestClassifyByStyleName(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	tests := []struct {
		style string
		want  profile.StyleKey
	}{
		{"Title", profile.KeyDocumentTitle},
		{"标题", profile.KeyDocumentTitle},
		{"Heading 1", profile.KeyHeading1},
		{"heading 2", profile.KeyHeading2},
		{"标题 3", profile.KeyHeading3},
		{"标题4", profile.KeyHeading4},
		{"样式 Heading 1", profile.KeyHeading1},
		{"Heading 2 + 加粗", profile.KeyHeading2},
	}

	for _, tt := range tests {
		got := c.Classify(Signal{StyleName: tt.style, Text: "任意内容"})
		assert.Equal(t, tt.want, got, "style %q", tt.style)
	}
}

// 样式名是最强信号：即使字号很大也不改判
func TestClassifyStyleNameBeatsFontSize(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	got := c.Classify(Signal{
		StyleName:  "Heading 3",
		FontSizePt: 30,
		Bold:       true,
		Centered:   true,
		Text:       "短标题",
	})
	assert.Equal(t, profile.KeyHeading3, got)
}

func TestClassifyByFontSize(t *testing.T) {
	c := NewClassifier(Thresholds{BaseFontSizePt: 14})

	t.Run("typical document ladder", func(t *testing.T) {
		title := c.Classify(Signal{
			StyleName:  "Normal",
			FontSizePt: 22,
			Bold:       true,
			Centered:   true,
			Text:       "关于开展年度考核工作的通知",
		})
		assert.Equal(t, profile.KeyDocumentTitle, title)

		h1 := c.Classify(Signal{
			FontSizePt: 18,
			Bold:       true,
			Text:       "一、总则",
			Manual:     numbering.Detect("一、总则"),
		})
		assert.Equal(t, profile.KeyHeading1, h1)

		h2 := c.Classify(Signal{
			StyleName:  "Normal",
			FontSizePt: 16,
			Text:       "1.适用范围",
			Manual:     numbering.Detect("1.适用范围"),
		})
		assert.Equal(t, profile.KeyHeading2, h2)

		body := c.Classify(Signal{
			FontSizePt: 14,
			Text:       "本办法适用于各级直属机构。",
		})
		assert.Equal(t, profile.KeyBody, body)
	})

	t.Run("oversized centered but not bold is not the title", func(t *testing.T) {
		got := c.Classify(Signal{
			FontSizePt: 22,
			Centered:   true,
			Text:       "某个居中的大字段落",
		})
		assert.Equal(t, profile.KeyHeading1, got)
	})

	t.Run("long paragraph is body regardless of size", func(t *testing.T) {
		long := "这是一个很长的段落，远远超过了标题允许的显示宽度，所以即使字号更大也应当归为正文处理。"
		got := c.Classify(Signal{
			FontSizePt: 18,
			Text:       long,
		})
		assert.Equal(t, profile.KeyBody, got)
	})

	t.Run("bold short paragraph with manual numbering at body size", func(t *testing.T) {
		got := c.Classify(Signal{
			FontSizePt: 14,
			Bold:       true,
			Text:       "①具体事项",
			Manual:     &numbering.Detection{Type: numbering.PrefixParenthesis},
		})
		assert.Equal(t, profile.KeyHeading4, got)
	})

	t.Run("no declared size is body", func(t *testing.T) {
		got := c.Classify(Signal{Text: "没有字号信息的段落"})
		assert.Equal(t, profile.KeyBody, got)
	})
}

func TestClassifyListStyleIsBody(t *testing.T) {
	c := NewClassifier(Thresholds{BaseFontSizePt: 14})

	got := c.Classify(Signal{
		StyleName:  "List Paragraph",
		FontSizePt: 18,
		Bold:       true,
		Text:       "列表中的大字内容",
	})
	assert.Equal(t, profile.KeyBody, got)
}

func TestNewClassifierFillsDefaults(t *testing.T) {
	c := NewClassifier(Thresholds{})
	assert.Equal(t, float64(DefaultBaseFontSizePt), c.thresholds.BaseFontSizePt)
	assert.NotEmpty(t, c.thresholds.Bands)
	assert.Greater(t, c.thresholds.MaxHeadingWidth, 0)
}
