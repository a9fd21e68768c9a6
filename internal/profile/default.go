package profile

import "time"

// DefaultProfileID identifies the built-in profile. It is immutable and
// the store refuses to delete it.
const DefaultProfileID = "default_gongwen"

// DefaultProfile returns the built-in 公文 profile: 方正小标宋 二号 title,
// 仿宋 三号 body, GB/T 9704 page margins. Callers get a fresh copy each
// time so edits to a returned value never leak into the template.
func DefaultProfile() *StyleProfile {
	created := time.Date(2023, 11, 17, 0, 0, 0, 0, time.UTC)
	return &StyleProfile{
		ID:          DefaultProfileID,
		Name:        "公文通用规范",
		Description: "按照党政机关公文格式国家标准设定",
		IsDefault:   true,
		CreatedAt:   created,
		UpdatedAt:   created,
		Styles: StyleSet{
			DocumentTitle: StyleConfig{
				FontFamily:  "方正小标宋简体",
				FontSize:    22, // 二号
				LineSpacing: 35,
				Alignment:   AlignCenter,
				Bold:        true,
			},
			Body: StyleConfig{
				FontFamily:      "仿宋",
				FontSize:        16, // 三号
				LineSpacing:     28,
				Alignment:       AlignJustify,
				FirstLineIndent: 2,
			},
			Heading1: StyleConfig{
				FontFamily:      "方正黑体",
				FontSize:        16,
				LineSpacing:     28,
				Alignment:       AlignLeft,
				Bold:            true,
				FirstLineIndent: 2,
				Numbering: &NumberingConfig{
					Enabled:     true,
					CounterType: CounterChinese,
					Suffix:      "、",
				},
			},
			Heading2: StyleConfig{
				FontFamily:      "楷体",
				FontSize:        16,
				LineSpacing:     28,
				Alignment:       AlignLeft,
				Bold:            true,
				FirstLineIndent: 2,
				Numbering: &NumberingConfig{
					Enabled:     true,
					CounterType: CounterChinese,
					Prefix:      "（",
					Suffix:      "）",
				},
			},
			Heading3: StyleConfig{
				FontFamily:      "仿宋",
				FontSize:        16,
				LineSpacing:     28,
				Alignment:       AlignLeft,
				Bold:            true,
				FirstLineIndent: 2,
				Numbering: &NumberingConfig{
					Enabled:     true,
					CounterType: CounterArabic,
					Suffix:      ".",
				},
			},
			Heading4: StyleConfig{
				FontFamily:      "仿宋",
				FontSize:        16,
				LineSpacing:     28,
				Alignment:       AlignLeft,
				Bold:            true,
				FirstLineIndent: 2,
				Numbering: &NumberingConfig{
					Enabled:     true,
					CounterType: CounterCircled,
				},
			},
		},
		SpecialRules: SpecialRules{
			AutoLatinFont:       true,
			ResetIndentsSpacing: true,
			PictureLineSpacing:  true,
			PictureCenterAlign:  true,
			RemoveAutoNumbering: false,
		},
		PageMargins: &PageMargins{
			Top:    3.7,
			Bottom: 3.5,
			Left:   2.8,
			Right:  2.6,
		},
	}
}
