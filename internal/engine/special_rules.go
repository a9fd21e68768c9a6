package engine

import (
	"github.com/nerdneilsfield/go-docx-styler/internal/document"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

// stripStyleNumbering removes numbering bindings from the style
// definitions themselves. Paragraph-level cleanup alone is not enough:
// a style carrying w:numPr re-numbers every paragraph bound to it.
func stripStyleNumbering(f *document.File) int {
	if f.Styles == nil {
		return 0
	}

	removed := 0
	for i := range f.Styles.Styles {
		props := f.Styles.Styles[i].Properties
		if props != nil && props.NumPr != nil {
			props.NumPr = nil
			removed++
		}
	}
	if removed > 0 {
		f.MarkStylesModified()
	}
	return removed
}

// stripParagraphNumbering removes the paragraph's own numbering binding.
func stripParagraphNumbering(para *document.Paragraph) {
	if para.Properties != nil {
		para.Properties.NumPr = nil
	}
}

// setSingleLineSpacing forces single line spacing on a paragraph.
// 固定行距会把图片裁成一行高，图片段落必须用单倍行距
func setSingleLineSpacing(para *document.Paragraph) {
	props := ensureProps(para)
	if props.Spacing == nil {
		props.Spacing = &document.ParagraphSpacing{}
	}
	props.Spacing.Line = "240"
	props.Spacing.LineRule = "auto"
}

// forceLatinFont rewrites the Latin font slots of runs containing ASCII
// letters or digits, leaving the East Asian slot alone so mixed 中英文
// runs keep their CJK face.
func forceLatinFont(para *document.Paragraph, font string) {
	if font == "" {
		font = profile.DefaultLatinFont
	}

	for i := range para.Runs {
		run := &para.Runs[i]
		if run.Text == nil || !containsLatin(run.Text.Text) {
			continue
		}
		if run.Properties == nil {
			run.Properties = &document.RunProps{}
		}
		if run.Properties.Font == nil {
			run.Properties.Font = &document.RunFont{}
		}
		run.Properties.Font.ASCII = font
		run.Properties.Font.HAnsi = font
	}
}

func containsLatin(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}

// resetIndentsAndSpacing zeroes left/right indents, the hanging indent
// and the before/after paragraph spacing, keeping only the first-line
// indent and line spacing the profile just set.
func resetIndentsAndSpacing(para *document.Paragraph) {
	props := para.Properties
	if props == nil {
		return
	}
	if props.Indent != nil {
		props.Indent.Left = ""
		props.Indent.Right = ""
		props.Indent.Hanging = ""
	}
	if props.Spacing != nil {
		props.Spacing.Before = ""
		props.Spacing.After = ""
	}
}
