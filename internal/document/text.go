package document

import (
	"strconv"
	"strings"
)

// ParagraphText extracts the plain text of a paragraph. Tabs and line
// breaks become whitespace, drawings contribute nothing.
func ParagraphText(para *Paragraph) string {
	if para == nil {
		return ""
	}

	var sb strings.Builder
	for i := range para.Runs {
		sb.WriteString(runText(&para.Runs[i]))
	}
	return sb.String()
}

func runText(run *Run) string {
	if run == nil {
		return ""
	}
	if run.Text != nil {
		return run.Text.Text
	}
	if run.Tab != nil {
		return "\t"
	}
	if run.Break != nil {
		if run.Break.Type == "page" {
			return "\n\n"
		}
		return "\n"
	}
	return ""
}

// ReplaceParagraphText replaces the paragraph's runs with a single run
// carrying text. The first run's properties are preserved; this is the
// correction path, where losing per-run formatting inside a retyped
// heading is acceptable.
func ReplaceParagraphText(para *Paragraph, text string) {
	if para == nil {
		return
	}

	var props *RunProps
	for i := range para.Runs {
		if para.Runs[i].Properties != nil {
			props = para.Runs[i].Properties
			break
		}
	}

	para.Runs = []Run{{
		Properties: props,
		Text: &Text{
			Text:  text,
			Space: "preserve",
		},
	}}
}

// PrependParagraphText inserts text in front of the paragraph's first
// text run, creating one if the paragraph has none. Used to attach a
// rendered auto-number without disturbing the run structure.
func PrependParagraphText(para *Paragraph, text string) {
	if para == nil || text == "" {
		return
	}

	for i := range para.Runs {
		if para.Runs[i].Text != nil {
			para.Runs[i].Text.Text = text + para.Runs[i].Text.Text
			para.Runs[i].Text.Space = "preserve"
			return
		}
	}

	para.Runs = append([]Run{{
		Text: &Text{Text: text, Space: "preserve"},
	}}, para.Runs...)
}

// HasImage reports whether the paragraph contains an embedded picture,
// either DrawingML or legacy VML.
func HasImage(para *Paragraph) bool {
	if para == nil {
		return false
	}
	for i := range para.Runs {
		if para.Runs[i].Drawing != nil || para.Runs[i].Pict != nil {
			return true
		}
	}
	return false
}

// ParagraphStyleID returns the paragraph's declared style id, or "".
func ParagraphStyleID(para *Paragraph) string {
	if para != nil && para.Properties != nil && para.Properties.Style != nil {
		return para.Properties.Style.Val
	}
	return ""
}

// DominantFontSizePt returns the font size of the first run that
// declares one, in points, or 0 when no run carries an explicit size.
// w:sz values are half-points.
func DominantFontSizePt(para *Paragraph) float64 {
	if para == nil {
		return 0
	}
	for i := range para.Runs {
		props := para.Runs[i].Properties
		if props == nil || props.Size == nil {
			continue
		}
		if half, err := strconv.ParseFloat(props.Size.Val, 64); err == nil && half > 0 {
			return half / 2
		}
	}
	return 0
}

// IsBold reports whether the paragraph's first text run is bold.
func IsBold(para *Paragraph) bool {
	if para == nil {
		return false
	}
	for i := range para.Runs {
		props := para.Runs[i].Properties
		if props == nil {
			continue
		}
		if props.Bold != nil {
			return props.Bold.Val == "" || props.Bold.Val == "1" || props.Bold.Val == "true"
		}
	}
	return false
}

// IsCentered reports whether the paragraph declares center alignment.
func IsCentered(para *Paragraph) bool {
	return para != nil && para.Properties != nil &&
		para.Properties.Align != nil && para.Properties.Align.Val == "center"
}
