package scanner

import (
	"strings"

	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-docx-styler/internal/document"
	"github.com/nerdneilsfield/go-docx-styler/internal/numbering"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

// scanTextLimit caps the text carried in a scan item; the shell only
// needs enough to display.
const scanTextLimit = 100

// ScanItem is one paragraph's entry in the scan report. Index is the
// paragraph's document position and stays stable across the scan and
// format passes; empty paragraphs are skipped but keep their indices.
type ScanItem struct {
	Index             int                  `json:"index"`
	Text              string               `json:"text"`
	Style             string               `json:"style"`
	OriginalStyleName string               `json:"originalStyleName,omitempty"`
	SuggestedKey      profile.StyleKey     `json:"suggested_key"`
	ManualNumbering   *numbering.Detection `json:"manual_numbering,omitempty"`
}

// Scanner walks a document and assembles the scan report. It never
// mutates the source document.
type Scanner struct {
	classifier *Classifier
	logger     *zap.Logger
}

// NewScanner builds a scanner around the given heuristic thresholds.
func NewScanner(thresholds Thresholds, logger *zap.Logger) *Scanner {
	return &Scanner{
		classifier: NewClassifier(thresholds),
		logger:     logger,
	}
}

// Classifier exposes the scanner's classifier so the formatting pass
// can resolve paragraphs missing from the user's mapping the same way
// the scan pass did.
func (s *Scanner) Classifier() *Classifier {
	return s.classifier
}

// Scan produces the ordered scan report for an opened document.
func (s *Scanner) Scan(f *document.File) []ScanItem {
	items := make([]ScanItem, 0, len(f.Document.Body.Paragraphs))

	for idx := range f.Document.Body.Paragraphs {
		para := &f.Document.Body.Paragraphs[idx]

		text := strings.TrimSpace(document.ParagraphText(para))
		if text == "" {
			continue
		}

		styleID := document.ParagraphStyleID(para)
		styleName := f.StyleDisplayName(styleID)
		manual := numbering.Detect(text)

		key := s.classifier.Classify(Signal{
			StyleName:  styleName,
			FontSizePt: document.DominantFontSizePt(para),
			Bold:       document.IsBold(para),
			Centered:   document.IsCentered(para),
			Text:       text,
			Manual:     manual,
		})

		items = append(items, ScanItem{
			Index:             idx,
			Text:              truncateRunes(text, scanTextLimit),
			Style:             displayStyleName(styleName),
			OriginalStyleName: styleName,
			SuggestedKey:      key,
			ManualNumbering:   manual,
		})
	}

	s.logger.Debug("scan finished",
		zap.Int("paragraphs", len(f.Document.Body.Paragraphs)),
		zap.Int("items", len(items)))

	return items
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

var styleDisplayMap = map[string]string{
	"Normal":                    "正文",
	"List Paragraph":            "正文（列表）",
	"Body Text":                 "正文",
	"Body Text First Indent":    "正文（首行缩进）",
	"Body Text First Indent 2":  "正文（首行缩进2）",
	"Body Text Indent":          "正文（缩进）",
	"Heading 1":                 "标题 1",
	"Heading 2":                 "标题 2",
	"Heading 3":                 "标题 3",
	"Heading 4":                 "标题 4",
	"Title":                     "标题",
}

// displayStyleName converts Word's internal style names into the
// user-facing Chinese labels shown by the correction UI.
func displayStyleName(raw string) string {
	if raw == "" {
		return "正文"
	}
	if mapped, ok := styleDisplayMap[raw]; ok {
		return mapped
	}
	if strings.HasPrefix(raw, "Body Text") {
		return "正文（" + strings.TrimSpace(strings.TrimPrefix(raw, "Body Text")) + "）"
	}
	if strings.HasPrefix(raw, "List Paragraph") {
		suffix := strings.TrimSpace(strings.TrimPrefix(raw, "List Paragraph"))
		return "正文（列表" + suffix + "）"
	}
	return raw
}
