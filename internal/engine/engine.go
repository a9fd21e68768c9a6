package engine

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-docx-styler/internal/document"
	"github.com/nerdneilsfield/go-docx-styler/internal/numbering"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
	"github.com/nerdneilsfield/go-docx-styler/internal/scanner"
)

// Request is one formatting job over an opened document. Mapping and
// replacement keys are paragraph indices in decimal string form, the
// shape they arrive in over the JSON wire.
type Request struct {
	Profile             *profile.StyleProfile
	Mappings            map[string]profile.StyleKey
	TextReplacements    map[string]string
	EnableAutoNumbering bool
}

// Engine rewrites paragraph and run formatting according to a style
// profile. It holds no per-document state; numbering counters live in a
// renderer local to each Apply call.
type Engine struct {
	classifier *scanner.Classifier
	logger     *zap.Logger
}

// NewEngine builds an engine. The classifier resolves paragraphs the
// caller's mapping does not cover, so an uncorrected scan formats with
// exactly the suggested roles.
func NewEngine(classifier *scanner.Classifier, logger *zap.Logger) *Engine {
	return &Engine{
		classifier: classifier,
		logger:     logger,
	}
}

// Apply mutates the in-memory document according to req. The walk is
// strictly sequential: numbering counters depend on paragraph order.
func (e *Engine) Apply(f *document.File, req Request) error {
	if err := req.Profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	rules := req.Profile.SpecialRules

	// 第一步：清除样式定义自带的自动编号，防止应用样式时重新引入
	if rules.RemoveAutoNumbering {
		if removed := stripStyleNumbering(f); removed > 0 {
			e.logger.Debug("removed style-level numbering definitions",
				zap.Int("styles", removed))
		}
	}

	renderer := numbering.NewRenderer(&req.Profile.Styles)

	for idx := range f.Document.Body.Paragraphs {
		para := &f.Document.Body.Paragraphs[idx]
		e.applyParagraph(f, para, idx, req, renderer)
	}

	// 保存前的最后一轮全局清理，确保编号属性无残留
	if rules.RemoveAutoNumbering {
		for idx := range f.Document.Body.Paragraphs {
			stripParagraphNumbering(&f.Document.Body.Paragraphs[idx])
		}
	}

	if req.Profile.PageMargins != nil {
		applyPageMargins(f.Document, req.Profile.PageMargins)
	}

	return nil
}

func (e *Engine) applyParagraph(f *document.File, para *document.Paragraph, idx int, req Request, renderer *numbering.Renderer) {
	rules := req.Profile.SpecialRules

	// 角色在任何改写之前解析，以便未映射的段落得到与扫描一致的建议
	key := e.resolveKey(f, para, idx, req.Mappings)

	// 1. 文本替换（用户纠偏，编号清理也走这条路径）
	if replacement, ok := req.TextReplacements[strconv.Itoa(idx)]; ok {
		document.ReplaceParagraphText(para, replacement)
	}

	// 图片段落的特殊规则优先于文字格式
	hasImage := document.HasImage(para)
	if hasImage && rules.PictureLineSpacing {
		setSingleLineSpacing(para)
	}
	if hasImage && rules.PictureCenterAlign {
		ensureProps(para).Align = &document.ParagraphAlign{Val: "center"}
	}
	if hasImage && document.ParagraphText(para) == "" {
		return
	}

	// 2./3. 标题自动编号：计数器先行推进，再决定是否写入文本
	if key.IsHeading() {
		rendered := renderer.Advance(key.HeadingLevel())
		if req.EnableAutoNumbering && rendered != "" {
			document.PrependParagraphText(para, rendered+" ")
		}
	}

	if rules.RemoveAutoNumbering {
		stripParagraphNumbering(para)
	}

	// 4. 应用角色对应的样式配置
	cfg, ok := req.Profile.Styles.Get(key)
	if !ok {
		return
	}
	applyStyleConfig(para, cfg)

	// 5. 全局特殊规则
	if rules.AutoLatinFont {
		forceLatinFont(para, rules.LatinFont)
	}
	if rules.ResetIndentsSpacing {
		resetIndentsAndSpacing(para)
	}

	rebindParagraphStyle(f, para, key)

	// 样式切换可能重新引入编号定义，再清一次
	if rules.RemoveAutoNumbering {
		stripParagraphNumbering(para)
	}
}

// resolveKey resolves the style key for a paragraph: the caller's
// mapping wins, a fresh classification is the fallback.
func (e *Engine) resolveKey(f *document.File, para *document.Paragraph, idx int, mappings map[string]profile.StyleKey) profile.StyleKey {
	if key, ok := mappings[strconv.Itoa(idx)]; ok {
		return profile.NormalizeKey(key)
	}

	text := document.ParagraphText(para)
	styleName := f.StyleDisplayName(document.ParagraphStyleID(para))
	return e.classifier.Classify(scanner.Signal{
		StyleName:  styleName,
		FontSizePt: document.DominantFontSizePt(para),
		Bold:       document.IsBold(para),
		Centered:   document.IsCentered(para),
		Text:       text,
		Manual:     numbering.Detect(text),
	})
}

var alignmentValues = map[profile.Alignment]string{
	profile.AlignLeft:    "left",
	profile.AlignCenter:  "center",
	profile.AlignRight:   "right",
	profile.AlignJustify: "both",
}

// applyStyleConfig rewrites the paragraph and run formatting covered by
// the profile. Properties outside the profile's reach are untouched.
func applyStyleConfig(para *document.Paragraph, cfg *profile.StyleConfig) {
	props := ensureProps(para)

	if val, ok := alignmentValues[cfg.Alignment]; ok {
		props.Align = &document.ParagraphAlign{Val: val}
	}

	if cfg.LineSpacing > 0 {
		if props.Spacing == nil {
			props.Spacing = &document.ParagraphSpacing{}
		}
		// 数值 <=3 视为倍数行距，否则按磅数固定行距
		if cfg.LineSpacing <= 3 {
			props.Spacing.Line = formatTwips(cfg.LineSpacing * 240)
			props.Spacing.LineRule = "auto"
		} else {
			props.Spacing.Line = formatTwips(cfg.LineSpacing * 20)
			props.Spacing.LineRule = "exact"
		}
	}
	if cfg.SpaceBefore > 0 {
		if props.Spacing == nil {
			props.Spacing = &document.ParagraphSpacing{}
		}
		props.Spacing.Before = formatTwips(cfg.SpaceBefore * 20)
	}
	if cfg.SpaceAfter > 0 {
		if props.Spacing == nil {
			props.Spacing = &document.ParagraphSpacing{}
		}
		props.Spacing.After = formatTwips(cfg.SpaceAfter * 20)
	}

	if cfg.FirstLineIndent > 0 {
		if props.Indent == nil {
			props.Indent = &document.ParagraphIndent{}
		}
		// 字符单位为先，磅换算兜底：一个字符约等于该样式字号的一个全角宽
		props.Indent.FirstLineChars = formatTwips(cfg.FirstLineIndent * 100)
		props.Indent.FirstLine = formatTwips(cfg.FirstLineIndent * cfg.FontSize * 20)
	}

	for i := range para.Runs {
		run := &para.Runs[i]
		if run.Drawing != nil || run.Pict != nil {
			continue
		}
		applyRunConfig(run, cfg)
	}
}

func applyRunConfig(run *document.Run, cfg *profile.StyleConfig) {
	if run.Properties == nil {
		run.Properties = &document.RunProps{}
	}
	props := run.Properties

	props.Font = &document.RunFont{
		ASCII:    cfg.FontFamily,
		HAnsi:    cfg.FontFamily,
		EastAsia: cfg.FontFamily,
		CS:       cfg.FontFamily,
	}

	half := formatHalfPoints(cfg.FontSize)
	props.Size = &document.FontSize{Val: half}
	props.SizeCs = &document.FontSize{Val: half}

	if cfg.Bold {
		props.Bold = &document.Bold{}
		props.BoldCs = &document.Bold{}
	} else {
		props.Bold = &document.Bold{Val: "0"}
		props.BoldCs = &document.Bold{Val: "0"}
	}
}

// rebindParagraphStyle points the paragraph at the document's own
// built-in style for the role, when the document defines one.
var styleNamesByKey = map[profile.StyleKey]string{
	profile.KeyDocumentTitle: "Title",
	profile.KeyBody:          "Normal",
	profile.KeyHeading1:      "Heading 1",
	profile.KeyHeading2:      "Heading 2",
	profile.KeyHeading3:      "Heading 3",
	profile.KeyHeading4:      "Heading 4",
}

func rebindParagraphStyle(f *document.File, para *document.Paragraph, key profile.StyleKey) {
	name, ok := styleNamesByKey[key]
	if !ok {
		return
	}
	styleID := f.FindStyleID(name)
	if styleID == "" {
		return
	}
	ensureProps(para).Style = &document.ParagraphStyle{Val: styleID}
}

func applyPageMargins(doc *document.WordDocument, margins *profile.PageMargins) {
	if doc.Body.SectPr == nil {
		doc.Body.SectPr = &document.SectPr{}
	}
	if doc.Body.SectPr.PageMar == nil {
		doc.Body.SectPr.PageMar = &document.PageMar{}
	}
	mar := doc.Body.SectPr.PageMar
	mar.Top = formatTwips(cmToTwips(margins.Top))
	mar.Bottom = formatTwips(cmToTwips(margins.Bottom))
	mar.Left = formatTwips(cmToTwips(margins.Left))
	mar.Right = formatTwips(cmToTwips(margins.Right))
}

func ensureProps(para *document.Paragraph) *document.ParagraphProps {
	if para.Properties == nil {
		para.Properties = &document.ParagraphProps{}
	}
	return para.Properties
}

// cmToTwips converts centimetres to twips (1 inch = 2.54cm = 1440 twips).
func cmToTwips(cm float64) float64 {
	return cm / 2.54 * 1440
}

func formatTwips(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

func formatHalfPoints(pt float64) string {
	return strconv.FormatFloat(pt*2, 'f', -1, 64)
}
