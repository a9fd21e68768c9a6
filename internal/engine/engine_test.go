package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-docx-styler/internal/document"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
	"github.com/nerdneilsfield/go-docx-styler/internal/scanner"
)

func newTestEngine() *Engine {
	return NewEngine(scanner.NewClassifier(scanner.DefaultThresholds()), zap.NewNop())
}

func textPara(text string) document.Paragraph {
	return document.Paragraph{
		Runs: []document.Run{{
			Properties: &document.RunProps{},
			Text:       &document.Text{Text: text},
		}},
	}
}

func testFile(paras ...document.Paragraph) *document.File {
	return &document.File{
		Document: &document.WordDocument{
			Body: document.Body{Paragraphs: paras},
		},
	}
}

func paraText(f *document.File, idx int) string {
	return document.ParagraphText(&f.Document.Body.Paragraphs[idx])
}

func TestApplyBodyFormatting(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("本办法自发布之日起施行。"))

	err := e.Apply(f, Request{
		Profile:  profile.DefaultProfile(),
		Mappings: map[string]profile.StyleKey{"0": profile.KeyBody},
	})
	require.NoError(t, err)

	para := &f.Document.Body.Paragraphs[0]
	props := para.Properties
	require.NotNil(t, props)

	assert.Equal(t, "both", props.Align.Val, "justify maps onto w:jc both")
	assert.Equal(t, "200", props.Indent.FirstLineChars, "2 chars in hundredths")
	assert.Equal(t, "640", props.Indent.FirstLine, "2 chars at 16pt in twips")
	assert.Equal(t, "560", props.Spacing.Line, "28pt fixed line spacing in twips")
	assert.Equal(t, "exact", props.Spacing.LineRule)

	run := para.Runs[0].Properties
	require.NotNil(t, run)
	assert.Equal(t, "仿宋", run.Font.EastAsia)
	assert.Equal(t, "32", run.Size.Val, "16pt in half-points")
	assert.Equal(t, "0", run.Bold.Val, "body is explicitly not bold")
}

func TestApplyMultipleLineSpacing(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("正文内容。"))

	p := profile.DefaultProfile()
	p.Styles.Body.LineSpacing = 1.5

	err := e.Apply(f, Request{
		Profile:  p,
		Mappings: map[string]profile.StyleKey{"0": profile.KeyBody},
	})
	require.NoError(t, err)

	spacing := f.Document.Body.Paragraphs[0].Properties.Spacing
	assert.Equal(t, "360", spacing.Line, "1.5 lines = 360 in 240ths")
	assert.Equal(t, "auto", spacing.LineRule)
}

func TestApplyAutoNumbering(t *testing.T) {
	e := newTestEngine()
	f := testFile(
		textPara("总则"),
		textPara("基本要求"),
		textPara("附则"),
		textPara("监督检查"),
	)

	err := e.Apply(f, Request{
		Profile: profile.DefaultProfile(),
		Mappings: map[string]profile.StyleKey{
			"0": profile.KeyHeading1,
			"1": profile.KeyHeading2,
			"2": profile.KeyHeading1,
			"3": profile.KeyHeading2,
		},
		EnableAutoNumbering: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "一、 总则", paraText(f, 0))
	assert.Equal(t, "（一） 基本要求", paraText(f, 1))
	assert.Equal(t, "二、 附则", paraText(f, 2))
	// 新的一级标题后，二级计数重新开始
	assert.Equal(t, "（一） 监督检查", paraText(f, 3))
}

func TestApplyNumberingDisabledLeavesText(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("总则"))

	err := e.Apply(f, Request{
		Profile:             profile.DefaultProfile(),
		Mappings:            map[string]profile.StyleKey{"0": profile.KeyHeading1},
		EnableAutoNumbering: false,
	})
	require.NoError(t, err)

	assert.Equal(t, "总则", paraText(f, 0))
}

// 文本替换先于编号：替换掉手动编号后再补机器编号，不会出现双重编号
func TestApplyReplacementBeforeNumbering(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("1、总则"))

	err := e.Apply(f, Request{
		Profile:             profile.DefaultProfile(),
		Mappings:            map[string]profile.StyleKey{"0": profile.KeyHeading1},
		TextReplacements:    map[string]string{"0": "总则"},
		EnableAutoNumbering: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "一、 总则", paraText(f, 0))
}

func TestApplyMappingAliases(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("标题文字"))

	err := e.Apply(f, Request{
		Profile:  profile.DefaultProfile(),
		Mappings: map[string]profile.StyleKey{"0": "title"},
	})
	require.NoError(t, err)

	props := f.Document.Body.Paragraphs[0].Properties
	assert.Equal(t, "center", props.Align.Val)
	assert.Equal(t, "方正小标宋简体", f.Document.Body.Paragraphs[0].Runs[0].Properties.Font.EastAsia)
}

func TestApplyUnmappedParagraphUsesClassifier(t *testing.T) {
	e := newTestEngine()

	// 22 磅加粗居中短段落，分类器应判为文档标题
	para := document.Paragraph{
		Properties: &document.ParagraphProps{
			Align: &document.ParagraphAlign{Val: "center"},
		},
		Runs: []document.Run{{
			Properties: &document.RunProps{
				Size: &document.FontSize{Val: "44"},
				Bold: &document.Bold{},
			},
			Text: &document.Text{Text: "关于印发管理办法的通知"},
		}},
	}
	f := testFile(para)

	err := e.Apply(f, Request{Profile: profile.DefaultProfile()})
	require.NoError(t, err)

	run := f.Document.Body.Paragraphs[0].Runs[0].Properties
	assert.Equal(t, "方正小标宋简体", run.Font.EastAsia)
	assert.Equal(t, "44", run.Size.Val, "title stays at 22pt")
}

func TestApplyLatinFontRule(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("GDP 增速目标"))

	err := e.Apply(f, Request{
		Profile:  profile.DefaultProfile(),
		Mappings: map[string]profile.StyleKey{"0": profile.KeyBody},
	})
	require.NoError(t, err)

	font := f.Document.Body.Paragraphs[0].Runs[0].Properties.Font
	assert.Equal(t, profile.DefaultLatinFont, font.ASCII)
	assert.Equal(t, profile.DefaultLatinFont, font.HAnsi)
	assert.Equal(t, "仿宋", font.EastAsia, "CJK face is untouched")
}

func TestApplyResetIndentsAndSpacing(t *testing.T) {
	e := newTestEngine()

	t.Run("clears indents and before-after spacing", func(t *testing.T) {
		para := textPara("缩进和段距都要归零的段落。")
		para.Properties = &document.ParagraphProps{
			Spacing: &document.ParagraphSpacing{Before: "400", After: "400"},
			Indent:  &document.ParagraphIndent{Left: "720", Hanging: "200"},
		}
		f := testFile(para)

		err := e.Apply(f, Request{
			Profile:  profile.DefaultProfile(),
			Mappings: map[string]profile.StyleKey{"0": profile.KeyBody},
		})
		require.NoError(t, err)

		props := f.Document.Body.Paragraphs[0].Properties
		assert.Empty(t, props.Spacing.Before)
		assert.Empty(t, props.Spacing.After)
		assert.Empty(t, props.Indent.Left)
		assert.Empty(t, props.Indent.Hanging)
		// 行距和首行缩进是方案刚设置的，保留
		assert.Equal(t, "560", props.Spacing.Line)
		assert.Equal(t, "200", props.Indent.FirstLineChars)
	})

	t.Run("spacing is reset even without an indent", func(t *testing.T) {
		para := textPara("只有段距没有缩进的标题")
		para.Properties = &document.ParagraphProps{
			Spacing: &document.ParagraphSpacing{Before: "300", After: "300"},
		}
		f := testFile(para)

		err := e.Apply(f, Request{
			Profile:  profile.DefaultProfile(),
			Mappings: map[string]profile.StyleKey{"0": profile.KeyDocumentTitle},
		})
		require.NoError(t, err)

		spacing := f.Document.Body.Paragraphs[0].Properties.Spacing
		assert.Empty(t, spacing.Before)
		assert.Empty(t, spacing.After)
	})
}

func TestApplyRemoveAutoNumbering(t *testing.T) {
	e := newTestEngine()

	para := textPara("自动编号段落")
	para.Properties = &document.ParagraphProps{
		NumPr: &document.NumPr{NumID: &document.NumID{Val: "3"}},
	}
	f := testFile(para)
	f.Styles = &document.Styles{
		Styles: []document.Style{{
			Type:    "paragraph",
			StyleID: "ListNumber",
			Name:    &document.StyleName{Val: "List Number"},
			Properties: &document.ParagraphProps{
				NumPr: &document.NumPr{NumID: &document.NumID{Val: "7"}},
			},
		}},
	}

	p := profile.DefaultProfile()
	p.SpecialRules.RemoveAutoNumbering = true

	err := e.Apply(f, Request{
		Profile:  p,
		Mappings: map[string]profile.StyleKey{"0": profile.KeyBody},
	})
	require.NoError(t, err)

	assert.Nil(t, f.Document.Body.Paragraphs[0].Properties.NumPr)
	assert.Nil(t, f.Styles.Styles[0].Properties.NumPr)
}

func TestApplyImageParagraph(t *testing.T) {
	e := newTestEngine()

	para := document.Paragraph{
		Properties: &document.ParagraphProps{
			Spacing: &document.ParagraphSpacing{Line: "560", LineRule: "exact"},
		},
		Runs: []document.Run{{Drawing: &document.Drawing{}}},
	}
	f := testFile(para)

	err := e.Apply(f, Request{Profile: profile.DefaultProfile()})
	require.NoError(t, err)

	props := f.Document.Body.Paragraphs[0].Properties
	assert.Equal(t, "center", props.Align.Val)
	assert.Equal(t, "240", props.Spacing.Line, "fixed spacing would crop the image")
	assert.Equal(t, "auto", props.Spacing.LineRule)
	assert.Nil(t, f.Document.Body.Paragraphs[0].Runs[0].Properties, "image run gets no text formatting")
}

func TestApplyPageMargins(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("正文"))

	err := e.Apply(f, Request{
		Profile:  profile.DefaultProfile(),
		Mappings: map[string]profile.StyleKey{"0": profile.KeyBody},
	})
	require.NoError(t, err)

	mar := f.Document.Body.SectPr.PageMar
	require.NotNil(t, mar)
	assert.Equal(t, "2098", mar.Top)    // 3.7cm
	assert.Equal(t, "1984", mar.Bottom) // 3.5cm
	assert.Equal(t, "1587", mar.Left)   // 2.8cm
	assert.Equal(t, "1474", mar.Right)  // 2.6cm
}

func TestApplyRejectsInvalidProfile(t *testing.T) {
	e := newTestEngine()
	f := testFile(textPara("正文"))

	p := profile.DefaultProfile()
	p.Styles.Body.FontSize = 0

	err := e.Apply(f, Request{Profile: p})
	assert.Error(t, err)
}
