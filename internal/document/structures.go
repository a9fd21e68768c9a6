package document

import (
	"encoding/xml"
)

// DOCX XML namespaces
const (
	WordprocessingMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	RelationshipsNamespace    = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// WordDocument represents the word/document.xml structure
type WordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    Body     `xml:"body"`
}

// Body represents the document body
type Body struct {
	Paragraphs []Paragraph `xml:"p"`
	Tables     []Table     `xml:"tbl"`
	SectPr     *SectPr     `xml:"sectPr"`
}

// Paragraph represents a w:p element
type Paragraph struct {
	XMLName    xml.Name        `xml:"p"`
	Properties *ParagraphProps `xml:"pPr"`
	Runs       []Run           `xml:"r"`
}

// ParagraphProps represents w:pPr
type ParagraphProps struct {
	Style    *ParagraphStyle   `xml:"pStyle"`
	NumPr    *NumPr            `xml:"numPr"`
	Spacing  *ParagraphSpacing `xml:"spacing"`
	Indent   *ParagraphIndent  `xml:"ind"`
	Align    *ParagraphAlign   `xml:"jc"`
	RunProps *RunProps         `xml:"rPr"`
}

// ParagraphStyle represents w:pStyle
type ParagraphStyle struct {
	Val string `xml:"val,attr"`
}

// NumPr represents w:numPr, the binding of a paragraph to an
// automatic numbering definition. Distinct from manually typed
// numbering prefixes, which are plain text.
type NumPr struct {
	Ilvl  *NumLevel `xml:"ilvl"`
	NumID *NumID    `xml:"numId"`
}

// NumLevel represents w:ilvl
type NumLevel struct {
	Val string `xml:"val,attr"`
}

// NumID represents w:numId
type NumID struct {
	Val string `xml:"val,attr"`
}

// ParagraphSpacing represents w:spacing. Line and the before/after
// values are in twentieths of a point.
type ParagraphSpacing struct {
	After    string `xml:"after,attr,omitempty"`
	Before   string `xml:"before,attr,omitempty"`
	Line     string `xml:"line,attr,omitempty"`
	LineRule string `xml:"lineRule,attr,omitempty"`
}

// ParagraphIndent represents w:ind. FirstLineChars is in hundredths
// of a character width, the native East Asian indent unit.
type ParagraphIndent struct {
	Left           string `xml:"left,attr,omitempty"`
	Right          string `xml:"right,attr,omitempty"`
	FirstLine      string `xml:"firstLine,attr,omitempty"`
	FirstLineChars string `xml:"firstLineChars,attr,omitempty"`
	Hanging        string `xml:"hanging,attr,omitempty"`
}

// ParagraphAlign represents w:jc
type ParagraphAlign struct {
	Val string `xml:"val,attr"`
}

// Run represents a w:r element
type Run struct {
	XMLName    xml.Name  `xml:"r"`
	Properties *RunProps `xml:"rPr"`
	Text       *Text     `xml:"t"`
	Tab        *Tab      `xml:"tab"`
	Break      *Break    `xml:"br"`
	Drawing    *Drawing  `xml:"drawing"`
	Pict       *Pict     `xml:"pict"`
}

// RunProps represents w:rPr
type RunProps struct {
	Font      *RunFont   `xml:"rFonts"`
	Bold      *Bold      `xml:"b"`
	BoldCs    *Bold      `xml:"bCs"`
	Italic    *Italic    `xml:"i"`
	Underline *Underline `xml:"u"`
	Color     *Color     `xml:"color"`
	Size      *FontSize  `xml:"sz"`
	SizeCs    *FontSize  `xml:"szCs"`
}

// Text represents w:t text content
type Text struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"http://www.w3.org/XML/1998/namespace space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

// Tab represents w:tab
type Tab struct {
	XMLName xml.Name `xml:"tab"`
}

// Break represents w:br
type Break struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr,omitempty"`
}

// Bold represents w:b. An absent Val means "on"; "0"/"false" means off.
type Bold struct {
	Val string `xml:"val,attr,omitempty"`
}

// Italic represents w:i
type Italic struct {
	Val string `xml:"val,attr,omitempty"`
}

// Underline represents w:u
type Underline struct {
	Val string `xml:"val,attr,omitempty"`
}

// Color represents w:color
type Color struct {
	Val string `xml:"val,attr"`
}

// FontSize represents w:sz. Val is in half-points: 32 means 16pt (三号).
type FontSize struct {
	Val string `xml:"val,attr"`
}

// RunFont represents w:rFonts
type RunFont struct {
	ASCII    string `xml:"ascii,attr,omitempty"`
	HAnsi    string `xml:"hAnsi,attr,omitempty"`
	EastAsia string `xml:"eastAsia,attr,omitempty"`
	CS       string `xml:"cs,attr,omitempty"`
}

// Drawing represents a DrawingML image anchor. The inner structure is
// preserved opaquely; its presence is all the engine needs.
type Drawing struct {
	XMLName  xml.Name `xml:"drawing"`
	InnerXML string   `xml:",innerxml"`
}

// Pict represents a legacy VML picture element
type Pict struct {
	XMLName  xml.Name `xml:"pict"`
	InnerXML string   `xml:",innerxml"`
}

// SectPr represents w:sectPr with the parts relevant to page setup
type SectPr struct {
	XMLName  xml.Name  `xml:"sectPr"`
	PageSize *PageSize `xml:"pgSz"`
	PageMar  *PageMar  `xml:"pgMar"`
}

// PageSize represents w:pgSz
type PageSize struct {
	W string `xml:"w,attr,omitempty"`
	H string `xml:"h,attr,omitempty"`
}

// PageMar represents w:pgMar, values in twips
type PageMar struct {
	Top    string `xml:"top,attr,omitempty"`
	Right  string `xml:"right,attr,omitempty"`
	Bottom string `xml:"bottom,attr,omitempty"`
	Left   string `xml:"left,attr,omitempty"`
	Header string `xml:"header,attr,omitempty"`
	Footer string `xml:"footer,attr,omitempty"`
	Gutter string `xml:"gutter,attr,omitempty"`
}

// Table represents a w:tbl element. Tables are carried through the
// round trip untouched by the formatter.
type Table struct {
	XMLName xml.Name   `xml:"tbl"`
	Rows    []TableRow `xml:"tr"`
}

// TableRow represents w:tr
type TableRow struct {
	XMLName xml.Name    `xml:"tr"`
	Cells   []TableCell `xml:"tc"`
}

// TableCell represents w:tc
type TableCell struct {
	XMLName    xml.Name    `xml:"tc"`
	Paragraphs []Paragraph `xml:"p"`
}

// Styles represents word/styles.xml, limited to what the engine needs:
// style identity for pStyle rebinding and style-level numbering cleanup.
type Styles struct {
	XMLName xml.Name `xml:"styles"`
	Styles  []Style  `xml:"style"`
}

// Style represents a single w:style definition
type Style struct {
	XMLName    xml.Name        `xml:"style"`
	Type       string          `xml:"type,attr"`
	StyleID    string          `xml:"styleId,attr"`
	Name       *StyleName      `xml:"name"`
	Properties *ParagraphProps `xml:"pPr"`
}

// StyleName represents w:name inside a style definition
type StyleName struct {
	Val string `xml:"val,attr"`
}
