package profile

import (
	"fmt"
	"time"
)

// StyleKey identifies a semantic paragraph role. These are the canonical
// wire names; the UI-facing aliases title/normal are normalized by
// NormalizeKey before they reach the engine.
type StyleKey string

const (
	KeyDocumentTitle StyleKey = "documentTitle"
	KeyBody          StyleKey = "body"
	KeyHeading1      StyleKey = "heading1"
	KeyHeading2      StyleKey = "heading2"
	KeyHeading3      StyleKey = "heading3"
	KeyHeading4      StyleKey = "heading4"
)

// HeadingKeys lists the four heading levels, shallowest first.
var HeadingKeys = []StyleKey{KeyHeading1, KeyHeading2, KeyHeading3, KeyHeading4}

// AllKeys lists every style key a profile must define.
var AllKeys = []StyleKey{
	KeyDocumentTitle, KeyBody,
	KeyHeading1, KeyHeading2, KeyHeading3, KeyHeading4,
}

var keyAliases = map[StyleKey]StyleKey{
	"title":  KeyDocumentTitle,
	"normal": KeyBody,
}

// NormalizeKey maps UI aliases onto the canonical wire names. Unknown
// keys pass through unchanged so validation can report them.
func NormalizeKey(key StyleKey) StyleKey {
	if canonical, ok := keyAliases[key]; ok {
		return canonical
	}
	return key
}

// IsHeading reports whether key is one of heading1..4.
func (k StyleKey) IsHeading() bool {
	switch k {
	case KeyHeading1, KeyHeading2, KeyHeading3, KeyHeading4:
		return true
	}
	return false
}

// HeadingLevel returns 1..4 for heading keys and 0 otherwise.
func (k StyleKey) HeadingLevel() int {
	switch k {
	case KeyHeading1:
		return 1
	case KeyHeading2:
		return 2
	case KeyHeading3:
		return 3
	case KeyHeading4:
		return 4
	}
	return 0
}

// Alignment is a paragraph alignment value.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// CounterType selects the alphabet used to render a numbering counter.
// The values are the alphabet's own first symbol, matching the profile
// editor's drop-down.
type CounterType string

const (
	CounterArabic        CounterType = "1"
	CounterChinese       CounterType = "一"
	CounterChineseFormal CounterType = "壹"
	CounterCircled       CounterType = "①"
	CounterRomanUpper    CounterType = "I"
	CounterRomanLower    CounterType = "i"
	CounterLatinUpper    CounterType = "A"
	CounterLatinLower    CounterType = "a"
)

var knownCounterTypes = map[CounterType]bool{
	CounterArabic: true, CounterChinese: true, CounterChineseFormal: true,
	CounterCircled: true, CounterRomanUpper: true, CounterRomanLower: true,
	CounterLatinUpper: true, CounterLatinLower: true,
}

// NumberingConfig configures auto-numbering for one heading level.
type NumberingConfig struct {
	Enabled     bool        `json:"enabled"`
	Cascade     bool        `json:"cascade"`
	Separator   string      `json:"separator"`
	Prefix      string      `json:"prefix"`
	Suffix      string      `json:"suffix"`
	CounterType CounterType `json:"counterType"`
}

// StyleConfig is the formatting rule set for one style key.
type StyleConfig struct {
	FontFamily      string           `json:"fontFamily"`
	FontSize        float64          `json:"fontSize"`              // 磅
	LineSpacing     float64          `json:"lineSpacing,omitempty"` // <=3 倍数，否则磅
	Bold            bool             `json:"bold"`
	Alignment       Alignment        `json:"alignment"`
	SpaceBefore     float64          `json:"spaceBefore,omitempty"`     // 磅
	SpaceAfter      float64          `json:"spaceAfter,omitempty"`      // 磅
	FirstLineIndent float64          `json:"firstLineIndent,omitempty"` // 字符
	Numbering       *NumberingConfig `json:"numbering,omitempty"`
}

// SpecialRules are the global switches applied regardless of role.
type SpecialRules struct {
	AutoLatinFont       bool   `json:"autoTimesNewRoman"`
	LatinFont           string `json:"latinFont,omitempty"` // 默认 Times New Roman
	ResetIndentsSpacing bool   `json:"resetIndentsAndSpacing"`
	PictureLineSpacing  bool   `json:"pictureLineSpacing"`
	PictureCenterAlign  bool   `json:"pictureCenterAlign"`
	RemoveAutoNumbering bool   `json:"removeManualNumberPrefixes"`
}

// DefaultLatinFont is used when SpecialRules.LatinFont is empty.
const DefaultLatinFont = "Times New Roman"

// PageMargins are in centimetres.
type PageMargins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// StyleSet maps every style key to its configuration.
type StyleSet struct {
	DocumentTitle StyleConfig `json:"documentTitle"`
	Body          StyleConfig `json:"body"`
	Heading1      StyleConfig `json:"heading1"`
	Heading2      StyleConfig `json:"heading2"`
	Heading3      StyleConfig `json:"heading3"`
	Heading4      StyleConfig `json:"heading4"`
}

// Get returns the config for key. The second result is false for
// unknown keys.
func (s *StyleSet) Get(key StyleKey) (*StyleConfig, bool) {
	switch NormalizeKey(key) {
	case KeyDocumentTitle:
		return &s.DocumentTitle, true
	case KeyBody:
		return &s.Body, true
	case KeyHeading1:
		return &s.Heading1, true
	case KeyHeading2:
		return &s.Heading2, true
	case KeyHeading3:
		return &s.Heading3, true
	case KeyHeading4:
		return &s.Heading4, true
	}
	return nil, false
}

// StyleProfile is the complete declarative rule set for a document.
type StyleProfile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Styles       StyleSet     `json:"styles"`
	SpecialRules SpecialRules `json:"specialRules"`
	PageMargins  *PageMargins `json:"pageMargins,omitempty"`
	IsDefault    bool         `json:"isDefault"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Validate checks that the profile can be applied: every role present
// with a positive font size, known alignments and counter alphabets.
// Format refuses to touch the destination when this fails.
func (p *StyleProfile) Validate() error {
	if p == nil {
		return fmt.Errorf("profile is nil")
	}
	if p.ID == "" {
		return fmt.Errorf("profile id must not be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	for _, key := range AllKeys {
		cfg, _ := p.Styles.Get(key)
		if cfg.FontFamily == "" {
			return fmt.Errorf("style %s: font family must not be empty", key)
		}
		if cfg.FontSize <= 0 {
			return fmt.Errorf("style %s: font size must be positive, got %v", key, cfg.FontSize)
		}
		switch cfg.Alignment {
		case AlignLeft, AlignCenter, AlignRight, AlignJustify, "":
		default:
			return fmt.Errorf("style %s: unknown alignment %q", key, cfg.Alignment)
		}
		if cfg.FirstLineIndent < 0 {
			return fmt.Errorf("style %s: first line indent must not be negative", key)
		}
		if cfg.Numbering != nil {
			if !key.IsHeading() {
				return fmt.Errorf("style %s: numbering is only meaningful for headings", key)
			}
			if cfg.Numbering.CounterType != "" && !knownCounterTypes[cfg.Numbering.CounterType] {
				return fmt.Errorf("style %s: unknown counter type %q", key, cfg.Numbering.CounterType)
			}
		}
	}

	return nil
}
