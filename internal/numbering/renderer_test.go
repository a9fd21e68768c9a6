package numbering

import (
	"testing"

	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

func cascadeStyles() *profile.StyleSet {
	return &profile.StyleSet{
		Heading1: profile.StyleConfig{
			Numbering: &profile.NumberingConfig{
				Enabled:     true,
				CounterType: profile.CounterChinese,
				Suffix:      "、",
			},
		},
		Heading2: profile.StyleConfig{
			Numbering: &profile.NumberingConfig{
				Enabled:     true,
				Cascade:     true,
				Separator:   ".",
				CounterType: profile.CounterArabic,
			},
		},
		Heading3: profile.StyleConfig{
			Numbering: &profile.NumberingConfig{
				Enabled:     true,
				Cascade:     true,
				Separator:   ".",
				CounterType: profile.CounterArabic,
			},
		},
	}
}

func TestRendererAdvance(t *testing.T) {
	t.Run("deeper counters reset on shallower heading", func(t *testing.T) {
		r := NewRenderer(cascadeStyles())

		got := []string{
			r.Advance(1), // 一、
			r.Advance(2), // 1.1
			r.Advance(2), // 1.2
			r.Advance(1), // 二、
			r.Advance(2), // 2.1
		}
		want := []string{"一、", "1.1", "1.2", "二、", "2.1"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("step %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("cascade seed is always arabic without affixes", func(t *testing.T) {
		// 一级显示为"一、"，但传给二级的种子必须是 "1"
		r := NewRenderer(cascadeStyles())
		r.Advance(1)
		if got := r.Advance(2); got != "1.1" {
			t.Errorf("Advance(2) = %q, want %q", got, "1.1")
		}
	})

	t.Run("orphaned sub level never renders zero", func(t *testing.T) {
		r := NewRenderer(cascadeStyles())
		if got := r.Advance(2); got != "1.1" {
			t.Errorf("Advance(2) without parent = %q, want %q", got, "1.1")
		}
	})

	t.Run("three level cascade", func(t *testing.T) {
		r := NewRenderer(cascadeStyles())
		r.Advance(1)
		r.Advance(2)
		if got := r.Advance(3); got != "1.1.1" {
			t.Errorf("Advance(3) = %q, want %q", got, "1.1.1")
		}
	})

	t.Run("disabled level renders empty but still counts", func(t *testing.T) {
		styles := cascadeStyles()
		styles.Heading1.Numbering.Enabled = false
		r := NewRenderer(styles)

		if got := r.Advance(1); got != "" {
			t.Errorf("disabled Advance(1) = %q, want empty", got)
		}
		// 一级虽然不显示编号，但计数照走，二级要看到它
		if got := r.Advance(2); got != "1.1" {
			t.Errorf("Advance(2) = %q, want %q", got, "1.1")
		}
		r.Advance(1)
		if got := r.Advance(2); got != "2.1" {
			t.Errorf("Advance(2) after second parent = %q, want %q", got, "2.1")
		}
	})

	t.Run("out of range level is ignored", func(t *testing.T) {
		r := NewRenderer(cascadeStyles())
		if got := r.Advance(0); got != "" {
			t.Errorf("Advance(0) = %q, want empty", got)
		}
		if got := r.Advance(5); got != "" {
			t.Errorf("Advance(5) = %q, want empty", got)
		}
	})
}

func TestRendererIndependence(t *testing.T) {
	a := NewRenderer(cascadeStyles())
	b := NewRenderer(cascadeStyles())

	a.Advance(1)
	a.Advance(1)

	if got := b.Advance(1); got != "一、" {
		t.Errorf("fresh renderer Advance(1) = %q, want %q", got, "一、")
	}
}

func TestPreview(t *testing.T) {
	styles := cascadeStyles()

	tests := []struct {
		key  profile.StyleKey
		want string
	}{
		{profile.KeyHeading1, "一、"},
		{profile.KeyHeading2, "1.1"},
		{profile.KeyHeading3, "1.1.1"},
		{profile.KeyHeading4, ""}, // 未配置编号
		{profile.KeyBody, ""},
	}

	for _, tt := range tests {
		if got := Preview(styles, tt.key); got != tt.want {
			t.Errorf("Preview(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
