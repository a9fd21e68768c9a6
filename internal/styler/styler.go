package styler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-docx-styler/internal/config"
	"github.com/nerdneilsfield/go-docx-styler/internal/document"
	"github.com/nerdneilsfield/go-docx-styler/internal/engine"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
	"github.com/nerdneilsfield/go-docx-styler/internal/scanner"
)

// ScanResult 扫描结果，按 JSON 协议原样输出
type ScanResult struct {
	Success   bool               `json:"success"`
	Structure []scanner.ScanItem `json:"structure,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// FormatPayload 是一次排版任务的完整输入
type FormatPayload struct {
	Profile             *profile.StyleProfile       `json:"profile"`
	Mappings            map[string]profile.StyleKey `json:"mappings,omitempty"`
	TextReplacements    map[string]string           `json:"textReplacements,omitempty"`
	EnableAutoNumbering bool                        `json:"enableAutoNumbering"`
}

// FormatResult 排版结果
type FormatResult struct {
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Styler 排版协调器，串联文档读写、结构扫描与样式引擎
type Styler struct {
	cfg     *config.Config
	scanner *scanner.Scanner
	engine  *engine.Engine
	logger  *zap.Logger
}

// New 创建排版协调器
func New(cfg *config.Config, logger *zap.Logger) *Styler {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sc := scanner.NewScanner(scanner.Thresholds{
		BaseFontSizePt:  cfg.BaseFontSizePt,
		MinHeadingDelta: cfg.MinHeadingDelta,
		TitleMinDelta:   cfg.TitleMinDelta,
		MaxHeadingWidth: cfg.MaxHeadingWidth,
	}, logger)

	return &Styler{
		cfg:     cfg,
		scanner: sc,
		engine:  engine.NewEngine(sc.Classifier(), logger),
		logger:  logger,
	}
}

// Scan 读取文档并返回结构扫描报告。任何失败都折叠进结果对象，
// 调用方永远拿到一个可序列化的 ScanResult。
func (s *Styler) Scan(sourcePath string) (result ScanResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scan panicked",
				zap.String("file", sourcePath),
				zap.Any("panic", r))
			result = ScanResult{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	f, err := document.Open(sourcePath, s.logger)
	if err != nil {
		return ScanResult{Error: err.Error()}
	}

	items := s.scanner.Scan(f)
	return ScanResult{Success: true, Structure: items}
}

// Format 读取源文档，应用样式方案并写出到 destPath。校验全部通过
// 之前绝不落盘，失败时目标路径保持原状。
func (s *Styler) Format(sourcePath, destPath string, payload FormatPayload) (result FormatResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("format panicked",
				zap.String("file", sourcePath),
				zap.Any("panic", r))
			result = FormatResult{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	if payload.Profile == nil {
		return FormatResult{Error: "no style profile supplied"}
	}
	if err := payload.Profile.Validate(); err != nil {
		return FormatResult{Error: err.Error()}
	}
	if destPath == "" {
		return FormatResult{Error: "no output path supplied"}
	}

	f, err := document.Open(sourcePath, s.logger)
	if err != nil {
		return FormatResult{Error: err.Error()}
	}

	req := engine.Request{
		Profile:             payload.Profile,
		Mappings:            normalizeMappings(payload.Mappings),
		TextReplacements:    payload.TextReplacements,
		EnableAutoNumbering: payload.EnableAutoNumbering,
	}
	if err := s.engine.Apply(f, req); err != nil {
		return FormatResult{Error: err.Error()}
	}

	if err := f.SaveAs(destPath); err != nil {
		return FormatResult{Error: err.Error()}
	}

	s.logger.Info("document formatted",
		zap.String("source", sourcePath),
		zap.String("output", destPath),
		zap.String("profile", payload.Profile.Name))

	return FormatResult{Success: true, OutputPath: destPath}
}

// normalizeMappings 把 UI 别名（title/normal）折叠成规范键名
func normalizeMappings(in map[string]profile.StyleKey) map[string]profile.StyleKey {
	if len(in) == 0 {
		return in
	}
	out := make(map[string]profile.StyleKey, len(in))
	for idx, key := range in {
		out[idx] = profile.NormalizeKey(key)
	}
	return out
}
