package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
	"github.com/nerdneilsfield/go-docx-styler/internal/styler"
)

var (
	formatPayloadFile     string
	formatProfileName     string
	formatNoAutoNumbering bool
)

// NewFormatCommand 创建 format 命令
func NewFormatCommand() *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format <input.docx> <output.docx>",
		Short: "按样式方案排版文档",
		Long: `按样式方案排版文档：统一各角色段落的字体、字号、对齐、行距、
缩进与页边距，并为标题生成自动编号。

两种调用方式：
  docstyler format in.docx out.docx --profile 默认公文
      从本地方案库取方案，段落角色全部采用扫描建议。

  docstyler format in.docx out.docx --payload job.json
      从 JSON 文件读取完整任务（方案、角色纠偏 mappings、
      文本替换 textReplacements、编号开关），供外部程序驱动。

输出永远写到新文件，源文档不会被修改。`,
		Args: cobra.ExactArgs(2),
		RunE: runFormatCommand,
	}

	formatCmd.Flags().StringVar(&formatPayloadFile, "payload", "", "完整任务描述 JSON 文件")
	formatCmd.Flags().StringVarP(&formatProfileName, "profile", "p", "", "样式方案名称或 ID（默认用内置公文方案）")
	formatCmd.Flags().BoolVar(&formatNoAutoNumbering, "no-auto-numbering", false, "不生成标题自动编号")

	return formatCmd
}

func runFormatCommand(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	payload, err := buildFormatPayload(cfg.ProfileStorePath, log)
	if err != nil {
		return err
	}

	result := styler.New(cfg, log).Format(args[0], args[1], *payload)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if !result.Success {
		pterm.Error.Printf("排版失败: %s\n", result.Error)
		return fmt.Errorf("format failed")
	}

	pterm.Success.Printf("排版完成: %s\n", result.OutputPath)
	return nil
}

// buildFormatPayload 组装排版任务：payload 文件优先，否则从方案库取方案
func buildFormatPayload(storePath string, log *zap.Logger) (*styler.FormatPayload, error) {
	if formatPayloadFile != "" {
		data, err := os.ReadFile(formatPayloadFile)
		if err != nil {
			return nil, fmt.Errorf("无法读取任务文件: %w", err)
		}
		var payload styler.FormatPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("任务文件格式错误: %w", err)
		}
		if formatNoAutoNumbering {
			payload.EnableAutoNumbering = false
		}
		return &payload, nil
	}

	store, err := profile.NewStore(storePath, log)
	if err != nil {
		return nil, err
	}

	var p *profile.StyleProfile
	if formatProfileName == "" {
		p, err = store.Get(profile.DefaultProfileID)
	} else {
		p, err = store.Find(formatProfileName)
	}
	if err != nil {
		return nil, err
	}

	return &styler.FormatPayload{
		Profile:             p,
		EnableAutoNumbering: !formatNoAutoNumbering,
	}, nil
}
