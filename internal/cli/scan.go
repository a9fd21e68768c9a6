package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
	"github.com/nerdneilsfield/go-docx-styler/internal/scanner"
	"github.com/nerdneilsfield/go-docx-styler/internal/styler"
)

var scanBaseFontSize float64

// NewScanCommand 创建 scan 命令
func NewScanCommand() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan <input.docx>",
		Short: "扫描文档结构，输出每个段落的角色建议",
		Long: `扫描文档结构：逐段提取文字、样式名、字号等信息，推断每个段落
是文档标题、几级小标题还是正文，并识别手动输入的编号前缀。

扫描不修改文档。用 --json 输出机器可读的完整报告，其中的
index 可直接用于 format 命令的 mappings 纠偏。`,
		Args: cobra.ExactArgs(1),
		RunE: runScanCommand,
	}

	scanCmd.Flags().Float64Var(&scanBaseFontSize, "base-font-size", 0, "正文基准字号（磅），覆盖配置文件取值")

	return scanCmd
}

func runScanCommand(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if scanBaseFontSize > 0 {
		cfg.BaseFontSizePt = scanBaseFontSize
	}

	result := styler.New(cfg, log).Scan(args[0])

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if !result.Success {
		return fmt.Errorf("扫描失败: %s", result.Error)
	}

	printScanTable(result.Structure)
	return nil
}

var roleLabels = map[profile.StyleKey]string{
	profile.KeyDocumentTitle: "文档标题",
	profile.KeyBody:          "正文",
	profile.KeyHeading1:      "一级标题",
	profile.KeyHeading2:      "二级标题",
	profile.KeyHeading3:      "三级标题",
	profile.KeyHeading4:      "四级标题",
}

func printScanTable(items []scanner.ScanItem) {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Printf("文档结构（%d 个段落）\n", len(items))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "建议角色", "原样式", "编号", "内容"})

	for _, item := range items {
		role := roleLabels[item.SuggestedKey]
		if role == "" {
			role = string(item.SuggestedKey)
		}
		manual := ""
		if item.ManualNumbering != nil {
			manual = item.ManualNumbering.Match
		}
		text := item.Text
		if runes := []rune(text); len(runes) > 30 {
			text = string(runes[:30]) + "…"
		}
		t.AppendRow(table.Row{item.Index, role, item.Style, manual, text})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}
