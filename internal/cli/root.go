package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-docx-styler/internal/config"
	"github.com/nerdneilsfield/go-docx-styler/internal/logger"
)

var (
	// 全局标志变量
	cfgFile    string
	debugMode  bool
	jsonOutput bool
)

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docstyler",
		Short: "公文排版工具：扫描 Word 文档结构并一键套用样式方案",
		Long: `公文排版工具读取 .docx 文档，识别文档标题与各级小标题，
按照样式方案统一字体、字号、行距、缩进与页边距，并可为标题
自动生成"一、/（一）/1./①"式编号。

典型工作流：
  docstyler scan input.docx                 # 查看识别出的文档结构
  docstyler format input.docx output.docx   # 按默认方案排版
  docstyler profiles list                   # 查看可用的样式方案`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认搜索 ./.docstyler.yaml 和 ~/.docstyler.yaml）")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "启用调试日志")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "以 JSON 输出结果（供外部程序调用）")

	rootCmd.AddCommand(NewScanCommand())
	rootCmd.AddCommand(NewFormatCommand())
	rootCmd.AddCommand(NewProfilesCommand())

	return rootCmd
}

// setup 加载配置并初始化日志，所有子命令共用
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if debugMode {
		cfg.Debug = true
	}

	log := logger.NewLogger(cfg.Debug, logger.FileOptions{
		Path:       cfg.LogFilePath,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	return cfg, log, nil
}
