package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-docx-styler/internal/numbering"
	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

// NewProfilesCommand 创建 profiles 命令组
func NewProfilesCommand() *cobra.Command {
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "管理样式方案",
		Long: `管理本地样式方案库。方案以 JSON 文件保存，可直接手工编辑，
也可通过 create/delete 子命令维护。内置公文方案不可修改和删除。`,
	}

	profilesCmd.AddCommand(newProfilesListCommand())
	profilesCmd.AddCommand(newProfilesShowCommand())
	profilesCmd.AddCommand(newProfilesCreateCommand())
	profilesCmd.AddCommand(newProfilesDeleteCommand())

	return profilesCmd
}

func openStore(storePath string, log *zap.Logger) (*profile.Store, error) {
	return profile.NewStore(storePath, log)
}

func newProfilesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出所有样式方案",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			store, err := openStore(cfg.ProfileStorePath, log)
			if err != nil {
				return err
			}

			profiles := store.List()
			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(profiles)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "名称", "说明", "内置"})
			for _, p := range profiles {
				builtin := ""
				if p.IsDefault {
					builtin = "✓"
				}
				t.AppendRow(table.Row{p.ID, p.Name, p.Description, builtin})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}
}

func newProfilesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <名称或ID>",
		Short: "查看一个方案的完整配置",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			store, err := openStore(cfg.ProfileStorePath, log)
			if err != nil {
				return err
			}

			p, err := store.Find(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(p)
			}

			pterm.DefaultSection.Printf("%s（%s）\n", p.Name, p.ID)
			if p.Description != "" {
				fmt.Println(p.Description)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"角色", "字体", "字号", "对齐", "编号示例"})
			for _, key := range profile.AllKeys {
				cfgStyle, _ := p.Styles.Get(key)
				t.AppendRow(table.Row{
					roleLabels[key],
					cfgStyle.FontFamily,
					cfgStyle.FontSize,
					string(cfgStyle.Alignment),
					numbering.Preview(&p.Styles, key),
				})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}
}

func newProfilesCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <profile.json>",
		Short: "从 JSON 文件创建新方案",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("无法读取方案文件: %w", err)
			}
			var p profile.StyleProfile
			if err := json.Unmarshal(data, &p); err != nil {
				return fmt.Errorf("方案文件格式错误: %w", err)
			}

			store, err := openStore(cfg.ProfileStorePath, log)
			if err != nil {
				return err
			}
			if err := store.Create(&p); err != nil {
				return err
			}

			pterm.Success.Printf("方案已创建: %s（%s）\n", p.Name, p.ID)
			return nil
		},
	}
}

func newProfilesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <名称或ID>",
		Short: "删除一个方案",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			store, err := openStore(cfg.ProfileStorePath, log)
			if err != nil {
				return err
			}

			p, err := store.Find(args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(p.ID); err != nil {
				return err
			}

			pterm.Success.Printf("方案已删除: %s\n", p.Name)
			return nil
		},
	}
}
