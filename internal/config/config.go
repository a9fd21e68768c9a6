package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config 是整个工具的运行配置
type Config struct {
	Debug bool `mapstructure:"debug" yaml:"debug"`

	// 扫描启发式参数
	BaseFontSizePt  float64 `mapstructure:"base_font_size_pt" yaml:"base_font_size_pt"`
	MinHeadingDelta float64 `mapstructure:"min_heading_delta" yaml:"min_heading_delta"`
	TitleMinDelta   float64 `mapstructure:"title_min_delta" yaml:"title_min_delta"`
	MaxHeadingWidth int     `mapstructure:"max_heading_width" yaml:"max_heading_width"`

	// 样式方案存储文件
	ProfileStorePath string `mapstructure:"profile_store_path" yaml:"profile_store_path"`

	// 日志文件
	LogFilePath   string `mapstructure:"log_file_path" yaml:"log_file_path"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb" yaml:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups" yaml:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days" yaml:"log_max_age_days"`
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	dataDir := defaultDataDir()
	return &Config{
		Debug:            false,
		BaseFontSizePt:   16,
		MinHeadingDelta:  1,
		TitleMinDelta:    6,
		MaxHeadingWidth:  40,
		ProfileStorePath: filepath.Join(dataDir, "profiles.json"),
		LogFilePath:      filepath.Join(dataDir, "docstyler.log"),
		LogMaxSizeMB:     10,
		LogMaxBackups:    5,
		LogMaxAgeDays:    30,
	}
}

// LoadConfig 加载配置文件。configPath 为空时在当前目录和 HOME 下搜索
// .docstyler.yaml，找不到配置文件则返回默认配置。
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".docstyler")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DOCSTYLER")
	v.AutomaticEnv()

	cfg := NewDefaultConfig()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configPath == "" {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	if c.BaseFontSizePt <= 0 {
		return fmt.Errorf("base_font_size_pt must be positive, got %v", c.BaseFontSizePt)
	}
	if c.MinHeadingDelta < 0 {
		return fmt.Errorf("min_heading_delta must not be negative, got %v", c.MinHeadingDelta)
	}
	if c.TitleMinDelta < c.MinHeadingDelta {
		return fmt.Errorf("title_min_delta must not be below min_heading_delta")
	}
	if c.MaxHeadingWidth <= 0 {
		return fmt.Errorf("max_heading_width must be positive, got %d", c.MaxHeadingWidth)
	}
	if c.ProfileStorePath == "" {
		return fmt.Errorf("profile_store_path must not be empty")
	}
	return nil
}

// defaultDataDir 返回用户级数据目录，取不到 HOME 时退回当前目录
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docstyler"
	}
	return filepath.Join(home, ".docstyler")
}
