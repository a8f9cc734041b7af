package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultBaseURL 是本地后端默认监听的地址
const DefaultBaseURL = "http://localhost:8001"

type Config struct {
	BaseURL string `toml:"base_url"`
}

func Default() *Config {
	return &Config{BaseURL: DefaultBaseURL}
}

// Load 从 TOML 文件读取配置，未填写的字段使用默认值。
// 命令行程序只使用 Default；Load 供自行构造 Runner 的调用方使用。
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	// 设置默认值
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &cfg, nil
}
