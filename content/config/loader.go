package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Load 查找顺序：customPath -> ~/.circles/config.yaml -> ./configs/circles.yaml -> 内置默认值
// 文件中没有出现的字段保持默认值
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "circles.yaml")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// 文件存在但写错了要报出来，不能悄悄用默认值
		return loadFile(path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal 输出当前生效的配置
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".circles", "config.yaml")
}
