package platform

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadPlatformOptions 从 YAML 配置文件加载平台选项
func LoadPlatformOptions(path string) (*PlatformOptions, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "read platform options failed")
	}

	options := &PlatformOptions{}
	if err := yaml.Unmarshal(buf, options); err != nil {
		return nil, errors.WithMessage(err, "unmarshal platform options failed")
	}

	return options, nil
}

// NewPlatformWithConfigFile 从 YAML 配置文件创建平台
func NewPlatformWithConfigFile(path string) (*Platform, error) {
	options, err := LoadPlatformOptions(path)
	if err != nil {
		return nil, err
	}
	return NewPlatformWithOptions(options)
}
