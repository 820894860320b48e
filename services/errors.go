package services

import (
	"errors"
	"fmt"
)

// ConfigurationError 必需的密钥未配置，在任何网络调用之前返回
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s is not set", e.Message, e.Setting)
}

// UpstreamError 生成模型调用失败或返回内容无法解析
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsConfigurationError 判断错误链中是否包含ConfigurationError
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsUpstreamError 判断错误链中是否包含UpstreamError
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
