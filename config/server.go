package config

// ServerConfig HTTP 服务相关配置
type ServerConfig struct {
	Port string `mapstructure:"port" json:"port" yaml:"port"` // 监听端口，例如 "8083"

	// RequestTimeout 单个请求的处理超时（秒）。
	// 超时中间件会在超过该时间后向客户端返回 504 并取消请求上下文。
	RequestTimeout int `mapstructure:"requestTimeout" json:"requestTimeout" yaml:"requestTimeout"`
}

// ZapConfig 日志相关配置
type ZapConfig struct {
	Level    string `mapstructure:"level" json:"level" yaml:"level"`          // debug/info/warn/error
	Encoding string `mapstructure:"encoding" json:"encoding" yaml:"encoding"` // json 或 console
}

// GormLogConfig GORM 日志相关配置
type GormLogConfig struct {
	Level           string `mapstructure:"level" json:"level" yaml:"level"`                               // silent/error/warn/info
	SlowThresholdMs int    `mapstructure:"slowThresholdMs" json:"slowThresholdMs" yaml:"slowThresholdMs"` // 慢查询阈值（毫秒）
}

// TracerConfig 分布式追踪相关配置
type TracerConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`

	// ExporterEndpoint OTLP gRPC 接收端地址，例如 "localhost:4317"。
	ExporterEndpoint string `mapstructure:"exporterEndpoint" json:"exporterEndpoint" yaml:"exporterEndpoint"`

	// SamplerRatio 采样率，0~1。1 表示全量采样。
	SamplerRatio float64 `mapstructure:"samplerRatio" json:"samplerRatio" yaml:"samplerRatio"`
}
