package config

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"` // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"`
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`

	PoolSize     int `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
	MinIdleConns int `mapstructure:"minIdleConns" json:"minIdleConns" yaml:"minIdleConns"`
}

// HotTopicsConfig 热门话题缓存相关配置
type HotTopicsConfig struct {
	// CronSpec 刷新热榜快照的 cron 表达式，例如 "@every 5m"。
	CronSpec string `mapstructure:"cronSpec" json:"cronSpec" yaml:"cronSpec"`

	// CacheSize 热榜保留的话题数量。
	CacheSize int64 `mapstructure:"cacheSize" json:"cacheSize" yaml:"cacheSize"`
}
