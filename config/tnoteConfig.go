package config

// TNoteConfig 是 t-note 论坛服务的聚合配置。
// - 各子配置按关注点拆分文件，mapstructure 标签供 viper 解析使用。
type TNoteConfig struct {
	ZapConfig       ZapConfig       `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig   GormLogConfig   `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig    ServerConfig    `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig    TracerConfig    `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig     MySQLConfig     `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig     RedisConfig     `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig     KafkaConfig     `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	HotTopicsConfig HotTopicsConfig `mapstructure:"hotTopicsConfig" json:"hotTopicsConfig" yaml:"hotTopicsConfig"`
}
