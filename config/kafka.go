package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	TopicChanged string `mapstructure:"topicChanged" yaml:"topicChanged"` // 话题变更主题，供搜索服务同步
	PostChanged  string `mapstructure:"postChanged" yaml:"postChanged"`   // 回帖变更主题，供搜索服务同步
}
