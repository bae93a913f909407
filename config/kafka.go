package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	ContentPendingModeration  string `mapstructure:"contentPendingModeration" yaml:"contentPendingModeration"`   //  内容提交审核主题
	ContentModerationApproved string `mapstructure:"contentModerationApproved" yaml:"contentModerationApproved"` //  审核通过主题
	ContentModerationRejected string `mapstructure:"contentModerationRejected" yaml:"contentModerationRejected"` //  审核拒绝主题
}
