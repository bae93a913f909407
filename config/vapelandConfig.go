package config

import "github.com/Xushengqwer/go-common/config"

type VapelandConfig struct {
	ZapConfig        config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig    config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig     config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig     config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig      MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig      RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig      KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig        COSConfig            `mapstructure:"mediaCosConfig" json:"mediaCosConfig" yaml:"mediaCosConfig"`
	ModerationConfig ModerationConfig     `mapstructure:"moderationConfig" json:"moderationConfig" yaml:"moderationConfig"`
	ScoringConfig    ScoringConfig        `mapstructure:"scoringConfig" json:"scoringConfig" yaml:"scoringConfig"`
	RateLimitConfig  RateLimitConfig      `mapstructure:"rateLimitConfig" json:"rateLimitConfig" yaml:"rateLimitConfig"`
}
