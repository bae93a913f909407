package config

// RedisConfig Redis 连接配置
// - 本服务用 Redis 承载会话流程状态（带 TTL）和高分问答榜缓存。
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 可为空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 使用客户端默认值
}
