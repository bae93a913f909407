package config

// SourceConfig 单个数据库源（主库或从库）的配置
type SourceConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// 独立连接池设置，未设置时回退到共享值，指针用于区分"未配置"
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 主库 + 从库列表（DSN 形式）
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"` // 主库
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`   // 从库列表，为空则不启用读写分离

	// 共享/默认连接池设置
	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
