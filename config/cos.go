package config

// COSConfig 腾讯云 COS 配置，媒体协作方的底层存储。
// - 本服务只存储上传后得到的不透明对象键（media_ref），不解释其内容。
type COSConfig struct {
	SecretID   string `mapstructure:"secretId" json:"secretId" yaml:"secretId"`
	SecretKey  string `mapstructure:"secretKey" json:"secretKey" yaml:"secretKey"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	AppID      string `mapstructure:"appId" json:"appId" yaml:"appId"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 可选，配置 CDN 或自定义域名时用作公开访问 URL 的基础部分
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`
}
