package vo

// MediaUploadVO 媒体上传结果
// - media_ref 是业务表中存储的不透明对象键，url 仅供前端即时预览。
type MediaUploadVO struct {
	MediaRef string `json:"media_ref"` // 对象键，随评论/问答/留言提交时回传
	URL      string `json:"url"`       // 公开访问 URL
}
