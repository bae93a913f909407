package enums

// ItemType 表示商品目录中的商品分类。
// - 四种固定分类: 换弹设备、一次性设备、尼古丁盐、果汁。
type ItemType int

const (
	DevicePermanent  ItemType = iota // 0 - 换弹设备（可长期使用）
	DeviceDisposable                 // 1 - 一次性设备
	LiquidSalt                       // 2 - 尼古丁盐
	LiquidJuice                      // 3 - 果汁
)

// IsValid 校验枚举值是否在合法范围内。
func (t ItemType) IsValid() bool {
	return t >= DevicePermanent && t <= LiquidJuice
}

func (t ItemType) String() string {
	switch t {
	case DevicePermanent:
		return "devices_permanent"
	case DeviceDisposable:
		return "devices_disposable"
	case LiquidSalt:
		return "liquid_salt"
	case LiquidJuice:
		return "liquid_juice"
	default:
		return "unknown"
	}
}
