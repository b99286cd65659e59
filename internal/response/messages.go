package response

// User-facing messages. The site serves a Chinese-speaking audience, so
// these stay in Chinese; logs and code remain English.
const (
	MsgInvalidInput       = "输入数据无效"
	MsgInvalidBooking     = "预约数据无效"
	MsgInvalidCredentials = "用户名或密码不正确"
	MsgTokenRequired      = "未提供身份验证令牌"
	MsgTokenInvalid       = "身份验证失败或令牌已过期"
	MsgAdminNotFound      = "管理员不存在"
	MsgCourseNotFound     = "课程不存在"
	MsgCourseUnknown      = "所选课程不存在"
	MsgBookingNotFound    = "预约不存在"
	MsgBookingCreated     = "预约成功"
	MsgStatusUpdated      = "预约状态已更新"
	MsgInvalidStatus      = "请提供有效的预约状态"
	MsgKeywordRequired    = "请提供搜索关键词"
	MsgInvalidID          = "无效的ID"
	MsgRouteNotFound      = "未找到请求的资源"
	MsgTooManyRequests    = "请求过于频繁，请稍后再试"
	MsgInternal           = "服务器内部错误"
)
