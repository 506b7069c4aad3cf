package errs

var (
	SystemError         = ErrorCode{Code: 518001, Msg: "系统错误"}
	InvalidInput        = ErrorCode{Code: 518002, Msg: "非法输入"}
	LinkNotFound        = ErrorCode{Code: 518003, Msg: "预约链接不存在"}
	LinkExpired         = ErrorCode{Code: 518004, Msg: "预约链接已过期"}
	LinkAlreadyUsed     = ErrorCode{Code: 518005, Msg: "预约链接已被使用"}
	BookingConflict     = ErrorCode{Code: 518006, Msg: "该时段已被他人预约"}
	OutOfRange          = ErrorCode{Code: 518007, Msg: "所选时间不在可预约范围内"}
	ConflictDetected    = ErrorCode{Code: 518008, Msg: "面试官在该时段已有安排"}
	UpstreamUnavailable = ErrorCode{Code: 518009, Msg: "暂时无法获取日历数据"}
	Forbidden           = ErrorCode{Code: 518010, Msg: "无权进行此操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
