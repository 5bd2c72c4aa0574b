package errors

import "errors"

// ErrRecordNotFound 内存仓储中不存在指定记录
var ErrRecordNotFound = errors.New("记录不存在")
