package logging

import (
	"io"
	"log"
	"os"
)

// New 返回写入 stderr、带组件前缀的日志记录器
func New(component string) *log.Logger {
	return NewWithWriter(os.Stderr, component)
}

// NewWithWriter 同 New，但指定输出目标
func NewWithWriter(w io.Writer, component string) *log.Logger {
	prefix := component
	if prefix != "" {
		prefix = "[" + component + "] "
	}

	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds)
}

// Discard 返回丢弃所有输出的日志记录器
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
