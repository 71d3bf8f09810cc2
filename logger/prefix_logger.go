package logger

import (
	"fmt"

	"github.com/op/go-logging"
)

// 为每条日志加上固定前缀，如"[exec]"
type PrefixLogger struct {
	prefix string
	log    *logging.Logger
}

// 注意需要自行将ExtraCalldepth加2，以便拿到log文件名，行号等信息
func WrapWithPrefixLogger(prefix string, logger *logging.Logger) *PrefixLogger {
	return &PrefixLogger{prefix, logger}
}

func GetPrefixLogger(module, prefix string) (*PrefixLogger, error) {
	logger, err := logging.GetLogger(module)
	if err != nil {
		return nil, err
	}
	logger.ExtraCalldepth += 2
	return &PrefixLogger{prefix, logger}, nil
}

func (l *PrefixLogger) Prefix() string {
	return l.prefix
}

func (l *PrefixLogger) logf(level logging.Level, format string, args ...interface{}) {
	if !l.log.IsEnabledFor(level) {
		return
	}
	format = l.prefix + " " + format
	switch level {
	case logging.ERROR:
		l.log.Errorf(format, args...)
	case logging.WARNING:
		l.log.Warningf(format, args...)
	case logging.INFO:
		l.log.Infof(format, args...)
	default:
		l.log.Debugf(format, args...)
	}
}

func (l *PrefixLogger) Errorf(format string, args ...interface{}) {
	l.logf(logging.ERROR, format, args...)
}

func (l *PrefixLogger) Warningf(format string, args ...interface{}) {
	l.logf(logging.WARNING, format, args...)
}

func (l *PrefixLogger) Infof(format string, args ...interface{}) {
	l.logf(logging.INFO, format, args...)
}

func (l *PrefixLogger) Debugf(format string, args ...interface{}) {
	l.logf(logging.DEBUG, format, args...)
}

func (l *PrefixLogger) Warning(args ...interface{}) {
	l.logf(logging.WARNING, "%s", fmt.Sprint(args...))
}
