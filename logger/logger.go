package logger

import (
	"io"
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	LOG_ROTATION_INTERVAL = 24 * time.Hour      // every day
	LOG_MAX_AGE           = 30 * 24 * time.Hour // every month
	LOG_FORMAT            = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{shortfile} %{message}"
	LOG_COLOR_FORMAT      = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"
)

var log = logging.MustGetLogger("logger")

func leveledBackend(w io.Writer, format string, level logging.Level) logging.LeveledBackend {
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(format),
		),
	)
	backend.SetLevel(level, "")
	return backend
}

// 日志输出到stderr，保持stdout只输出命令结果
func InitConsoleLog(levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return errors.Wrapf(err, "parse log level %q", levelString)
	}
	logging.SetBackend(leveledBackend(os.Stderr, LOG_COLOR_FORMAT, level))
	return nil
}

// 同时输出到stderr和按天切分的日志文件，filePath为指向当前日志文件的链接
func InitLog(filePath string, levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return errors.Wrapf(err, "parse log level %q", levelString)
	}

	dir := path.Dir(filePath)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		} else {
			log.Error(err.Error())
		}
	}

	ioWriter, err := rotatelogs.New(
		filePath+".%Y-%m-%d",
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithMaxAge(LOG_MAX_AGE),
		rotatelogs.WithRotationTime(LOG_ROTATION_INTERVAL),
	)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", filePath)
	}

	logging.SetBackend(
		leveledBackend(os.Stderr, LOG_COLOR_FORMAT, level),
		leveledBackend(ioWriter, LOG_FORMAT, level),
	)
	return nil
}
