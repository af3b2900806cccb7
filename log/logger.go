package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to SetLevel and SetModuleLevel.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	defaultLevel   = Notice
	moduleLevels   = map[string]Level{}
)

// Logger is the leveled logger handed out to the packages of this module.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger tagged with the given module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

func (l Level) backendLevel() logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	}
	return logging.NOTICE
}

// ParseLevel accepts the level names printed in log lines, in any case.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "notice":
		return Notice, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	}
	return Notice, fmt.Errorf("unknown log level %q", name)
}

// SetSink redirects all log output to sink. Levels are preserved.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(defaultLevel.backendLevel(), "")
	for module, level := range moduleLevels {
		leveledBackend.SetLevel(level.backendLevel(), module)
	}
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity of every module without its own level.
func SetLevel(level Level) {
	defaultLevel = level
	leveledBackend.SetLevel(level.backendLevel(), "")
}

// SetModuleLevel overrides the verbosity of a single module, such as
// "renderer" or "encoder".
func SetModuleLevel(level Level, module string) {
	moduleLevels[module] = level
	leveledBackend.SetLevel(level.backendLevel(), module)
}

// SetModuleLevels applies a comma separated list of module=level pairs.
func SetModuleLevels(list string) error {
	for _, pair := range strings.Split(list, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		module, name, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(module) == "" {
			return fmt.Errorf("expected module=level; got %q", pair)
		}
		level, err := ParseLevel(name)
		if err != nil {
			return err
		}
		SetModuleLevel(level, strings.TrimSpace(module))
	}
	return nil
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
