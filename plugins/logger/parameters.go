package logger

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgLoggerLevel defines the logger's level.
	CfgLoggerLevel = "logger.level"
	// CfgLoggerDisableStacktrace defines whether stacktrace logging is disabled.
	CfgLoggerDisableStacktrace = "logger.disableStacktrace"
	// CfgLoggerEncoding defines the logger's encoding.
	CfgLoggerEncoding = "logger.encoding"
	// CfgLoggerOutputPaths defines the logger's output paths.
	CfgLoggerOutputPaths = "logger.outputPaths"
)

func init() {
	flag.String(CfgLoggerLevel, "info", "log level")
	flag.Bool(CfgLoggerDisableStacktrace, false, "disable stack trace logging")
	flag.String(CfgLoggerEncoding, "console", "log encoding (console or json)")
	flag.StringSlice(CfgLoggerOutputPaths, []string{"stdout"}, "a list of URLs or file paths to write logging output to")
}
