package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ashim-08/Nepali-Thali/lib/mycontext"
)

var base *logrus.Logger

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetLevel(logrus.DebugLevel)
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
	logger        *logrus.Logger
}

func newStandardLogger(componentName string) Logger {
	return standardLogger{
		componentName: componentName,
		logger:        base,
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fields := logrus.Fields{
		"component": l.componentName,
	}
	if traceLabel != "" {
		fields["aggregate"] = traceLabel
	}
	if trace := mycontext.TraceFromContext(ctx); trace != "" {
		fields["trace"] = trace
	}
	if session := mycontext.SessionFromContext(ctx); session != "" {
		fields["session"] = session
	}

	l.logger.WithFields(fields).Log(levelOf(severity), fmt.Sprintf(format, a...))
}

func levelOf(severity Severity) logrus.Level {
	switch severity {
	case SeverityDebug:
		return logrus.DebugLevel
	case SeverityWarn:
		return logrus.WarnLevel
	case SeverityError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
