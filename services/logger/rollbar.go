package logsvc

import (
	"fmt"
	"log"
	"sync"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/nkminh14/uniconsole/core"
)

// Level orders the log methods; messages below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

func (lvl Level) String() string {
	return levelNames[lvl]
}

// RollbarLogger prints to std and reports to Rollbar when enabled.
type RollbarLogger struct {
	std   *log.Logger
	level Level
	mu    sync.Mutex // rollbar's person is global
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)

	l := &RollbarLogger{std: std, level: LevelInfo}
	if conf.Debug {
		l.level = LevelDebug
	}
	// nothing to report to without a token
	l.Enable(!conf.Debug && conf.RollbarToken != "")
	return l
}

func (l *RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, core.Person
func (l *RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var personSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		if p, ok := arg.(core.Person); ok {
			if !personSet { // only set one Person
				rollbar.SetPerson(p.ID, p.Username, p.Email)
				personSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !personSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func (l *RollbarLogger) print(lvl Level, msg string, args []interface{}) {
	l.std.Printf("[%s] %s", lvl, msg)
	for _, arg := range args {
		switch a := arg.(type) {
		case core.Person:
			l.std.Printf("  by %s", a.Username)
		case error:
			l.std.Printf("  %+v", a)
		default:
			l.std.Println("  " + fmt.Sprint(a))
		}
	}
}

func (l *RollbarLogger) log(lvl Level, report func(...interface{}), msg string, args []interface{}) {
	if lvl < l.level {
		return
	}
	l.mu.Lock()
	report(l.prepare(msg, args)...)
	l.mu.Unlock()
	l.print(lvl, msg, args)
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, rollbar.Debug, msg, args)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, rollbar.Info, msg, args)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, rollbar.Warning, msg, args)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, rollbar.Error, msg, args)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.log(LevelFatal, rollbar.Critical, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}
