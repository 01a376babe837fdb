/*
 * Copyright 2026 The teamnl Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel is the environment variable consulted by NewFromEnv for the
// minimum log level. It accepts zerolog level names as well as the
// syslog-style names "err", "info" and "debug" and numeric priorities.
const EnvLevel = "TEAM_LOG"

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// New creates a logger from the given configuration. The zero Config yields
// a stderr logger at error level, which is the library default.
func New(config Config) (Logger, error) {
	var output io.Writer = os.Stderr

	if config.Output == "stdout" {
		output = os.Stdout
	}

	level := zerolog.ErrorLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	zl := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &logger{zl: zl}, nil
}

// NewFromEnv creates a logger honoring the EnvLevel environment variable.
// An unset or unparsable value falls back to the config level.
func NewFromEnv(config Config) (Logger, error) {
	if env := os.Getenv(EnvLevel); env != "" {
		if level, err := ParseLevel(env); err == nil {
			config.Level = level.String()
			config.Debug = false
		}
	}

	return New(config)
}

// ParseLevel resolves a level name to a zerolog level. Besides zerolog's
// own names it accepts "err" and "warning" plus syslog numeric priorities,
// matching what existing tooling passes in TEAM_LOG.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "err":
		return zerolog.ErrorLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return levelFromPriority(n), nil
	}

	return zerolog.ParseLevel(s)
}

// levelFromPriority maps a syslog priority number to the nearest zerolog level.
func levelFromPriority(prio int) zerolog.Level {
	switch {
	case prio >= 7:
		return zerolog.DebugLevel
	case prio >= 6:
		return zerolog.InfoLevel
	case prio >= 4:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

type logger struct {
	zl zerolog.Logger
}

func (l *logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
func (l *logger) Panic() *zerolog.Event { return l.zl.Panic() }
func (l *logger) With() zerolog.Context { return l.zl.With() }

func (l *logger) WithComponent(component string) zerolog.Logger {
	return l.zl.With().Str("component", component).Logger()
}

func (l *logger) WithFields(fields map[string]interface{}) zerolog.Logger {
	ctx := l.zl.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}

	return ctx.Logger()
}

func (l *logger) SetLevel(level zerolog.Level) {
	l.zl = l.zl.Level(level)
}

func (l *logger) SetDebug(debug bool) {
	if debug {
		l.SetLevel(zerolog.DebugLevel)
	} else {
		l.SetLevel(zerolog.InfoLevel)
	}
}
