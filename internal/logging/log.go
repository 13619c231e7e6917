/*
 * chesscore - a Go chess engine
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a thin wrapper around github.com/op/go-logging
// that keeps every call site down to one line. Grounded on the
// teacher's logging/log.go: one *logging.Logger per subsystem, a
// shared timestamp/level/message format, level taken from
// internal/config.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/dkovac/chesscore/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

func backend(level int) logging.LeveledBackend {
	raw := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(raw, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the standard, general-purpose logger.
func GetLog() *logging.Logger {
	standardLog.SetBackend(backend(config.LogLevel))
	return standardLog
}

// GetSearchLog returns the logger used by internal/search for
// iterative-deepening and node-count tracing.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(config.SearchLogLevel))
	return searchLog
}

// GetTestLog returns a logger tests can use without wiring config.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(backend(config.LogLevels["debug"]))
	return testLog
}
