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

// Package config centralizes the engine's tunable knobs, loaded from
// a TOML file with in-code defaults for anything the file omits.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevels maps the config file's textual log levels to go-logging's
// numeric levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

var (
	// LogLevel is the general log level, set from Settings.Log.LogLvl.
	LogLevel = LogLevels["info"]
	// SearchLogLevel is the search-subsystem log level.
	SearchLogLevel = LogLevels["info"]

	// Settings holds everything decoded from the config file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Engine engineConfiguration
}

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

type engineConfiguration struct {
	UseBook     bool
	BookPath    string
	TimeLimitMs int
	DepthLimit  int
	TTSizeMB    int
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"

	Settings.Engine.UseBook = true
	Settings.Engine.BookPath = "book/book.csv"
	Settings.Engine.TimeLimitMs = 0
	Settings.Engine.DepthLimit = 100
	Settings.Engine.TTSizeMB = 64
}

// Setup reads path (a TOML file) into Settings, applying its values
// over the compiled-in defaults, then derives the numeric log levels.
// A missing or malformed file is reported but leaves defaults intact —
// an unreadable config file is not a reason to refuse to run.
func Setup(path string) {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println("config: using defaults,", err)
	}
	if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
		SearchLogLevel = lvl
	}
	initialized = true
}
