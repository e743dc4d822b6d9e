//
// zorro - an Othello/Reversi engine core in GO
//
// MIT License
//
// Copyright (c) 2021 zorro contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file or set by command
// line options. Settings mirrors the external configuration surface named
// in spec.md §6 plus the ambient search/eval/log tuning knobs.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mkopp/zorro/internal/util"
)

// Globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working
	// directory). Must be set before Setup() is called.
	ConfFile = "./config.toml"

	// LogLevel is the general log level, overwritable by command line
	// options or the config file.
	LogLevel = 4

	// SearchLogLevel is the search-specific log level.
	SearchLogLevel = 4

	// Settings is the global configuration, read in from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
	Play   playConfiguration
}

// Setup reads the configuration file and applies defaults for anything the
// file does not set.
func Setup() {
	if initialized {
		return
	}

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file could not be decoded. Using defaults. (", err, ")")
	}

	setupLogLvl()
	setupSearch()
	setupEval()
	setupPlay()
	initialized = true
}

// String prints the current configuration settings and values using
// reflection, mirroring the teacher's config dump helper.
func (settings *conf) String() string {
	var sb strings.Builder
	dump := func(title string, v interface{}) {
		sb.WriteString(title + ":\n")
		s := reflect.ValueOf(v).Elem()
		typeOfT := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			sb.WriteString(fmt.Sprintf("%-2d: %-22s %-10s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
		}
		sb.WriteString("\n")
	}
	dump("Search Config", &settings.Search)
	dump("Evaluation Config", &settings.Eval)
	dump("Play Config", &settings.Play)
	return sb.String()
}

// LogLevels maps string representations of log levels to numerical values.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
