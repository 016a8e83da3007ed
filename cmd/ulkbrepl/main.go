// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Binary ulkbrepl is an interactive shell for building a theory.Theory one
// directive at a time, mirroring the teacher's interpreter/mg/mg.go: a
// flag-configured REPL over a persistent piece of state, plus a -load flag
// for batch-loading a script non-interactively.
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	log "github.com/golang/glog"

	"github.com/ulkb/ulkb/lint"
	"github.com/ulkb/ulkb/prelude"
	"github.com/ulkb/ulkb/serializer"
	"github.com/ulkb/ulkb/theoryscript"
)

var (
	load = flag.String("load", "", "theory script to load before entering the REPL")
	exec = flag.String("exec", "", "if non-empty, loads this script and exits instead of entering the REPL")
)

func main() {
	flag.Parse()

	th, err := prelude.NewTheory()
	if err != nil {
		log.Exitf("error bootstrapping prelude: %v", err)
	}

	if *load != "" {
		f, err := os.Open(*load)
		if err != nil {
			log.Exitf("error opening %s: %v", *load, err)
		}
		err = theoryscript.Load(th, f)
		f.Close()
		if err != nil {
			log.Exitf("error loading %s: %v", *load, err)
		}
	}

	if *exec != "" {
		f, err := os.Open(*exec)
		if err != nil {
			log.Exitf("error opening %s: %v", *exec, err)
		}
		defer f.Close()
		if err := theoryscript.Load(th, f); err != nil {
			log.Exitf("error loading %s: %v", *exec, err)
		}
		os.Exit(0)
	}

	rl, err := readline.New("ulkb> ")
	if err != nil {
		log.Exit(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on ^D, readline.ErrInterrupt on ^C
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":len":
			os.Stdout.WriteString(strconv.Itoa(th.Len()) + "\n")
		case line == ":show":
			os.Stdout.WriteString(th.ShowExtensions())
		case line == ":lint":
			findings, _ := lint.Check(th)
			for _, f := range findings {
				os.Stdout.WriteString(f.String() + "\n")
			}
		case line == ":digest":
			os.Stdout.WriteString(th.Digest() + "\n")
		case strings.HasPrefix(line, ":print "):
			name := strings.TrimSpace(strings.TrimPrefix(line, ":print "))
			thm, err := th.LookupTheorem(name)
			if err != nil {
				log.Errorf("ulkbrepl: %v", err)
				continue
			}
			os.Stdout.WriteString(serializer.PrintSequent(thm.Seq, serializer.Settings{Unicode: true}) + "\n")
		case strings.HasPrefix(line, ":load "):
			path := strings.TrimSpace(strings.TrimPrefix(line, ":load "))
			f, err := os.Open(path)
			if err != nil {
				log.Errorf("ulkbrepl: %v", err)
				continue
			}
			err = theoryscript.Load(th, f)
			f.Close()
			if err != nil {
				log.Errorf("ulkbrepl: %v", err)
			}
		default:
			if err := theoryscript.Load(th, strings.NewReader(line)); err != nil {
				log.Errorf("ulkbrepl: %v", err)
			}
		}
	}
}
