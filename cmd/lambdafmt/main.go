// Copyright 2017 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// lambdafmt formats lambda-calculus source.
//
// Without explicit paths, it rewrites the standard input to standard
// output. Otherwise, the -l or -w or both flags must be given. Given a file
// path, it operates on that file; given a directory path, it operates on
// all .lc files in that directory, recursively. Files starting with a
// period are ignored.
//
// Formatting parses the mixed grammar and re-prints it at -width columns:
// it is a no-op on input that is already canonically laid out, and a
// minimal reflow otherwise. It never invokes the naming engine — holes,
// de Bruijn indices and source names are all preserved exactly as written.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/parse"
	"github.com/google/lambdacalc/lang/render"
	"github.com/google/lambdacalc/lang/strs"
)

var (
	lFlag     = flag.Bool("l", false, "list files whose formatting differs from lambdafmt's")
	wFlag     = flag.Bool("w", false, "write result to (source) file instead of stdout")
	widthFlag = flag.Int("width", 80, "column width for soft line breaks")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: lambdafmt [flags] [path ...]\n")
	flag.PrintDefaults()
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = usage
	flag.Parse()

	if *widthFlag < 1 {
		return errors.New("-width must be at least 1")
	}

	if flag.NArg() == 0 {
		if *lFlag {
			return errors.New("cannot use -l with standard input")
		}
		if *wFlag {
			return errors.New("cannot use -w with standard input")
		}
		return do(os.Stdin, "<standard input>")
	}

	if !*lFlag && !*wFlag {
		return errors.New("must use -l or -w if paths are given")
	}

	for i := 0; i < flag.NArg(); i++ {
		arg := flag.Arg(i)
		switch dir, err := os.Stat(arg); {
		case err != nil:
			return err
		case dir.IsDir():
			return filepath.Walk(arg, walk)
		default:
			if err := do(nil, arg); err != nil {
				return err
			}
		}
	}

	return nil
}

func isSourceFile(info os.FileInfo) bool {
	name := info.Name()
	return !info.IsDir() && !strings.HasPrefix(name, ".") && strings.HasSuffix(name, ".lc")
}

func walk(filename string, info os.FileInfo, err error) error {
	if err == nil && isSourceFile(info) {
		err = do(nil, filename)
	}
	// Don't complain if a file was deleted in the meantime (i.e. the
	// directory changed concurrently while running lambdafmt).
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func do(r io.Reader, filename string) error {
	src, err := []byte(nil), error(nil)
	if r != nil {
		src, err = ioutil.ReadAll(r)
	} else {
		src, err = ioutil.ReadFile(filename)
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}

	dst, err := format(src)
	if err != nil {
		return errors.Wrapf(err, "formatting %s", filename)
	}

	if r != nil {
		if _, err := os.Stdout.Write(dst); err != nil {
			return err
		}
	} else if !bytes.Equal(dst, src) {
		if *lFlag {
			fmt.Println(filename)
		}
		if *wFlag {
			if err := writeFile(filename, dst); err != nil {
				return err
			}
		}
	}

	return nil
}

// format parses src under the mixed grammar and re-prints it at -width
// columns, with a single trailing newline.
func format(src []byte) ([]byte, error) {
	intern := strs.New()
	a := arena.New()
	e, err := parse.ParseMixed(a, intern, bytes.TrimRight(src, "\n"))
	if err != nil {
		return nil, err
	}
	return []byte(render.Pretty(a, intern, e, *widthFlag) + "\n"), nil
}

const chmodSupported = runtime.GOOS != "windows"

func writeFile(filename string, b []byte) error {
	info, err := os.Stat(filename)
	if err != nil {
		return err
	}
	f, err := ioutil.TempFile(filepath.Dir(filename), filepath.Base(filename))
	if err != nil {
		return err
	}
	if chmodSupported {
		f.Chmod(info.Mode().Perm())
	}
	_, werr := f.Write(b)
	cerr := f.Close()
	if werr != nil {
		os.Remove(f.Name())
		return werr
	}
	if cerr != nil {
		os.Remove(f.Name())
		return cerr
	}
	return os.Rename(f.Name(), filename)
}
