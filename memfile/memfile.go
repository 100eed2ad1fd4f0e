// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package memfile reads and writes Verilog-style memory files, the .mem
// and .hex formats consumed by $readmemh and $readmemb.
//
// Lines may carry // comments and @addr markers; both are skipped on read.
//
package memfile

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/hwflow/hwflow/logic"
)

// ReadHex reads a $readmemh style file into width-bit words.
//
func ReadHex(path string, width uint) ([]logic.Bits, error) {
	return read(path, width, logic.ParseHex)
}

// ReadBin reads a $readmemb style file into width-bit words.
//
func ReadBin(path string, width uint) ([]logic.Bits, error) {
	return read(path, width, logic.ParseBin)
}

func read(path string, width uint, parse func(uint, string) (logic.Bits, error)) ([]logic.Bits, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open mem file")
	}
	defer f.Close()

	var data []logic.Bits
	sc := bufio.NewScanner(f)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := sc.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, word := range strings.Fields(line) {
			if strings.HasPrefix(word, "@") {
				// address marker, data stays sequential
				continue
			}
			b, err := parse(width, word)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d", path, lineNum)
			}
			data = append(data, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// WriteHex writes data in $readmemh format, wordsPerLine words per line.
//
func WriteHex(path string, data []logic.Bits, wordsPerLine int) error {
	return write(path, data, wordsPerLine, logic.Bits.Hex)
}

// WriteBin writes data in $readmemb format, wordsPerLine words per line.
//
func WriteBin(path string, data []logic.Bits, wordsPerLine int) error {
	return write(path, data, wordsPerLine, logic.Bits.Bin)
}

func write(path string, data []logic.Bits, wordsPerLine int, render func(logic.Bits) string) error {
	if len(data) == 0 {
		return errors.New("no data to write")
	}
	if wordsPerLine < 1 {
		wordsPerLine = 1
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create mem file")
	}
	w := bufio.NewWriter(f)
	for i, b := range data {
		if _, err := w.WriteString(render(b)); err != nil {
			f.Close()
			return errors.Wrapf(err, "write %s", path)
		}
		sep := " "
		if (i+1)%wordsPerLine == 0 || i == len(data)-1 {
			sep = "\n"
		}
		if _, err := w.WriteString(sep); err != nil {
			f.Close()
			return errors.Wrapf(err, "write %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "flush %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
