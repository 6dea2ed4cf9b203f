package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pktlens/pktlens/pkg/netutil"
)

// readData resolves a buffer argument:
//
//	@file  raw binary file contents
//	-      hex text from stdin
//	other  hex text, whitespace tolerated
func readData(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		return data, errors.Wrap(err, "os.ReadFile")
	}
	if arg == "-" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "io.ReadAll")
		}
		return netutil.ParseHexData(string(text))
	}
	return netutil.ParseHexData(arg)
}
