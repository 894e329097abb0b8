package proto

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var CRLF = "\r\n"

var UNBALANCED_QUOTES_ERR = errors.New("unbalanced quotes in request")

// a "b c" d -> [a, b c, d]
func SplitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inQuotes := false
	hasToken := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case unicode.IsSpace(r) && !inQuotes:
			if hasToken {
				args = append(args, cur.String())
				cur.Reset()
				hasToken = false
			}
		default:
			cur.WriteRune(r)
			hasToken = true
		}
	}
	if inQuotes {
		return nil, UNBALANCED_QUOTES_ERR
	}
	if hasToken {
		args = append(args, cur.String())
	}
	return args, nil
}

// set key val -> *3\r\n$3\r\nset\r\n ...
func FormatCommandArgs(line []byte) []byte {
	args := bytes.Fields(line)
	argLen := len(args)
	totlen := 1 + intLen(argLen) + 2
	for _, arg := range args {
		totlen += bulkLen(len(arg))
	}
	cmd := make([]byte, 0, totlen)
	cmd = append(cmd, '*')
	cmd = strconv.AppendInt(cmd, int64(argLen), 10)
	cmd = append(cmd, CRLF...)
	for _, arg := range args {
		cmd = appendBulk(cmd, arg)
	}
	return cmd
}

func appendBulk(buf []byte, arg []byte) []byte {
	buf = append(buf, '$')
	buf = strconv.AppendInt(buf, int64(len(arg)), 10)
	buf = append(buf, CRLF...)
	buf = append(buf, arg...)
	return append(buf, CRLF...)
}

func intLen(i int) int {
	intlen := 0
	for {
		intlen++
		i /= 10
		if i == 0 {
			break
		}
	}
	return intlen
}

func bulkLen(i int) int {
	return 1 + intLen(i) + 2 + i + 2 //$3/r/nSET/r/n
}
