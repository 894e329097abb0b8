package proto

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	GODLIST_REPLY_STATUS  = '+'
	GODLIST_REPLY_ERROR   = '-'
	GODLIST_REPLY_INTEGER = ':'
	GODLIST_REPLY_STRING  = '$'
	GODLIST_REPLY_ARRAY   = '*'
)

// Reply is one response to a command. A STRING reply with nil Value is the
// nil bulk string.
type Reply struct {
	Type    byte
	Value   []byte
	Element []*Reply
}

func Status(s string) *Reply {
	return &Reply{Type: GODLIST_REPLY_STATUS, Value: []byte(s)}
}

func Error(format string, a ...interface{}) *Reply {
	return &Reply{Type: GODLIST_REPLY_ERROR, Value: []byte(fmt.Sprintf(format, a...))}
}

func Integer(i int) *Reply {
	return &Reply{Type: GODLIST_REPLY_INTEGER, Value: []byte(strconv.Itoa(i))}
}

func Bulk(s string) *Reply {
	return &Reply{Type: GODLIST_REPLY_STRING, Value: []byte(s)}
}

func Nil() *Reply {
	return &Reply{Type: GODLIST_REPLY_STRING}
}

func Array(elements ...*Reply) *Reply {
	return &Reply{Type: GODLIST_REPLY_ARRAY, Element: elements}
}

func BulkArray(values []string) *Reply {
	elements := make([]*Reply, len(values))
	for i, v := range values {
		elements[i] = Bulk(v)
	}
	return Array(elements...)
}

// Encode returns the wire form of r.
func (r *Reply) Encode() []byte {
	return r.appendTo(nil)
}

func (r *Reply) appendTo(buf []byte) []byte {
	switch r.Type {
	case GODLIST_REPLY_STRING:
		if r.Value == nil {
			return append(buf, "$-1\r\n"...)
		}
		return appendBulk(buf, r.Value)
	case GODLIST_REPLY_ARRAY:
		buf = append(buf, '*')
		buf = strconv.AppendInt(buf, int64(len(r.Element)), 10)
		buf = append(buf, CRLF...)
		for _, e := range r.Element {
			buf = e.appendTo(buf)
		}
		return buf
	default:
		buf = append(buf, r.Type)
		buf = append(buf, r.Value...)
		return append(buf, CRLF...)
	}
}

// Render formats r the way an interactive client shows it.
func (r *Reply) Render() string {
	var sb strings.Builder
	r.render(&sb, "")
	return sb.String()
}

func (r *Reply) render(sb *strings.Builder, indent string) {
	switch r.Type {
	case GODLIST_REPLY_STATUS:
		sb.Write(r.Value)
	case GODLIST_REPLY_ERROR:
		sb.WriteString("(error) ")
		sb.Write(r.Value)
	case GODLIST_REPLY_INTEGER:
		sb.WriteString("(integer) ")
		sb.Write(r.Value)
	case GODLIST_REPLY_STRING:
		if r.Value == nil {
			sb.WriteString("(nil)")
			return
		}
		sb.WriteString(strconv.Quote(string(r.Value)))
	case GODLIST_REPLY_ARRAY:
		if len(r.Element) == 0 {
			sb.WriteString("(empty array)")
			return
		}
		width := intLen(len(r.Element))
		for i, e := range r.Element {
			if i > 0 {
				sb.WriteString("\n")
				sb.WriteString(indent)
			}
			prefix := fmt.Sprintf("%*d) ", width, i+1)
			sb.WriteString(prefix)
			e.render(sb, indent+strings.Repeat(" ", len(prefix)))
		}
	}
}
