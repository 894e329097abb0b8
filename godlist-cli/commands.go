package main

import (
	"errors"
	"strconv"
	"strings"

	"godlist/list"
	"godlist/proto"
)

type GodlistCommandProc func(c *godlistClient)

type GodlistCommand struct {
	name  string             // command name
	proc  GodlistCommandProc // implementation
	arity int                // argument count including the name, negative means at least -arity
}

const GODLIST_MAX_COPYTO = 1024 * 1024

var GodlistCommandTable []GodlistCommand

func init() {
	GodlistCommandTable = []GodlistCommand{
		{"add", addLastCommand, -2},
		{"addlast", addLastCommand, -2},
		{"addfirst", addFirstCommand, -2},
		{"insert", insertCommand, 3},
		{"get", getCommand, 2},
		{"set", setCommand, 3},
		{"indexof", indexOfCommand, 2},
		{"contains", containsCommand, 2},
		{"remove", removeCommand, 2},
		{"removeat", removeAtCommand, 2},
		{"removefirst", removeFirstCommand, 1},
		{"removelast", removeLastCommand, 1},
		{"popfirst", popFirstCommand, 1},
		{"poplast", popLastCommand, 1},
		{"first", firstCommand, 1},
		{"last", lastCommand, 1},
		{"count", countCommand, 1},
		{"clear", clearCommand, 1},
		{"copyto", copyToCommand, 3},
		{"range", rangeCommand, 1},
		{"print", printCommand, 1},
		{"raw", rawCommand, -1},
		{"help", helpCommand, 1},
	}
}

func lookupCommand(cmdStr string) *GodlistCommand {
	cmdStr = strings.ToLower(cmdStr)
	for i := range GodlistCommandTable {
		if GodlistCommandTable[i].name == cmdStr {
			return &GodlistCommandTable[i]
		}
	}
	return nil
}

// ADD v [v ...]
func addLastCommand(c *godlistClient) {
	for _, v := range c.args[1:] {
		c.list.AddLast(v)
	}
	c.addReply(proto.Integer(c.list.Length()))
}

// ADDFIRST v [v ...]; each value goes to the front in turn
func addFirstCommand(c *godlistClient) {
	for _, v := range c.args[1:] {
		c.list.AddFirst(v)
	}
	c.addReply(proto.Integer(c.list.Length()))
}

func insertCommand(c *godlistClient) {
	index, ok := c.intArg(1)
	if !ok {
		return
	}
	c.addReplyErrOrOK(c.list.Insert(index, c.args[2]))
}

func getCommand(c *godlistClient) {
	index, ok := c.intArg(1)
	if !ok {
		return
	}
	val, err := c.list.Get(index)
	if err != nil {
		c.addReplyError(err)
		return
	}
	c.addReply(proto.Bulk(val))
}

func setCommand(c *godlistClient) {
	index, ok := c.intArg(1)
	if !ok {
		return
	}
	c.addReplyErrOrOK(c.list.Set(index, c.args[2]))
}

func indexOfCommand(c *godlistClient) {
	c.addReply(proto.Integer(c.list.IndexOf(c.args[1])))
}

func containsCommand(c *godlistClient) {
	c.addReply(boolReply(c.list.Contains(c.args[1])))
}

func removeCommand(c *godlistClient) {
	c.addReply(boolReply(c.list.Remove(c.args[1])))
}

func removeAtCommand(c *godlistClient) {
	index, ok := c.intArg(1)
	if !ok {
		return
	}
	c.addReplyErrOrOK(c.list.RemoveAt(index))
}

func removeFirstCommand(c *godlistClient) {
	c.list.RemoveFirst()
	c.addReply(proto.Status("OK"))
}

func removeLastCommand(c *godlistClient) {
	c.list.RemoveLast()
	c.addReply(proto.Status("OK"))
}

func popFirstCommand(c *godlistClient) {
	c.addReply(optionalReply(c.list.PopFirst()))
}

func popLastCommand(c *godlistClient) {
	c.addReply(optionalReply(c.list.PopLast()))
}

func firstCommand(c *godlistClient) {
	c.addReply(optionalReply(c.list.First()))
}

func lastCommand(c *godlistClient) {
	c.addReply(optionalReply(c.list.Last()))
}

func countCommand(c *godlistClient) {
	c.addReply(proto.Integer(c.list.Length()))
}

func clearCommand(c *godlistClient) {
	c.list.Clear()
	c.addReply(proto.Status("OK"))
}

// COPYTO size offset copies into a fresh destination of the given size.
func copyToCommand(c *godlistClient) {
	size, ok := c.intArg(1)
	if !ok {
		return
	}
	offset, ok := c.intArg(2)
	if !ok {
		return
	}
	if size < 0 || size > GODLIST_MAX_COPYTO {
		c.addReply(proto.Error("ERR size out of range"))
		return
	}
	dst := make([]string, size)
	if err := c.list.CopyTo(dst, offset); err != nil {
		c.addReplyError(err)
		return
	}
	c.addReply(proto.BulkArray(dst))
}

func rangeCommand(c *godlistClient) {
	it := c.list.Iterator()
	defer it.Close()
	var values []string
	for it.Next() {
		values = append(values, it.Value())
	}
	c.addReply(proto.BulkArray(values))
}

// PRINT dumps straight to the output sink; the reply only reports the count.
func printCommand(c *godlistClient) {
	if err := c.list.Print(c.out); err != nil {
		c.addReplyError(err)
		return
	}
	c.addReply(proto.Integer(c.list.Length()))
}

// RAW cmd [arg ...] replies with the multibulk encoding of the rest of the line.
func rawCommand(c *godlistClient) {
	line := strings.Join(c.args[1:], " ")
	c.addReply(proto.Bulk(string(proto.FormatCommandArgs([]byte(line)))))
}

func helpCommand(c *godlistClient) {
	names := make([]string, 0, len(GodlistCommandTable))
	for _, cmd := range GodlistCommandTable {
		names = append(names, strings.ToUpper(cmd.name))
	}
	c.addReply(proto.BulkArray(names))
}

func boolReply(b bool) *proto.Reply {
	if b {
		return proto.Integer(1)
	}
	return proto.Integer(0)
}

func optionalReply(val string, ok bool) *proto.Reply {
	if !ok {
		return proto.Nil()
	}
	return proto.Bulk(val)
}

func (c *godlistClient) intArg(i int) (int, bool) {
	n, err := strconv.Atoi(c.args[i])
	if err != nil {
		c.addReply(proto.Error("ERR value is not an integer"))
		return 0, false
	}
	return n, true
}

func (c *godlistClient) addReplyErrOrOK(err error) {
	if err != nil {
		c.addReplyError(err)
		return
	}
	c.addReply(proto.Status("OK"))
}

func (c *godlistClient) addReplyError(err error) {
	code := "ERR"
	switch {
	case errors.Is(err, list.INDEX_OUT_OF_RANGE_ERR):
		code = "OUTOFRANGE"
	case errors.Is(err, list.INVALID_ARGUMENT_ERR):
		code = "INVALIDARG"
	}
	c.logger.Warn("command failed", "cmd", c.args[0], "err", err)
	c.addReply(proto.Error("%s %v", code, err))
}
