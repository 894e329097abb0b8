package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"godlist/config"
	"godlist/list"
	"godlist/proto"
)

type godlistClient struct {
	list   *list.List[string]
	args   []string
	reply  *proto.Reply
	out    io.Writer
	logger log15.Logger
}

type cliConfig struct {
	prompt      string
	interactive bool
	resp        bool
}

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// writeReply renders r for the terminal, or writes its wire form in resp
// mode. Errors are coloured on interactive sessions.
func writeReply(out io.Writer, r *proto.Reply, cli cliConfig) {
	if cli.resp {
		out.Write(r.Encode())
		return
	}
	text := r.Render()
	if cli.interactive && r.Type == proto.GODLIST_REPLY_ERROR {
		text = colorRed + text + colorReset
	}
	fmt.Fprintln(out, text)
}

func newClient(conf *config.Config, out io.Writer, logger log15.Logger) *godlistClient {
	l := list.New[string]()
	for _, v := range conf.Preload {
		l.Add(v)
	}
	return &godlistClient{
		list:   l,
		out:    out,
		logger: logger,
	}
}

func (c *godlistClient) addReply(r *proto.Reply) {
	c.reply = r
}

func (c *godlistClient) resetClient() {
	c.args = nil
	c.reply = nil
}

// processCommand runs one parsed line and reports whether the session
// should go on.
func (c *godlistClient) processCommand() bool {
	cmdStr := strings.ToLower(c.args[0])
	if cmdStr == "quit" || cmdStr == "exit" {
		return false
	}
	cmd := lookupCommand(cmdStr)
	if cmd == nil {
		c.addReply(proto.Error("ERR unknown command '%s'", c.args[0]))
		return true
	}
	if (cmd.arity > 0 && cmd.arity != len(c.args)) || len(c.args) < -cmd.arity {
		c.addReply(proto.Error("ERR wrong number of arguments for '%s' command", cmd.name))
		return true
	}
	c.logger.Debug("process command", "cmd", cmd.name, "argc", len(c.args)-1)
	cmd.proc(c)
	return true
}

func repl(in io.Reader, c *godlistClient, cli cliConfig) error {
	reader := bufio.NewScanner(in)
	for {
		if cli.interactive {
			fmt.Fprint(c.out, cli.prompt)
		}
		if !reader.Scan() {
			return reader.Err()
		}
		args, err := proto.SplitArgs(reader.Text())
		if err != nil {
			writeReply(c.out, proto.Error("ERR %v", err), cli)
			continue
		}
		if len(args) == 0 {
			continue
		}
		c.args = args
		if !c.processCommand() {
			return nil
		}
		if c.reply != nil {
			writeReply(c.out, c.reply, cli)
		}
		c.resetClient()
	}
}

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	resp := flag.Bool("resp", false, "write replies in RESP wire form (overrides config output)")
	flag.Parse()

	logger := log15.New("service", "godlist-cli")
	conf := config.Default()
	if *path != "" {
		var err error
		conf, err = config.LoadConfig(*path)
		if err != nil {
			logger.Crit("config error", "path", *path, "err", err)
			os.Exit(1)
		}
	}
	handler, err := conf.Log.Handler()
	if err != nil {
		logger.Crit("log handler error", "err", err)
		os.Exit(1)
	}
	logger.SetHandler(handler)

	cli := cliConfig{
		prompt:      conf.Prompt,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		resp:        *resp || conf.Output == config.OUTPUT_RESP,
	}
	client := newClient(conf, colorable.NewColorableStdout(), logger)
	logger.Info("godlist-cli started", "preloaded", client.list.Length(), "interactive", cli.interactive)
	if err := repl(os.Stdin, client, cli); err != nil {
		logger.Error("read input", "err", err)
		os.Exit(1)
	}
}
