package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/relayspeak/tscommands/codec"
	"github.com/relayspeak/tscommands/messages"
	"github.com/relayspeak/tscommands/schema"
	"github.com/relayspeak/tscommands/wire"
)

func main() {
	var (
		declsFile   = flag.String("decls", "", "Path to declaration tables (default: embedded)")
		cmdName     = flag.String("cmd", "", "Wire command name to dispatch")
		argsStr     = flag.String("args", "", "Command arguments (key=value,key2=value2)")
		list        = flag.Bool("list", false, "List registered commands and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		codec.SetLogger(logger)
	}

	d, err := buildDispatcher(*declsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(d); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !*list && *cmdName == "" {
		fmt.Fprintln(os.Stderr, "Usage: tsq -cmd <name> [-args key=value,...]")
		fmt.Fprintln(os.Stderr, "       tsq -list")
		fmt.Fprintln(os.Stderr, "       tsq -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(d, *cmdName, *argsStr, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildDispatcher(declsFile string) (*codec.Dispatcher[messages.Notification], error) {
	if declsFile == "" {
		return messages.Dispatcher()
	}
	reg, err := schema.Load(declsFile)
	if err != nil {
		return nil, err
	}
	return messages.NewDispatcher(reg)
}

func run(d *codec.Dispatcher[messages.Notification], cmdName, argsStr string, listOnly bool) error {
	if listOnly {
		fmt.Printf("Registered commands:\n")
		for _, name := range d.Names() {
			cm, _ := d.Lookup(name)
			fmt.Printf("  %s -> %s(%s)\n", name, cm.Name(), formatParams(cm))
		}
		return nil
	}

	args := make(map[string]string)
	if argsStr != "" {
		for _, kv := range strings.Split(argsStr, ",") {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("malformed argument %q, want key=value", kv)
			}
			args[parts[0]] = parts[1]
		}
	}

	n, err := d.Dispatch(&wire.CanonicalCommand{Name: cmdName, Args: args})
	if err != nil {
		return err
	}

	fmt.Printf("%+v\n", n)
	return nil
}

func formatParams(cm *codec.CompiledMessage) string {
	var params []string
	for _, f := range cm.Fields() {
		t := f.Type
		if f.List {
			t = "[]" + t
		}
		params = append(params, f.Wire+": "+t)
	}
	return strings.Join(params, ", ")
}
