package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/islml/kaze/internal/config"
	"github.com/islml/kaze/internal/editor"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	configPath := flag.String("config", config.DefaultPath(), "path to the kaze config `file`")
	cli.ProgramName = "kaze"
	cli.ArgsHelp = "[file]"
	cli.MinArgs = 0
	cli.MaxArgs = 1
	cli.Main()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return log.FErrf("%v", err)
	}
	// -loglevel wins over KAZE_LOG_LEVEL, which wins over log_level
	if cfg.LogLevel != "" && !flagPassed(flag.CommandLine, "loglevel") {
		if err := log.SetLogLevelStr(cfg.LogLevel); err != nil {
			return log.FErrf("invalid log_level %q: %v", cfg.LogLevel, err)
		}
	}

	doc := &editor.Document{}
	path := ""
	if args := flag.Args(); len(args) == 1 {
		path = args[0]
		doc, err = editor.OpenDocument(path)
		if err != nil {
			return log.FErrf("%v", err)
		}
	}

	// stdout and stderr belong to the screen from here on
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return log.FErrf("opening log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	log.SetOutput(logOut)
	defer log.SetOutput(os.Stderr)
	if path != "" {
		log.Infof("opened %s", path)
	}

	kaze := editor.New(editor.NewTerm(os.Stdin.Fd(), os.Stdout.Fd()), doc)
	defer kaze.Close()

	if err := kaze.Init(); err != nil {
		return die(kaze, err)
	}
	if err := kaze.Run(); err != nil {
		return die(kaze, err)
	}
	return 0
}

func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// die clears the screen, restores the terminal and reports err on stderr.
func die(kaze *editor.Editor, err error) int {
	_ = kaze.Teardown()
	log.Errf("fatal: %v", err)
	log.SetOutput(os.Stderr)

	var cfgErr *editor.TerminalConfigError
	var geoErr *editor.GeometryError
	switch {
	case errors.As(err, &cfgErr):
		return log.FErrf("terminal configuration failed: %v", err)
	case errors.As(err, &geoErr):
		return log.FErrf("could not determine window size: %v", err)
	}
	return log.FErrf("%v", err)
}
