package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	logo "github.com/BlairLeduc/pico-logo-sub003"
)

type args struct {
	scriptPath  *string
	interactive *bool
	useVM       *bool
	memoryCells *int
}

func readArgs() *args {
	a := &args{
		scriptPath:  flag.String("script", "", "Path to a Logo script to run non-interactively"),
		interactive: flag.Bool("interactive", true, "Drop into the REPL after loading any script"),
		useVM:       flag.Bool("use-vm", false, "Compile simple expressions to bytecode instead of tree-walking them"),
		memoryCells: flag.Int("memory-cells", 16384, "Number of cons cells in the memory arena"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	cfg := logo.NewConfig()
	cfg.SetInt("memory.pool_cells", *a.memoryCells)
	cfg.SetBool("eval.use_vm", *a.useVM)

	host := logo.NewOSHost()
	interp := logo.NewInterpreter(cfg, host)
	repl := logo.NewRepl(interp)

	if *a.scriptPath != "" {
		text, err := os.ReadFile(*a.scriptPath)
		if err != nil {
			log.Fatalf("Can't read script file: %s", err.Error())
		}
		runScript(repl, string(text))
		if !*a.interactive {
			return
		}
	}

	fmt.Println("Welcome to Logo. Type a line of code, or `to name ... end` to define a procedure.")
	repl.Run()
}

// runScript feeds a whole script file's lines through repl the same
// way interactive input would, line by line, so `to...end` and
// bracket continuations spanning multiple lines behave identically
// whether the source came from a file or a terminal.
func runScript(repl *logo.Repl, text string) {
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			line := text[start:i]
			repl.FeedLine(line)
			start = i + 1
		}
	}
}
