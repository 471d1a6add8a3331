package main

import (
	"fmt"
	"os"
)

// Version identifies the version of deb822ctl. This can be modified
// by CI during the release process.
var Version = "dev"

const defaultHelp = `deb822ctl inspects Debian's core textual package formats

Usage:

  deb822ctl <command> [options]

The commands are:

  version    compare or parse Debian version strings
  dependency parse and filter dependency-field expressions
  control    tokenize and re-render deb822 stanzas
  --version  show deb822ctl version
`

func run(args []string) (int, error) {
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}

	cfg, err := loadConfig(configPath())
	if err != nil {
		return 1, err
	}

	switch arg {
	case "", "help", "--help", "-h":
		fmt.Print(defaultHelp)
		return 2, nil
	case "--version":
		fmt.Printf("deb822ctl version: %s\n", Version)
		return 0, nil
	case "version":
		return runVersion(args[1:])
	case "dependency":
		return runDependency(args[1:], cfg)
	case "control":
		return runControl(args[1:])
	default:
		fmt.Printf("deb822ctl %s: unknown command\n", arg)
		return 2, nil
	}
}

func main() {
	exitCode, err := run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(exitCode)
}
