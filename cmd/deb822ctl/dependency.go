package main

import (
	"fmt"
	"strings"

	"github.com/paultag/deb822go/arch"
	"github.com/paultag/deb822go/buildprofile"
	"github.com/paultag/deb822go/dependency"
	"github.com/spf13/pflag"
)

func runDependency(args []string, cfg config) (int, error) {
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	switch sub {
	case "parse":
		flagSet := pflag.NewFlagSet("dependency parse", pflag.ContinueOnError)
		if err := flagSet.Parse(args[2:]); err == pflag.ErrHelp {
			return 0, nil
		} else if err != nil {
			return 2, err
		}
		text := strings.Join(flagSet.Args(), " ")
		dep, err := dependency.Parse(text)
		if err != nil {
			return 1, err
		}
		fmt.Println(dep.String())
		for _, w := range dependency.Check(dep) {
			fmt.Printf("warning: %s: %s\n", w.Possibility, w.Message)
		}
		return 0, nil
	case "filter":
		flagSet := pflag.NewFlagSet("dependency filter", pflag.ContinueOnError)
		archFlag := flagSet.String("arch", cfg.DefaultArch, "target architecture")
		profileFlag := flagSet.StringSlice("profile", cfg.ActiveProfiles, "active build profile (repeatable)")
		if err := flagSet.Parse(args[2:]); err == pflag.ErrHelp {
			return 0, nil
		} else if err != nil {
			return 2, err
		}
		text := strings.Join(flagSet.Args(), " ")
		dep, err := dependency.Parse(text)
		if err != nil {
			return 1, err
		}
		if *archFlag != "" {
			target, err := arch.Parse(*archFlag)
			if err != nil {
				return 1, err
			}
			dep = dependency.FilterForArch(dep, target)
		}
		active := buildprofile.ActiveSet(*profileFlag...)
		dep = dependency.FilterForProfiles(dep, active)
		fmt.Println(dep.String())
		return 0, nil
	default:
		fmt.Println("deb822ctl dependency: expected a subcommand (parse, filter)")
		return 2, nil
	}
}
