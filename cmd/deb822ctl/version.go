package main

import (
	"fmt"

	"github.com/paultag/deb822go/version"
	"github.com/spf13/pflag"
)

func runVersion(args []string) (int, error) {
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	switch sub {
	case "compare":
		flagSet := pflag.NewFlagSet("version compare", pflag.ContinueOnError)
		if err := flagSet.Parse(args[2:]); err == pflag.ErrHelp {
			return 0, nil
		} else if err != nil {
			return 2, err
		}
		rest := flagSet.Args()
		if len(rest) != 2 {
			fmt.Println("deb822ctl version compare: expected exactly two version strings")
			return 2, nil
		}
		a, err := version.Parse(rest[0])
		if err != nil {
			return 1, err
		}
		b, err := version.Parse(rest[1])
		if err != nil {
			return 1, err
		}
		switch version.Compare(a, b) {
		case -1:
			fmt.Printf("%s < %s\n", a, b)
		case 0:
			fmt.Printf("%s = %s\n", a, b)
		case 1:
			fmt.Printf("%s > %s\n", a, b)
		}
		return 0, nil
	case "parse":
		flagSet := pflag.NewFlagSet("version parse", pflag.ContinueOnError)
		if err := flagSet.Parse(args[2:]); err == pflag.ErrHelp {
			return 0, nil
		} else if err != nil {
			return 2, err
		}
		for _, s := range flagSet.Args() {
			v, err := version.Parse(s)
			if err != nil {
				return 1, err
			}
			fmt.Printf("%s\tepoch=%d(%v) upstream=%q revision=%q(%v)\n",
				v, v.Epoch, v.HasEpoch, v.Upstream, v.Revision, v.HasRevision)
		}
		return 0, nil
	default:
		fmt.Println("deb822ctl version: expected a subcommand (compare, parse)")
		return 2, nil
	}
}
