package main

import (
	"fmt"
	"io"
	"os"

	"github.com/paultag/deb822go/control"
	"github.com/spf13/pflag"
)

func runControl(args []string) (int, error) {
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	switch sub {
	case "cat":
		flagSet := pflag.NewFlagSet("control cat", pflag.ContinueOnError)
		if err := flagSet.Parse(args[2:]); err == pflag.ErrHelp {
			return 0, nil
		} else if err != nil {
			return 2, err
		}

		dec := control.NewDecoder(os.Stdin)
		enc := control.NewEncoder(os.Stdout)
		for {
			para, err := dec.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return 1, err
			}
			if err := enc.Encode(para); err != nil {
				return 1, err
			}
		}
		return 0, nil
	default:
		fmt.Println("deb822ctl control: expected a subcommand (cat)")
		return 2, nil
	}
}
