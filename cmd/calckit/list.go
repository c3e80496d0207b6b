package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available calculators and their input fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.load()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			out := cmd.OutOrStdout()
			groups := a.runner.Registry().ByCategory()
			for _, category := range a.runner.Registry().Categories() {
				fmt.Fprintf(out, "%s:\n", category)
				for _, def := range groups[category] {
					names := make([]string, 0, len(def.Fields()))
					for _, f := range def.Fields() {
						name := f.Name
						if f.Required {
							name += "*"
						}
						names = append(names, name)
					}
					fmt.Fprintf(out, "  %-18s %s\n", def.ID(), def.Summary())
					fmt.Fprintf(out, "  %-18s fields: %s\n", "", strings.Join(names, ", "))
				}
			}
			return nil
		},
	}
}
