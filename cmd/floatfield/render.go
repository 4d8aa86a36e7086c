package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatfield/internal/descriptor"
	"github.com/alexisbeaulieu97/floatfield/pkg/field"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render <descriptor.yaml>",
		Short: "Render a field described by a YAML descriptor to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.newLogger()
			if err != nil {
				return err
			}

			desc, err := descriptor.Load(args[0])
			if err != nil {
				log.Error(err, "failed to load descriptor")
				return err
			}

			f, err := field.FromDescriptor(desc)
			if err != nil {
				log.Error(err, "failed to build field")
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), f.View())
			return nil
		},
	}
}
