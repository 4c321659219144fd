// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"fmt"

	"ctlviz/curve"
	"ctlviz/initapp"
	"ctlviz/property"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCurveCmd(a *initapp.InitApp) *cobra.Command {
	var name string
	var assignments map[string]string
	var strict bool

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Validate curve properties",
		Long: `Create a curve with default properties, apply the given assignments and
print the resulting properties. Rejected assignments are logged and keep the
previous value.`,
		Example: `  ctlviz curve --name temp --set color=#FF0000 --set lineWidth=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := curve.Options{}
			if cmd.Flags().Changed("name") {
				opts[curve.KeyName] = property.String(name)
			}
			appearance := curve.New(a.Sink(), opts)
			appearance.SetProperties(assignments)

			out, err := yaml.Marshal(appearance.Properties())
			if err != nil {
				return err
			}
			if _, err = cmd.OutOrStdout().Write(out); err != nil {
				return err
			}
			if rejected := a.Recorder().Count(log.ErrorLevel); strict && rejected > 0 {
				return fmt.Errorf("%d assignments were rejected", rejected)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the curve")
	cmd.Flags().StringToStringVarP(&assignments, "set", "s", make(map[string]string), "Property assignments (e.g. --set lineStyle=2)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if an assignment was rejected")

	return cmd
}
