// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cli

import (
	"context"
	"errors"

	"ctlviz/colors"
	"ctlviz/initapp"
	"ctlviz/led"

	"github.com/spf13/cobra"
)

func newLedCmd(a *initapp.InitApp) *cobra.Command {
	var address string
	var bit int
	var url string

	cmd := &cobra.Command{
		Use:   "led",
		Short: "Follow the state of an indicator",
		Long: `Subscribe to a channel of the sample feed and log every change of the
display state. Either a single bit or the whole value is handled.`,
		Example: `  ctlviz led --channel SR:STATUS --bit 2 --url ws://localhost:8765`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.Logger()
			ind := led.New(a.Sink(), bit, nil)

			feed := a.NewFeed(url)
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if err := feed.Connect(ctx); err != nil {
				return err
			}
			defer feed.Close()

			samples, err := feed.Subscribe(address)
			if err != nil {
				return err
			}
			feedErr := make(chan error, 1)
			go func() {
				feedErr <- feed.Run()
			}()
			go func() {
				<-ctx.Done()
				feed.Close()
			}()

			logger.Info("following indicator", "channel", address, "bit", ind.Bit())
			err = ind.Run(ctx, samples, func(state int64) {
				logger.Info("state changed",
					"channel", address,
					"state", state,
					"color", colors.FromNRGBA(ind.Color()).Name())
			})
			cancel()
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return err
			}
			return <-feedErr
		},
	}

	cmd.Flags().StringVarP(&address, "channel", "c", "", "Channel address")
	cmd.Flags().IntVarP(&bit, "bit", "b", led.WholeValue, "Bit to handle, negative for the whole value")
	cmd.Flags().StringVarP(&url, "url", "u", "", "Sample feed URL, overrides the configuration")

	cmd.MarkFlagRequired("channel")

	return cmd
}
