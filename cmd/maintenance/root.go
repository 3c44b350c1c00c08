package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/container"
)

type opener func(ctx context.Context) (*container.Container, error)

// app holds the container a command runs against. It is opened before any
// subcommand runs and closed once the command returns, failed or not.
type app struct {
	open  opener
	close func(ctx context.Context) error
	c     *container.Container
}

func openContainer(ctx context.Context) (*container.Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return container.New(ctx, settings)
}

func (a *app) execute(args []string, out io.Writer) (err error) {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)

	defer func() {
		if a.c == nil {
			return
		}
		if cerr := a.close(context.Background()); cerr != nil {
			config.Logger.WithError(cerr).Error("Failed to disconnect from MongoDB")
			if err == nil {
				err = cerr
			}
		}
	}()

	return root.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "maintenance",
		Short:         "Batch corrections for the Personal database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			a.c = c
			return nil
		},
	}

	root.AddCommand(
		newMarkMissedCmd(a),
		newSessionToSizeCmd(a),
		newBackfillListParentsCmd(a),
		newEnsureIndexesCmd(a),
	)
	return root
}
