package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/personal-lambda/internal/achievement"
	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/docstore"
	"github.com/saulo-duarte/personal-lambda/internal/list"
)

// uniqueIndexes back the name lookups of lists and the achievements singleton.
var uniqueIndexes = []struct {
	Collection string
	Field      string
}{
	{list.CollectionName, "name"},
	{achievement.CollectionName, "userId"},
}

func newEnsureIndexesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the unique indexes the app relies on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, idx := range uniqueIndexes {
				name, err := docstore.NewCollection[struct{}](a.c.Database, idx.Collection).EnsureUniqueIndex(cmd.Context(), idx.Field)
				if err != nil {
					config.WithContext(cmd.Context()).WithError(err).WithField("collection", idx.Collection).Error("Failed to create index")
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s.%s\n", idx.Collection, name)
			}
			return nil
		},
	}
}
