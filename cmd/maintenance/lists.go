package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBackfillListParentsCmd(a *app) *cobra.Command {
	var mappings []string

	cmd := &cobra.Command{
		Use:   "backfill-list-parents",
		Short: "Assign child lists to parents, then give every other list a null parent",
		Example: `  maintenance backfill-list-parents \
    --map "Places=Cafes,Date Spots,Travel Destinations" \
    --map "Media=Books,Movies,TV Shows"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parents, err := parseParentMappings(mappings)
			if err != nil {
				return err
			}

			svc := a.c.ListContainer.Service
			out := cmd.OutOrStdout()

			for _, m := range parents {
				link, err := svc.LinkParents(cmd.Context(), m.Parent, m.Children)
				if err != nil {
					return err
				}
				if link.Created {
					fmt.Fprintf(out, "created parent list %s\n", link.Parent)
				}
				for _, child := range link.Linked {
					fmt.Fprintf(out, "%s -> %s\n", child, link.Parent)
				}
				for _, child := range link.Missing {
					fmt.Fprintf(out, "list not found: %s\n", child)
				}
			}

			res, err := svc.BackfillParents(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "updated %d list(s)\n", res.ModifiedCount)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&mappings, "map", nil, "Parent=Child1,Child2 assignment (repeatable)")
	return cmd
}

type parentMapping struct {
	Parent   string
	Children []string
}

func parseParentMappings(raw []string) ([]parentMapping, error) {
	out := make([]parentMapping, 0, len(raw))
	for _, r := range raw {
		parent, children, ok := strings.Cut(r, "=")
		parent = strings.TrimSpace(parent)
		if !ok || parent == "" {
			return nil, fmt.Errorf("--map must be Parent=Child1,Child2, got %q", r)
		}

		m := parentMapping{Parent: parent}
		for _, c := range strings.Split(children, ",") {
			if c = strings.TrimSpace(c); c != "" {
				m.Children = append(m.Children, c)
			}
		}
		out = append(out, m)
	}
	return out, nil
}
