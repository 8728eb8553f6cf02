package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylo-app/phylo/client"
	"github.com/phylo-app/phylo/internal/models"
	"github.com/phylo-app/phylo/internal/service"
)

func newRelationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relation",
		Aliases: []string{"rel"},
		Short:   "Kinship queries",
	}
	cmd.AddCommand(relationBetweenCmd())
	cmd.AddCommand(relationFromCmd())
	cmd.AddCommand(relationListCmd())
	cmd.AddCommand(relationLocalCmd())
	return cmd
}

func relationBetweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between <from> <to>",
		Short: "Show what <to> is to <from>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := requireTree()
			if err != nil {
				return err
			}
			res, err := apiClient.Relations.Between(cmd.Context(), tree, args[0], args[1])
			if err != nil {
				return fmt.Errorf("between: %w", err)
			}
			outputRelations(res, []relationRow{clientRow(res)})
			return nil
		},
	}
}

func relationFromCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from <member>",
		Short: "Show how every member of the tree is related to <member>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := requireTree()
			if err != nil {
				return err
			}
			list, err := apiClient.Relations.From(cmd.Context(), tree, args[0])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			rows := make([]relationRow, len(list.Relations))
			for i := range list.Relations {
				rows[i] = clientRow(&list.Relations[i])
			}
			outputRelations(list, rows)
			return nil
		},
	}
}

func relationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the recorded spouse and parent-child edges of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := requireTree()
			if err != nil {
				return err
			}
			list, err := apiClient.Relations.List(cmd.Context(), tree)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}
			switch flagFmt {
			case "json":
				formatJSON(list)
			case "quiet":
				for _, r := range list.Relationships {
					fmt.Println(r.ID)
				}
			default:
				rows := make([][]string, len(list.Relationships))
				for i, r := range list.Relationships {
					rows[i] = []string{r.Kind, r.MemberA, r.MemberB}
				}
				formatTable([]string{"KIND", "A", "B"}, rows)
			}
			return nil
		},
	}
}

func relationLocalCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "local <from> [to]",
		Short: "Answer a query offline from an exported tree file",
		Long: `Run the kinship engine over a YAML tree snapshot without contacting a
server. With one member, every other member is described relative to it.
Snapshots are produced by 'phylo tree export'.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(file)
			if err != nil {
				return err
			}
			for _, p := range service.ValidateSnapshot(snap) {
				fmt.Fprintf(os.Stderr, "warning: %s\n", p)
			}

			if len(args) == 2 {
				res, err := service.RelateInSnapshot(snap, args[0], args[1])
				if err != nil {
					return err
				}
				outputRelations(res, []relationRow{modelRow(res)})
				return nil
			}

			list, err := service.RelationsInSnapshot(snap, args[0])
			if err != nil {
				return err
			}
			rows := make([]relationRow, len(list.Relations))
			for i := range list.Relations {
				rows[i] = modelRow(&list.Relations[i])
			}
			outputRelations(list, rows)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Tree snapshot file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func clientRow(r *client.RelationResult) relationRow {
	return relationRow{
		From: r.FromMemberName, To: r.ToMemberName, Label: r.Relationship,
		Cultural: r.Cultural, Half: r.HalfSibling, Path: r.PathNames,
	}
}

func modelRow(r *models.RelationResult) relationRow {
	return relationRow{
		From: r.FromMemberName, To: r.ToMemberName, Label: r.Relationship,
		Cultural: r.Cultural, Half: r.HalfSibling, Path: r.PathNames,
	}
}
