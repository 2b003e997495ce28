package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pathops/internal/svg"
)

var (
	inspectRecursive bool
	inspectSelect    []string
	inspectJSON      bool
)

// inspectCmd lists the operable selection in document order
var inspectCmd = &cobra.Command{
	Use:   "inspect [file.svg]",
	Short: "List the operable element ids in document order",
	Long: `Resolves the selection exactly as apply would and prints the operable
element ids in document (z-) order, lowest first. The last id is the
top element an apply run would duplicate. Nothing is executed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectRecursive, "recursive", true, "Descend into nested groups without limit")
	inspectCmd.Flags().StringArrayVar(&inspectSelect, "select", nil, "Id of a selected element (repeatable; default: all top-level elements)")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Emit JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := svg.ParseFile(args[0])
	if err != nil {
		return err
	}

	roots := doc.Root.Children
	if len(inspectSelect) > 0 {
		roots = roots[:0:0]
		for _, id := range inspectSelect {
			el := doc.Find(id)
			if el == nil {
				return fmt.Errorf("no element with id %q in %s", id, args[0])
			}
			roots = append(roots, el)
		}
	}

	ids := svg.DocumentOrder(doc.Root, svg.Collect(roots, inspectRecursive))

	if inspectJSON {
		out := struct {
			IDs []string `json:"ids"`
			Top string   `json:"top,omitempty"`
		}{IDs: ids}
		if len(ids) > 0 {
			out.Top = ids[len(ids)-1]
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, id := range ids {
		if i == len(ids)-1 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(top)\n", id)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
	}
	return nil
}
