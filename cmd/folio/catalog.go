package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [key]",
	Short: "List the showcased projects, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tTITLE\tLINK")
			for _, p := range c.Projects() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, p.Title, p.Link)
			}
			return w.Flush()
		}
		p, ok := c.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown project %q (known: %s)", args[0], strings.Join(c.Keys(), ", "))
		}
		fmt.Fprintf(out, "%s (%s)\n", p.Title, p.Key)
		fmt.Fprintf(out, "  image: %s\n", p.Image)
		fmt.Fprintf(out, "  tags:  %s\n", strings.Join(p.Tags, ", "))
		if p.HasLink() {
			fmt.Fprintf(out, "  link:  %s\n", p.Link)
		}
		fmt.Fprintf(out, "\n%s\n", p.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
