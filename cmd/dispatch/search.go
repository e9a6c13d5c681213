package main

import (
	"fmt"
	"strings"

	"github.com/pacchoferes/dispatch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, strings.Join(c.Text, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dispatch.ErrorMessage(err))
		return err
	}

	for _, r := range results {
		if !r.Matched() {
			fmt.Fprintf(deps.Stdout, "%s  no match, assign it or check the spelling\n", r.Query)
			continue
		}
		driver := r.Address.Driver
		if driver == "" {
			driver = dispatch.Unassigned
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]\n", r.Query, r.Address.Address, driver)
	}
	return nil
}
