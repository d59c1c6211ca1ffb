// Package main provides the CLI entrypoint for ordermap.
//
// ordermap turns raw order records from the order database into the typed
// order shapes served to storefront clients:
//   - detail: assembles a single order with membership, VIP, shipping and bundle rules
//   - summary: assembles an order-history summary
//   - schema: prints the schema tables as YAML
//   - validate: checks schema tables for structural mistakes
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
