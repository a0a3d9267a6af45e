package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstat/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered layout and community-detection algorithms",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	fmt.Println("layouts:")
	for _, d := range registry.Layouts() {
		fmt.Printf("  %-15s %s\n", d.ID, d.Description)
		if len(d.RequiredPreconditions) > 0 {
			fmt.Printf("  %-15s requires: %v\n", "", d.RequiredPreconditions)
		}
	}
	fmt.Println("community algorithms:")
	for _, d := range registry.CommunityAlgorithms() {
		fmt.Printf("  %-15s %s\n", d.ID, d.Description)
	}
	return nil
}
