package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/tileworld/internal/placeholders"
)

func main() {
	cmd := &cobra.Command{
		Use:          "genplaceholders [dir]",
		Short:        "Write placeholder tile and player graphics plus a sample level",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "assets"
			if len(args) == 1 {
				dir = args[0]
			}

			fmt.Println("Tileworld Placeholder Graphics Generator")
			fmt.Println("========================================")
			fmt.Println()

			if err := placeholders.GenerateAndSave(dir); err != nil {
				return err
			}

			fmt.Println()
			fmt.Println("Done! Run the game with:")
			fmt.Printf("  tileworld --level %s/level.yaml\n", dir)
			return nil
		},
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
