package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/game-of-colors/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rule parameters in effect",
	Long:  `Shows the production threshold, survival counts and the transition rules they drive.`,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := rules.NewEngine(config.ProductionThreshold, config.SurvivalCounts)
	if err != nil {
		return err
	}

	fmt.Printf("Production threshold: %d\n", engine.ProductionThreshold)
	fmt.Printf("Survival counts:      %v\n", engine.SurvivalCounts)
	fmt.Printf("Wrap mode:            %s\n", config.WrapMode)
	fmt.Println()
	fmt.Printf("  %-7s %s\n", "Cell", "Next color")
	fmt.Printf("  %-7s %s\n", "----", "----------")
	fmt.Printf("  %-7s exactly one of red, green, blue has %d neighbors: that color; otherwise empty\n",
		rules.Empty, engine.ProductionThreshold)
	fmt.Printf("  %-7s stays white while red, green and blue all border it; otherwise the most common of them (ties: red, green, blue)\n",
		rules.White)
	for _, c := range rules.Chromatic {
		fmt.Printf("  %-7s white if both other colors border it; survives with %v %s neighbors; otherwise spreads a color with %d neighbors or dies\n",
			c, engine.SurvivalCounts, c, engine.ProductionThreshold)
	}
	return nil
}
