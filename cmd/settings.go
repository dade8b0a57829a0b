package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/chunlian/internal/render"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [sound|animation]",
	Short: "Show or toggle sound and animation",
	Long: `Without an argument prints the current settings. With "sound" or
"animation" flips that setting. Sound rings the terminal bell when a result is
revealed; animation prints fortune verses line by line.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"sound", "animation"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, closeStore, err := openStore(context.Background(), cfg)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			switch args[0] {
			case "sound":
				st.ToggleSound()
			case "animation":
				st.ToggleAnimation()
			}
		}

		fmt.Println(render.Settings(st.Settings()))
		return closeStore()
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
