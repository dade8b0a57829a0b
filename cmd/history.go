package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/chunlian/internal/export"
	"github.com/ziadkadry99/chunlian/internal/render"
)

var (
	historyJSON   bool
	historyExport string
)

var historyCmd = &cobra.Command{
	Use:       "history [couplets|fortunes]",
	Short:     "Show saved couplets and fortune cards",
	Long:      `Lists everything generated so far, newest first. Without an argument both lists are shown.
With --export the whole history is written to a Markdown or HTML file instead.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"couplets", "fortunes"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, closeStore, err := openStore(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		which := ""
		if len(args) == 1 {
			which = args[0]
		}
		state := st.State()

		if historyExport != "" {
			if err := export.WriteFile(historyExport, state); err != nil {
				return err
			}
			fmt.Printf("Exported history to %s\n", historyExport)
			return nil
		}

		if historyJSON {
			switch which {
			case "couplets":
				return printJSON(state.CoupletHistory)
			case "fortunes":
				return printJSON(state.FortuneHistory)
			default:
				return printJSON(map[string]any{
					"coupletHistory": state.CoupletHistory,
					"fortuneHistory": state.FortuneHistory,
				})
			}
		}

		if which != "fortunes" {
			fmt.Println(render.Title("春联"))
			fmt.Println(render.CoupletHistory(state.CoupletHistory))
			fmt.Println()
		}
		if which != "couplets" {
			fmt.Println(render.Title("运势"))
			fmt.Println(render.FortuneHistory(state.FortuneHistory))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print history as JSON")
	historyCmd.Flags().StringVar(&historyExport, "export", "", "write the full history to a .md or .html file")
	rootCmd.AddCommand(historyCmd)
}
