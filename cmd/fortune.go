package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/chunlian/internal/model"
	"github.com/ziadkadry99/chunlian/internal/progress"
	"github.com/ziadkadry99/chunlian/internal/render"
	"github.com/ziadkadry99/chunlian/internal/session"
)

var (
	fortuneCard int
	fortuneJSON bool
)

var fortuneCmd = &cobra.Command{
	Use:   "fortune",
	Short: "Draw a Year of the Horse fortune card",
	Long: `Lays out eight face-down cards; pick one to draw your 2026 fortune.
With --card the chosen card is drawn once and printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		st, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		st.SetPage(model.PageFortune)
		defer st.SetPage(model.PageHome)

		sess := session.NewFortune(newClient(cfg), st, session.SystemClock{})
		presenter := render.NewPresenter(os.Stdout, st.Settings)
		reporter := progress.NewReporter()

		if cmd.Flags().Changed("card") {
			if err := progress.Track(reporter, "求签中", func() error { return sess.Select(ctx, fortuneCard-1) }); err != nil {
				return err
			}
			card := sess.View().Card
			if fortuneJSON {
				return printJSON(card)
			}
			presenter.RevealFortune(*card)
			presenter.Println("")
			presenter.Interpretation(*card)
			return nil
		}

		presenter.Println(render.Title("天马测运"))
		err = runFortuneSession(ctx, sess, presenter, reporter)
		if interrupted(err) {
			return nil
		}
		return err
	},
}

func runFortuneSession(ctx context.Context, sess *session.Fortune, presenter *render.Presenter, reporter progress.Reporter) error {
	for {
		v := sess.View()
		switch v.State {
		case session.FortuneSelection:
			presenter.Println(render.CardGrid(v))
			if v.Error != "" {
				presenter.Println(render.Error(v.Error))
			}

			items := make([]string, session.CardCount)
			for i := range items {
				items[i] = fmt.Sprintf("第 %d 张", i+1)
			}
			pick := promptui.Select{Label: "心诚则灵，请选一张签", Items: append(items, "返回")}
			idx, _, err := pick.Run()
			if err != nil {
				return err
			}
			if idx == session.CardCount {
				return nil
			}

			err = progress.Track(reporter, "求签中", func() error { return sess.Select(ctx, idx) })
			if err != nil && interrupted(err) {
				return err
			}
			if card := sess.View().Card; err == nil && card != nil {
				presenter.RevealFortune(*card)
			}

		case session.FortuneRevealed:
			actions := promptui.Select{
				Label: "接下来",
				Items: []string{"解签", "分享", "重抽", "返回"},
			}
			idx, _, err := actions.Run()
			if err != nil {
				return err
			}
			switch idx {
			case 0:
				sess.OpenInterpretation()
			case 1:
				presenter.Println(sess.ShareText())
			case 2:
				sess.Reset()
			default:
				return nil
			}

		case session.FortuneInterpretation:
			presenter.Interpretation(*v.Card)
			back := promptui.Select{Label: "大师解签", Items: []string{"关闭"}}
			if _, _, err := back.Run(); err != nil {
				return err
			}
			sess.CloseInterpretation()

		default:
			// Drawing is synchronous here; nothing to show.
			return nil
		}
	}
}

func init() {
	fortuneCmd.Flags().IntVar(&fortuneCard, "card", 1, "draw this card (1-8) once and exit")
	fortuneCmd.Flags().BoolVar(&fortuneJSON, "json", false, "print the card as JSON (with --card)")
	rootCmd.AddCommand(fortuneCmd)
}
