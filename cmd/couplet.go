package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/chunlian/internal/model"
	"github.com/ziadkadry99/chunlian/internal/progress"
	"github.com/ziadkadry99/chunlian/internal/render"
	"github.com/ziadkadry99/chunlian/internal/session"
)

var (
	coupletTheme string
	coupletStyle string
	coupletJSON  bool
)

var coupletCmd = &cobra.Command{
	Use:   "couplet",
	Short: "Write a Spring Festival couplet",
	Long: `Asks for a theme and style and writes a couplet through the gateway.
With --theme the couplet is generated once and printed, which is handy for
scripts; otherwise an interactive session lets you regenerate and copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch model.Style(coupletStyle) {
		case model.StyleTraditional, model.StyleModern, model.StyleHumorous:
		default:
			return fmt.Errorf("invalid --style %q: must be one of traditional, modern, humorous", coupletStyle)
		}

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

		st.SetPage(model.PageCouplet)
		defer st.SetPage(model.PageHome)

		sess := session.NewCouplet(newClient(cfg), st)
		sess.SetStyle(model.Style(coupletStyle))
		presenter := render.NewPresenter(os.Stdout, st.Settings)
		reporter := progress.NewReporter()

		if coupletTheme != "" {
			sess.SetTheme(coupletTheme)
			if err := progress.Track(reporter, "正在挥毫泼墨", func() error { return sess.Submit(ctx) }); err != nil {
				return err
			}
			result := sess.View().Result
			if coupletJSON {
				return printJSON(result)
			}
			presenter.RevealCouplet(*result)
			return nil
		}

		presenter.Println(render.Title("AI 春联"))
		return runCoupletSession(ctx, sess, presenter, reporter)
	},
}

func runCoupletSession(ctx context.Context, sess *session.Couplet, presenter *render.Presenter, reporter progress.Reporter) error {
	// generate runs fn under the spinner. It reports false when the user
	// interrupted the request.
	generate := func(fn func(context.Context) error) bool {
		err := progress.Track(reporter, "正在挥毫泼墨", func() error { return fn(ctx) })
		switch {
		case err == nil:
			presenter.RevealCouplet(*sess.View().Result)
		case interrupted(err):
			return false
		default:
			presenter.Println(render.Error(sess.View().Error))
		}
		return true
	}

	askTheme := true
	for {
		if askTheme {
			if err := promptTheme(sess); err != nil {
				if interrupted(err) {
					return nil
				}
				return err
			}
			if !generate(sess.Submit) {
				return nil
			}
		}

		// Without a result the only way forward is a new theme.
		askTheme = sess.View().State != session.CoupletResult
		if askTheme {
			continue
		}

		actions := promptui.Select{
			Label: "接下来",
			Items: []string{"再写一副", "复制文本", "换个主题", "返回"},
		}
		idx, _, err := actions.Run()
		if err != nil {
			if interrupted(err) {
				return nil
			}
			return err
		}

		switch idx {
		case 0:
			if !generate(sess.Regenerate) {
				return nil
			}
		case 1:
			presenter.Println(sess.CopyText())
		case 2:
			askTheme = true
		default:
			return nil
		}
	}
}

// promptTheme asks for a theme and style and stores them on sess.
func promptTheme(sess *session.Couplet) error {
	themePrompt := promptui.Prompt{
		Label:   "主题 (如：事业有成、阖家幸福)",
		Default: sess.View().Theme,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return session.ErrEmptyTheme
			}
			return nil
		},
	}
	theme, err := themePrompt.Run()
	if err != nil {
		return err
	}

	labels := []string{"传统 traditional", "现代 modern", "幽默 humorous"}
	stylePrompt := promptui.Select{
		Label:     "风格",
		Items:     labels,
		CursorPos: styleIndex(sess.View().Style),
	}
	idx, _, err := stylePrompt.Run()
	if err != nil {
		return err
	}

	sess.SetTheme(theme)
	sess.SetStyle(model.Styles[idx])
	return nil
}

func styleIndex(s model.Style) int {
	for i, v := range model.Styles {
		if v == s {
			return i
		}
	}
	return 0
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func init() {
	coupletCmd.Flags().StringVar(&coupletTheme, "theme", "", "generate once for this theme and exit")
	coupletCmd.Flags().StringVar(&coupletStyle, "style", string(model.StyleTraditional), "couplet style: traditional, modern or humorous")
	coupletCmd.Flags().BoolVar(&coupletJSON, "json", false, "print the result as JSON (with --theme)")
	rootCmd.AddCommand(coupletCmd)
}
