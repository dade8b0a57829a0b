package render

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/chunlian/internal/model"
)

// CoupletHistory lists saved couplets, newest first.
func CoupletHistory(items []model.CoupletResult) string {
	if len(items) == 0 {
		return mutedStyle.Render("还没有春联记录")
	}
	var b strings.Builder
	for i, c := range items {
		fmt.Fprintf(&b, "%s %s\n", headingStyle.Render(fmt.Sprintf("%2d.", i+1)), c.Horizontal)
		fmt.Fprintf(&b, "    上联：%s\n    下联：%s\n", c.Upper, c.Lower)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FortuneHistory lists saved fortune cards, newest first.
func FortuneHistory(items []model.FortuneCard) string {
	if len(items) == 0 {
		return mutedStyle.Render("还没有求签记录")
	}
	var b strings.Builder
	for i, f := range items {
		fmt.Fprintf(&b, "%s %s %s  %s\n", headingStyle.Render(fmt.Sprintf("%2d.", i+1)), f.Type.Emoji(), f.Title,
			mutedStyle.Render(fmt.Sprintf("上%s下%s", f.UpperTrigram, f.LowerTrigram)))
		fmt.Fprintf(&b, "    %s\n", f.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Settings renders the on/off state of each setting.
func Settings(s model.Settings) string {
	return fmt.Sprintf("%s %s\n%s %s",
		headingStyle.Render("sound:    "), onOff(s.SoundEnabled),
		headingStyle.Render("animation:"), onOff(s.AnimationEnabled))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return mutedStyle.Render("off")
}
