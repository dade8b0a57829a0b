package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/chunlian/internal/model"
	"github.com/ziadkadry99/chunlian/internal/store"
)

// Markdown renders the saved history as a Markdown document.
func Markdown(st store.State) []byte {
	var b bytes.Buffer
	b.WriteString("# 2026 丙午马年 · 新春记录\n\n")

	b.WriteString("## 春联\n\n")
	if len(st.CoupletHistory) == 0 {
		b.WriteString("_还没有春联记录_\n\n")
	}
	for i, c := range st.CoupletHistory {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, escape(c.Horizontal))
		fmt.Fprintf(&b, "- 上联：%s\n- 下联：%s\n- 横批：%s\n\n", escape(c.Upper), escape(c.Lower), escape(c.Horizontal))
		if c.Explanation != "" {
			fmt.Fprintf(&b, "> %s\n\n", escape(c.Explanation))
		}
	}

	b.WriteString("## 运势\n\n")
	if len(st.FortuneHistory) == 0 {
		b.WriteString("_还没有求签记录_\n\n")
	}
	for i, f := range st.FortuneHistory {
		fmt.Fprintf(&b, "### %d. %s %s\n\n", i+1, f.Type.Emoji(), escape(f.Title))
		fmt.Fprintf(&b, "| 上卦 | 下卦 |\n|---|---|\n| %s %s | %s %s |\n\n",
			f.UpperTrigram.Or(model.TrigramQian).Symbol(), escape(string(f.UpperTrigram)),
			f.LowerTrigram.Or(model.TrigramKun).Symbol(), escape(string(f.LowerTrigram)))
		fmt.Fprintf(&b, "**签文**：%s\n\n", escape(f.Content))
		fmt.Fprintf(&b, "**解曰**：%s\n\n", escape(f.Blessing))
	}
	return b.Bytes()
}

// markdownEscaper keeps generated text from changing the document structure.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "#", `\#`,
	"|", `\|`, "<", `\<`, "[", `\[`, "]", `\]`, "\n", " ",
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// HTML renders the saved history as a standalone printable page.
// Raw HTML in generated text is never passed through.
func HTML(w io.Writer, st store.State) error {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	var body bytes.Buffer
	if err := md.Convert(Markdown(st), &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return fmt.Errorf("parsing page template: %w", err)
	}

	return tmpl.Execute(w, struct {
		Generated string
		Content   template.HTML
	}{
		Generated: time.Now().Format("2006-01-02 15:04"),
		Content:   template.HTML(body.String()),
	})
}

// WriteFile exports st to path. A .html or .htm extension selects HTML,
// anything else Markdown.
func WriteFile(path string, st store.State) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		var buf bytes.Buffer
		if err := HTML(&buf, st); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		data = Markdown(st)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	return nil
}
