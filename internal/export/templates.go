package export

const pageTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>新春记录</title>
  <style>
    body { max-width: 720px; margin: 2rem auto; padding: 0 1rem; font-family: "Noto Serif SC", "Songti SC", serif; background: #fff7ed; color: #1f2937; }
    h1 { color: #b91c1c; text-align: center; border-bottom: 3px double #facc15; padding-bottom: .5rem; }
    h2 { color: #b91c1c; margin-top: 2rem; }
    h3 { color: #991b1b; }
    blockquote { border-left: 4px solid #facc15; margin: 0; padding-left: 1rem; color: #6b7280; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #fca5a5; padding: .25rem .75rem; }
    footer { margin-top: 3rem; text-align: center; color: #9ca3af; font-size: .8rem; }
    @media print { body { background: #fff; } }
  </style>
</head>
<body>
  <article>
    {{.Content}}
  </article>
  <footer>导出于 {{.Generated}}</footer>
</body>
</html>`
