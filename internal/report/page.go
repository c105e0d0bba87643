package report

import (
	"fmt"
	"html/template"
	"strings"

	"deputyreport/internal/markup"
)

// pageData feeds the static page shell; the section markup is already
// escaped by the markup package.
type pageData struct {
	FullName    string
	PeriodLabel string
	Body        template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <title>ОТЧЕТ О ДЕЯТЕЛЬНОСТИ ДЕПУТАТА</title>
    <style>
        * { -webkit-font-smoothing: antialiased; box-sizing: border-box; }
        body { font-family: sans-serif; font-size: 14px; line-height: 15.2px; color: #000000; background: #FFFFFF; margin: 0; height: 100%; width: 21cm; }
        .big { font-size: 18px; }
        .container { width: 720px; margin: 0 auto; padding: 0 24px; margin-top: 40px; }
        .text-accent { color: #394B8C; text-decoration: underline; }
        .header { position: relative; text-align: center; background: #394B8C; color: #FFFFFF; margin-bottom: 12px; border-radius: 0 0 20px 20px; height: 171px; padding-top: 20px; padding-bottom: 20px; }
        .header h1 { font-size: 44px; font-weight: 700; text-transform: uppercase; line-height: 44px; margin-bottom: 6px; }
        .header h2 { font-weight: 600; font-size: 16px; line-height: 17px; margin-top: 8px; }
        .header p { font-weight: 400; font-size: 12px; line-height: 14.4px; text-align: center; }
        .section-container { margin-bottom: 29px; position: relative; }
        h3 { font-weight: 600; font-size: 26px; line-height: 22px; color: #000000; background: #FFC531; padding: 3px 0; margin-bottom: 20px; width: 100%; }
        h4 { text-align: center; }
        p { margin: 0 0 6px 0; text-align: justify; font-weight: 400; font-size: 14px; line-height: 15.2px; }
        ul.list-disc { margin: 7px 0 6px 0; padding-left: 20px; list-style: disc; }
        ul.list-disc li { position: relative; padding-left: 4px; }
        a { color: #394B8C; text-decoration: underline; }
        .table-container { background: #EAF1F9; border-radius: 20px; margin: 15px 0; padding: 10px; padding-left: 20px; text-align: center; }
        strong { font-weight: 600; }
        @page { size: A4; margin: 1cm 0cm 1cm 0cm; }
        @page :first { margin: 0cm 0cm 1cm 0cm; }
        @page { @bottom-right { content: counter(page) " / " counter(pages); border-top-left-radius: 6px; font-size: 10px; color: #FFFFFF; background: #394B8C; height: 20px; line-height: 0px; padding-left: 8px; padding-right: 8px; text-align: center; margin-top: 20px; } }
    </style>
</head>
<body>
<div class="header">
    <div class="header-content">
        <h1>ОТЧЕТ О ПРОДЕЛАННОЙ <br> РАБОТЕ ДЕПУТАТА</h1>
        <h2>{{.FullName}}</h2>
        <p>{{.PeriodLabel}}</p>
    </div>
</div>
<div class="container">
{{.Body}}
</div>
</body>
</html>
`))

// renderPage wraps the composed sections in the fixed page shell.
func renderPage(rep Report, periodLabel string, sections []markup.Node) (string, error) {
	var sb strings.Builder
	err := pageTemplate.Execute(&sb, pageData{
		FullName:    strings.TrimSpace(rep.GeneralInfo.FullName),
		PeriodLabel: periodLabel,
		Body:        template.HTML(markup.Render(sections...)),
	})
	if err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return sb.String(), nil
}
