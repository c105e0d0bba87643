package report

import (
	"fmt"
	"strconv"
	"strings"

	"deputyreport/internal/markup"
	"deputyreport/internal/morph"
)

// ComposeSections builds the numbered report sections as a backend-agnostic
// markup tree. chartPaths come from the chart renderer in descending-value
// order; chartTotal is the sum of all request categories including the
// filtered zeros. Missing optional data always degrades to a fallback
// sentence, never an error.
func ComposeSections(rep Report, chartPaths []string, chartTotal int) []markup.Node {
	sections := []markup.Node{
		generalInfoSection(rep.GeneralInfo),
		legislationSection(rep.Legislation),
		citizenRequestsSection(rep.CitizenRequests, chartPaths, chartTotal),
		supportProjectsSection(rep.SupportProjects),
		projectActivitySection(rep.ProjectActivity),
		directivesSection(rep.Directives),
	}
	if note := noteSection(rep.OtherInfo); note != nil {
		sections = append(sections, note)
	}
	return sections
}

func generalInfoSection(info GeneralInfo) markup.Node {
	children := []markup.Node{
		markup.P(markup.Text("ФИО: "), markup.Strong(strings.TrimSpace(info.FullName))),
	}
	appendLine := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			children = append(children, markup.P(markup.Textf("%s: %s", label, value)))
		}
	}
	appendLine("Регион", info.Region)
	appendLine("Наименование органа власти", info.AuthorityName)
	appendLine("Избирательный округ", info.District)
	if strings.TrimSpace(info.TermStart) != "" || strings.TrimSpace(info.TermEnd) != "" {
		children = append(children, markup.P(markup.Textf("Срок полномочий: %s – %s",
			strings.TrimSpace(info.TermStart), strings.TrimSpace(info.TermEnd))))
	}
	appendLine("Должность", info.Position)
	appendLine("Должность во фракции", info.FactionPosition)

	if committees := nonBlank(info.Committees); len(committees) > 0 {
		items := make([]markup.Item, 0, len(committees))
		for _, committee := range committees {
			items = append(items, markup.Li(markup.Text(committee)))
		}
		children = append(children,
			markup.P(markup.Text("Комитеты и комиссии, в которых состоит:")),
			markup.List{Items: items})
	}

	children = append(children,
		markup.PClass("mb-4", markup.Text("Участие в заседаниях:")),
		markup.List{Items: []markup.Item{
			attendanceItem("Заседания органа власти", info.Attendance.PlenaryAttended, info.Attendance.PlenaryTotal),
			attendanceItem("Заседания комитетов и комиссий", info.Attendance.CommitteeAttended, info.Attendance.CommitteeTotal),
			attendanceItem("Заседания фракции", info.Attendance.CaucusAttended, info.Attendance.CaucusTotal),
		}})

	if links := nonBlank(info.Links); len(links) > 0 {
		items := make([]markup.Item, 0, len(links))
		for _, link := range links {
			items = append(items, markup.Li(markup.Link{Href: link}))
		}
		children = append(children,
			markup.P(markup.Text("Ссылки на ресурсы:")),
			markup.List{Items: items})
	}

	return markup.Section{Title: "1. ОБЩАЯ ИНФОРМАЦИЯ", Children: children}
}

// attendanceItem renders "присутствовал на A заседаниях из B" with the
// attended side in the prepositional case. Counts arrive as text and fall
// back to zero; attended may legitimately exceed total in source data.
func attendanceItem(label, attended, total string) markup.Item {
	a := morph.ParseCount(attended)
	t := morph.ParseCount(total)
	noun := morph.InflectCase("заседание", morph.Prepositional, a)
	return markup.Li(markup.Textf("%s: присутствовал на %d %s из %d.", label, a, noun, t))
}

func legislationSection(items []Legislation) markup.Node {
	if len(items) == 0 {
		return markup.Section{
			Title:    "2. ЗАКОНОТВОРЧЕСКАЯ ДЕЯТЕЛЬНОСТЬ",
			Children: []markup.Node{markup.P(markup.Text("Законопроекты за отчетный период не вносились."))},
		}
	}

	var submittedInit, submittedJoint, adoptedInit, adoptedJoint, rejected int
	for _, item := range items {
		switch item.Status {
		case StatusSubmittedByInitiative:
			submittedInit++
		case StatusSubmittedJointly:
			submittedJoint++
		case StatusAdoptedByInitiative:
			adoptedInit++
		case StatusAdoptedJointly:
			adoptedJoint++
		case StatusRejected:
			rejected++
		}
	}

	count := len(items)
	intro := markup.P(markup.Textf(
		"Инициировал %d %s, из которых %d внесено по инициативе, %d внесено совместно, %d принято по инициативе, %d принято совместно, %d отклонено.",
		count, morph.Inflect("законопроект", count),
		submittedInit, submittedJoint, adoptedInit, adoptedJoint, rejected))

	lead := "В рамках законотворческой деятельности были внесены следующие законопроекты:"
	if count == 1 {
		lead = "В рамках законотворческой деятельности был внесен следующий законопроект:"
	}

	listItems := make([]markup.Item, 0, count)
	for _, item := range items {
		nodes := []markup.Node{
			markup.Strong(quoted(item.Title)),
			markup.Textf(": %s ", sentence(item.Summary)),
			markup.Textf("Статус: %s.", strings.TrimSpace(item.Status)),
		}
		if reason := strings.TrimSpace(item.RejectionReason); reason != "" {
			nodes = append(nodes, markup.Textf(" Причина отклонения: %s.", trimPeriod(reason)))
		}
		nodes = append(nodes, linkNodes(item.Links)...)
		listItems = append(listItems, markup.Item{Children: nodes})
	}

	return markup.Section{
		Title: "2. ЗАКОНОТВОРЧЕСКАЯ ДЕЯТЕЛЬНОСТЬ",
		Children: []markup.Node{
			intro,
			markup.P(markup.Text(lead)),
			markup.List{Items: listItems},
		},
	}
}

func citizenRequestsSection(cr CitizenRequests, chartPaths []string, chartTotal int) markup.Node {
	meetings := morph.ParseCount(cr.PersonalMeetings)
	dayReceptions := 0
	for _, count := range cr.DayReceptions {
		dayReceptions += morph.ParseCount(count)
	}

	children := []markup.Node{
		markup.PClass("mb-4",
			markup.Text("Депутат провел "),
			markup.Strong(strconv.Itoa(meetings)),
			markup.Textf(" личных %s граждан, в том числе %d %s в рамках Всероссийского дня приема граждан. ",
				morph.Inflect("прием", meetings), dayReceptions, morph.Inflect("встреча", dayReceptions)),
			markup.Text("За отчетный период поступило "),
			markup.Strong(strconv.Itoa(chartTotal)),
			markup.Textf(" письменных %s, охватывающих различные тематики:", morph.Inflect("обращение", chartTotal))),
	}

	chartBlock := markup.Container{Class: "table-container", Children: []markup.Node{
		markup.Heading{Text: "Тематика обращений граждан"},
	}}
	for _, path := range chartPaths {
		chartBlock.Children = append(chartBlock.Children, markup.Image{Src: "file://" + path})
	}
	children = append(children, chartBlock)

	if appeals := morph.ParseCount(cr.Requests.AppealsToLeadership); appeals > 0 {
		children = append(children, markup.PClass("mt-4 big",
			markup.Strong(fmt.Sprintf("Получено обращений на имя руководства партии: %d", appeals))))
	}

	responses := morph.ParseCount(cr.Responses)
	queries := morph.ParseCount(cr.OfficialQueries)
	children = append(children, markup.PClass("mt-4",
		markup.Text("На обращения граждан было дано "),
		markup.Strong(strconv.Itoa(responses)),
		markup.Textf(" %s, а также направлено ", morph.Inflect("ответ", responses)),
		markup.Strong(strconv.Itoa(queries)),
		markup.Textf(" депутатских %s в органы власти и иные организации.", morph.Inflect("запрос", queries))))

	if len(cr.Examples) == 0 {
		children = append(children, markup.P(markup.Text("Примеры успешной работы за отчетный период не отмечены.")))
	} else {
		lead := "Среди примеров успешной работы можно отметить следующие достижения:"
		if len(cr.Examples) == 1 {
			lead = "Среди примеров успешной работы можно отметить следующее достижение:"
		}
		items := make([]markup.Item, 0, len(cr.Examples))
		for _, example := range cr.Examples {
			nodes := []markup.Node{markup.Text(sentence(example.Text))}
			nodes = append(nodes, linkNodes(example.Links)...)
			items = append(items, markup.Item{Children: nodes})
		}
		children = append(children, markup.P(markup.Text(lead)), markup.List{Items: items})
	}

	return markup.Section{Title: "3. РАБОТА С ОБРАЩЕНИЯМИ ГРАЖДАН", Children: children}
}

func supportProjectsSection(sp SupportProjects) markup.Node {
	var told []SupportProject
	for _, project := range sp.Projects {
		if strings.TrimSpace(project.Text) != "" {
			told = append(told, project)
		}
	}

	if len(told) == 0 {
		return markup.Section{
			Title:    "4. ПОДДЕРЖКА УЧАСТНИКОВ СВО И ИХ СЕМЕЙ",
			Children: []markup.Node{markup.P(markup.Text("Проекты по поддержке участников СВО и их семей за отчетный период не проводились."))},
		}
	}

	lead := "В рамках поддержки участников СВО и их семей были реализованы следующие проекты:"
	if len(told) == 1 {
		lead = "В рамках поддержки участников СВО и их семей был реализован следующий проект:"
	}
	items := make([]markup.Item, 0, len(told))
	for _, project := range told {
		var nodes []markup.Node
		if name := strings.TrimSpace(project.Name); name != "" {
			nodes = append(nodes, markup.Strong(quoted(name)), markup.Textf(": %s", sentence(project.Text)))
		} else {
			nodes = append(nodes, markup.Text(sentence(project.Text)))
		}
		nodes = append(nodes, linkNodes(project.Links)...)
		items = append(items, markup.Item{Children: nodes})
	}

	return markup.Section{
		Title:    "4. ПОДДЕРЖКА УЧАСТНИКОВ СВО И ИХ СЕМЕЙ",
		Children: []markup.Node{markup.P(markup.Text(lead)), markup.List{Items: items}},
	}
}

func projectActivitySection(items []ProjectActivity) markup.Node {
	if len(items) == 0 {
		return markup.Section{
			Title:    "5. ПРЕДСТАВИТЕЛЬСКАЯ И ПРОЕКТНАЯ ДЕЯТЕЛЬНОСТЬ",
			Children: []markup.Node{markup.P(markup.Text("Проекты и мероприятия за отчетный период не проводились."))},
		}
	}
	listItems := make([]markup.Item, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, pairItem(item.Name, item.Result))
	}
	return markup.Section{
		Title: "5. ПРЕДСТАВИТЕЛЬСКАЯ И ПРОЕКТНАЯ ДЕЯТЕЛЬНОСТЬ",
		Children: []markup.Node{
			markup.P(markup.Text("Среди реализованных проектов и мероприятий можно выделить:")),
			markup.List{Items: listItems},
		},
	}
}

func directivesSection(items []Directive) markup.Node {
	if len(items) == 0 {
		return markup.Section{
			Title:    "6. РАБОТА ПО ПОРУЧЕНИЯМ РУКОВОДСТВА",
			Children: []markup.Node{markup.P(markup.Text("Поручения руководства за отчетный период отсутствуют."))},
		}
	}
	listItems := make([]markup.Item, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, pairItem(item.Instruction, item.Action))
	}
	return markup.Section{
		Title: "6. РАБОТА ПО ПОРУЧЕНИЯМ РУКОВОДСТВА",
		Children: []markup.Node{
			markup.P(markup.Text("В рамках выполнения поручений руководства была проведена работа по следующим задачам:")),
			markup.List{Items: listItems},
		},
	}
}

// noteSection renders the free-text note, or nil when it is blank. Literal
// "\n" escapes and true line breaks both become paragraph breaks.
func noteSection(note string) markup.Node {
	note = strings.ReplaceAll(note, `\n`, "\n")
	var children []markup.Node
	for _, paragraph := range strings.Split(note, "\n") {
		if paragraph = strings.TrimSpace(paragraph); paragraph != "" {
			children = append(children, markup.P(markup.Text(sentence(paragraph))))
		}
	}
	if len(children) == 0 {
		return nil
	}
	return markup.Section{Title: "7. ИНАЯ ЗНАЧИМАЯ ИНФОРМАЦИЯ", Class: "other_info", Children: children}
}

// pairItem renders a "«name»: result." two-part list entry, degrading to
// just the result when the name is blank.
func pairItem(name, result string) markup.Item {
	if name = strings.TrimSpace(name); name == "" {
		return markup.Li(markup.Text(sentence(result)))
	}
	return markup.Li(markup.Strong(quoted(name)), markup.Textf(": %s", sentence(result)))
}

func linkNodes(links []string) []markup.Node {
	var nodes []markup.Node
	for _, link := range nonBlank(links) {
		nodes = append(nodes, markup.Text(" "), markup.Link{Href: link})
	}
	return nodes
}

// nonBlank drops blank entries, so a sequence of one empty string counts as
// empty for the omit-if-trivial rules.
func nonBlank(values []string) []string {
	var out []string
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func quoted(s string) string {
	return "«" + strings.TrimSpace(s) + "»"
}

// trimPeriod strips a single trailing period so templates can append their
// own without doubling punctuation.
func trimPeriod(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), ".")
}

func sentence(s string) string {
	s = trimPeriod(s)
	if s == "" {
		return ""
	}
	return s + "."
}
