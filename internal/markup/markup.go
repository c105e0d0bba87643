// Package markup builds the backend-agnostic document tree for a report.
// Sections are composed from typed nodes and rendered to HTML in one pass,
// so tests can assert on structure instead of scraping formatted strings.
package markup

import (
	"fmt"
	"html"
	"strings"
)

// Node is one element of the document tree.
type Node interface {
	appendHTML(sb *strings.Builder)
}

// Text is an escaped inline text run.
type Text string

func (t Text) appendHTML(sb *strings.Builder) {
	sb.WriteString(html.EscapeString(string(t)))
}

// Textf formats an inline text run.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Strong is an escaped bold inline run.
type Strong string

func (s Strong) appendHTML(sb *strings.Builder) {
	sb.WriteString("<strong>")
	sb.WriteString(html.EscapeString(string(s)))
	sb.WriteString("</strong>")
}

// Link is an inline anchor. An empty label falls back to the href.
type Link struct {
	Href  string
	Label string
}

func (l Link) appendHTML(sb *strings.Builder) {
	label := l.Label
	if label == "" {
		label = l.Href
	}
	sb.WriteString(`<a href="`)
	sb.WriteString(html.EscapeString(l.Href))
	sb.WriteString(`" class="text-accent">`)
	sb.WriteString(html.EscapeString(label))
	sb.WriteString("</a>")
}

// Image references a local artifact embedded into the document flow.
type Image struct {
	Src string
}

func (i Image) appendHTML(sb *strings.Builder) {
	sb.WriteString(`<img src="`)
	sb.WriteString(html.EscapeString(i.Src))
	sb.WriteString(`" style="max-width: 100%; height: auto;">`)
}

// Paragraph is a block of inline nodes.
type Paragraph struct {
	Class    string
	Children []Node
}

// P builds an unclassed paragraph.
func P(children ...Node) Paragraph {
	return Paragraph{Children: children}
}

// PClass builds a paragraph with a CSS class.
func PClass(class string, children ...Node) Paragraph {
	return Paragraph{Class: class, Children: children}
}

func (p Paragraph) appendHTML(sb *strings.Builder) {
	if p.Class != "" {
		sb.WriteString(`<p class="`)
		sb.WriteString(html.EscapeString(p.Class))
		sb.WriteString(`">`)
	} else {
		sb.WriteString("<p>")
	}
	for _, child := range p.Children {
		child.appendHTML(sb)
	}
	sb.WriteString("</p>")
}

// Item is one list entry holding inline or block children.
type Item struct {
	Children []Node
}

// Li builds a list item.
func Li(children ...Node) Item {
	return Item{Children: children}
}

// List is a bulleted list of items.
type List struct {
	Items []Item
}

func (l List) appendHTML(sb *strings.Builder) {
	sb.WriteString(`<ul class="list-disc pl-6">`)
	for _, item := range l.Items {
		sb.WriteString(`<li class="mb-2">`)
		for _, child := range item.Children {
			child.appendHTML(sb)
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
}

// Heading is a minor in-section heading.
type Heading struct {
	Text string
}

func (h Heading) appendHTML(sb *strings.Builder) {
	sb.WriteString("<h4>")
	sb.WriteString(html.EscapeString(h.Text))
	sb.WriteString("</h4>")
}

// Container is a classed div grouping block nodes.
type Container struct {
	Class    string
	Children []Node
}

func (c Container) appendHTML(sb *strings.Builder) {
	sb.WriteString(`<div class="`)
	sb.WriteString(html.EscapeString(c.Class))
	sb.WriteString(`">`)
	for _, child := range c.Children {
		child.appendHTML(sb)
	}
	sb.WriteString("</div>")
}

// Section is one numbered top-level report section.
type Section struct {
	Title    string
	Class    string
	Children []Node
}

func (s Section) appendHTML(sb *strings.Builder) {
	class := "section-container"
	if s.Class != "" {
		class += " " + s.Class
	}
	sb.WriteString(`<div class="`)
	sb.WriteString(html.EscapeString(class))
	sb.WriteString(`"><h3>`)
	sb.WriteString(html.EscapeString(s.Title))
	sb.WriteString("</h3><div>")
	for _, child := range s.Children {
		child.appendHTML(sb)
	}
	sb.WriteString("</div></div>")
}

// Render serialises the node tree to HTML.
func Render(nodes ...Node) string {
	var sb strings.Builder
	for _, node := range nodes {
		node.appendHTML(&sb)
	}
	return sb.String()
}
