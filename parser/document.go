package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Element is a handle to a single node in the parsed page
type Element interface {
	// Text returns the node's inner text
	Text() string
	// Attr returns the value of the named attribute, or "" if absent
	Attr(name string) string
	// Find returns descendant elements matching the selector
	Find(selector string) ([]Element, error)
}

// DocumentView is the read-only view of a rendered page that extraction
// runs against
type DocumentView interface {
	// FindBySelector returns elements matching a CSS selector
	FindBySelector(selector string) ([]Element, error)
	// FindByTag returns elements with the given tag name
	FindByTag(tag string) []Element
	// RawText returns the page's visible text, one block element per line
	RawText() string
}

// Document implements DocumentView on top of goquery
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML content into a Document
func NewDocument(htmlContent string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// FindBySelector implements DocumentView
func (d *Document) FindBySelector(selector string) ([]Element, error) {
	m, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	return wrapSelection(d.doc.FindMatcher(m)), nil
}

// FindByTag implements DocumentView
func (d *Document) FindByTag(tag string) []Element {
	return wrapSelection(d.doc.Find(tag))
}

// RawText implements DocumentView
func (d *Document) RawText() string {
	var sb strings.Builder
	sel := d.doc.Find("body")
	if sel.Length() == 0 {
		sel = d.doc.Selection
	}
	for _, n := range sel.Nodes {
		writeNodeText(n, &sb)
	}
	return sb.String()
}

type element struct {
	sel *goquery.Selection
}

func (e *element) Text() string {
	return e.sel.Text()
}

func (e *element) Attr(name string) string {
	return e.sel.AttrOr(name, "")
}

func (e *element) Find(selector string) ([]Element, error) {
	m, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	return wrapSelection(e.sel.FindMatcher(m)), nil
}

// compileSelector compiles a selector explicitly so malformed patterns
// surface as errors instead of silently matching nothing
func compileSelector(selector string) (goquery.Matcher, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return m, nil
}

func wrapSelection(sel *goquery.Selection) []Element {
	elements := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &element{sel: s})
	})
	return elements
}

// writeNodeText collects text content from the node tree, skipping
// non-rendered elements and closing each block element with a newline
func writeNodeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(c, sb)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteString("\n")
	}
}

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"header": true, "footer": true, "nav": true, "aside": true, "main": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "table": true, "tr": true,
	"figure": true, "figcaption": true, "br": true,
}
