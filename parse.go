package main

import (
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/russross/blackfriday/v2"
)

type heading struct {
	Level int
	Text  string
}

func (h heading) String() string {
	return strings.Repeat("#", h.Level) + " " + h.Text
}

func parseFile(file string) (*blackfriday.Node, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parse(b), nil
}

func parse(b []byte) *blackfriday.Node {
	md := blackfriday.New()
	return md.Parse(b)
}

// headings lists every heading in the document, in order.
func headings(b []byte) []heading {
	doc := markdown.Parse(b, parser.New())

	hs := []heading{}
	var (
		current *ast.Heading
		text    strings.Builder
	)
	f := func(node ast.Node, entering bool) ast.WalkStatus {
		if h, ok := node.(*ast.Heading); ok {
			if entering {
				current = h
				text.Reset()
			} else {
				hs = append(hs, heading{Level: h.Level, Text: strings.TrimSpace(text.String())})
				current = nil
			}
			return ast.GoToNext
		}
		if current != nil && entering {
			if leaf := node.AsLeaf(); leaf != nil {
				text.Write(leaf.Literal)
			}
		}
		return ast.GoToNext
	}
	ast.Walk(doc, ast.NodeVisitorFunc(f))
	return hs
}
