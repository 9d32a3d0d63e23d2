package main

import (
	"io"

	"github.com/laher/markdownfmt/markdown"
	"github.com/russross/blackfriday/v2"
)

func newRenderer(terminal bool) blackfriday.Renderer {
	return markdown.NewRenderer(&markdown.Options{Terminal: terminal})
}

func render(r blackfriday.Renderer, w io.Writer, ast *blackfriday.Node) {
	r.RenderHeader(w, ast)
	ast.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return r.RenderNode(w, node, entering)
	})
	r.RenderFooter(w, ast)
}
