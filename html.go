package tailwind

import (
	"bytes"
	"os"

	"golang.org/x/net/html"
)

// Head builds the nodes a page needs in its <head> to load the styles of
// this build: a single <style> element with the compiled stylesheet after
// a release build, or the generated config script followed by the cdn
// script tag for a jit build. the config script has to come first so it
// is evaluated before the cdn script runs.
func (r *Result) Head() ([]*html.Node, error) {
	if !r.Jit {
		style, err := os.ReadFile(r.StylePath)

		if err != nil {
			return nil, err
		}

		node := &html.Node{Type: html.ElementNode, Data: "style"}
		node.AppendChild(&html.Node{Type: html.TextNode, Data: string(style)})

		return []*html.Node{node}, nil
	}

	config, err := os.ReadFile(r.JitConfigPath)

	if err != nil {
		return nil, err
	}

	configNode := &html.Node{Type: html.ElementNode, Data: "script"}
	configNode.AppendChild(&html.Node{Type: html.TextNode, Data: string(config)})

	cdn := &html.Node{
		Type: html.ElementNode,
		Data: "script",
		Attr: []html.Attribute{{Key: "src", Val: r.JitSrc}},
	}

	return []*html.Node{configNode, cdn}, nil
}

// Inject appends the head nodes to the <head> element of a parsed document
func (r *Result) Inject(document *html.Node) error {
	nodes, err := r.Head()

	if err != nil {
		return err
	}

	appendToHead(document, nodes)

	return nil
}

func appendToHead(n *html.Node, nodes []*html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for _, node := range nodes {
			n.AppendChild(node)
		}

		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendToHead(c, nodes)
	}
}

// Snippet renders the head nodes to a markup string for templates that
// build their pages from raw html
func (r *Result) Snippet() (string, error) {
	nodes, err := r.Head()

	if err != nil {
		return "", err
	}

	buffer := bytes.NewBufferString("")

	for _, node := range nodes {
		if err := html.Render(buffer, node); err != nil {
			return "", err
		}
	}

	return buffer.String(), nil
}
