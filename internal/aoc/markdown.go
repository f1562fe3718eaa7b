// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import (
	"strings"

	"golang.org/x/net/html"
)

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && strings.Contains(" "+a.Val+" ", " "+class+" ") {
			return true
		}
	}
	return false
}

func isDayDesc(n *html.Node) bool {
	return isElement(n, "article") && hasClass(n, "day-desc")
}

// findAll returns the outermost nodes under n matching match, in document order.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// plainText concatenates the text under n.
func plainText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// markdown renders a puzzle description article.
// Only the handful of elements puzzle pages use are translated; everything
// else contributes its text.
func markdown(n *html.Node) string {
	var sb strings.Builder
	renderMarkdown(n, &sb)
	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	blank := true
	for _, l := range lines {
		l = strings.TrimRight(l, " ")
		if l == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func renderMarkdown(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "h2":
			sb.WriteString("\n\n## ")
			sb.WriteString(strings.TrimSpace(plainText(n)))
			sb.WriteString("\n\n")
			return
		case "pre":
			sb.WriteString("\n\n```\n")
			sb.WriteString(strings.TrimRight(plainText(n), "\n"))
			sb.WriteString("\n```\n\n")
			return
		case "p", "ul":
			sb.WriteString("\n\n")
		case "li":
			sb.WriteString("\n- ")
		case "code":
			sb.WriteString("`")
		case "em":
			sb.WriteString("**")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderMarkdown(c, sb)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "ul":
			sb.WriteString("\n\n")
		case "code":
			sb.WriteString("`")
		case "em":
			sb.WriteString("**")
		}
	}
}
