package scraper

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseGroups извлекает группы из списка формы выбора (ul>li с атрибутом value)
func parseGroups(r io.Reader) ([]Group, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse groups page: %w", err)
	}

	var groups []Group
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.DataAtom != atom.Li {
			continue
		}
		if n.Parent == nil || n.Parent.DataAtom != atom.Ul {
			continue
		}
		id, ok := attr(n, "value")
		if !ok {
			continue
		}
		groups = append(groups, Group{ID: id, Name: strings.TrimSpace(nodeText(n))})
	}

	return groups, nil
}

// parseTimetable возвращает тексты ячеек строк таблиц с классом timetable.
// Строки подписей колонок (только th, больше одной ячейки) пропускаются.
func parseTimetable(r io.Reader) ([][]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse timetable page: %w", err)
	}

	var rows [][]string
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.DataAtom != atom.Tr || !insideTimetable(n) {
			continue
		}

		var cells []string
		headerOnly := true
		for c := range n.ChildNodes() {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Td:
				headerOnly = false
			case atom.Th:
			default:
				continue
			}
			cells = append(cells, nodeText(c))
		}

		if len(cells) == 0 || (headerOnly && len(cells) > 1) {
			continue
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

func insideTimetable(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if hasClass(p, "timetable") {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	value, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(value) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// nodeText склеивает весь текст внутри узла
func nodeText(n *html.Node) string {
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
	}
	return sb.String()
}
