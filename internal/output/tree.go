package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn aligns descriptions.
	descriptionColumn = 40
)

type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

func (n *treeNode) child(name string, isDir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name, isDir: isDir}
	n.children = append(n.children, c)
	return c
}

// RenderFileTree renders files (relative paths mapped to descriptions) below
// a root directory name. Directories come first, then files, each sorted.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: strings.TrimSuffix(rootName, "/"), isDir: true}
	for p, desc := range files {
		parts := strings.Split(filepath.ToSlash(p), "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.child(part, !last)
			if last {
				current.description = desc
			}
		}
	}

	sortTree(root)

	var sb strings.Builder
	styles := GetStyles()
	sb.WriteString(styles.Bold.Render(root.name + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, styles, root, "")
	return sb.String()
}

func sortTree(n *treeNode) {
	sort.Slice(n.children, func(i, j int) bool {
		if n.children[i].isDir != n.children[j].isDir {
			return n.children[i].isDir
		}
		return n.children[i].name < n.children[j].name
	})
	for _, c := range n.children {
		sortTree(c)
	}
}

func renderChildren(sb *strings.Builder, styles *Styles, n *treeNode, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1

		connector, childPrefix := treeEdge, prefix+treeVert
		if last {
			connector, childPrefix = treeLast, prefix+treeSpace
		}

		name := c.name
		if c.isDir {
			name += "/"
		}
		line := prefix + connector + name
		if c.description != "" {
			pad := descriptionColumn - len([]rune(line))
			if pad < 2 {
				pad = 2
			}
			line += strings.Repeat(" ", pad) + styles.Muted.Render(c.description)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		renderChildren(sb, styles, c, childPrefix)
	}
}
