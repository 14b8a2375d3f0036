// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"path"
	"sort"
	"strings"
)

// =============================================================================
// VIRTUAL FILESYSTEM
// =============================================================================

// VFS is the small static tree the filesystem command group walks. No
// real filesystem access ever happens; the tree exists so ls/cd/cat/tree
// behave coherently with each other.
type VFS struct {
	root *vnode
	home string
}

type vnode struct {
	name     string
	dir      bool
	content  string
	children map[string]*vnode
}

func dirNode(name string, children ...*vnode) *vnode {
	n := &vnode{name: name, dir: true, children: make(map[string]*vnode)}
	for _, c := range children {
		n.children[c.name] = c
	}
	return n
}

func fileNode(name, content string) *vnode {
	return &vnode{name: name, content: content}
}

// NewVFS builds the session's filesystem image.
func NewVFS() *VFS {
	root := dirNode("",
		dirNode("home",
			dirNode("guest",
				fileNode("readme.txt", "Welcome to neuOS.\nType 'help' to see what this terminal can do.\n"),
				fileNode(".profile", "export PATH=/usr/local/bin:/usr/bin:/bin\n"),
				dirNode("projects",
					fileNode("neuos.md", "# neuOS\nA desktop that lives in your browser.\n"),
					fileNode("life.go", "// Conway's Game of Life, 64x64 toroidal grid.\n"),
				),
				dirNode("music",
					fileNode("ambient-01.ogg", ""),
					fileNode("chiptune-07.ogg", ""),
				),
			),
		),
		dirNode("etc",
			fileNode("hostname", "neuos\n"),
			fileNode("os-release", "NAME=neuOS\nPRETTY_NAME=\"neuOS 2.4 (glass)\"\n"),
		),
		dirNode("var",
			dirNode("log",
				fileNode("boot.log", "[ OK ] Reached target Glass Compositor.\n[ OK ] Started Particle Field.\n"),
			),
		),
		dirNode("usr",
			dirNode("bin"),
		),
	)
	return &VFS{root: root, home: "/home/guest"}
}

// Home returns the session's home directory path.
func (fs *VFS) Home() string {
	return fs.home
}

// lookup resolves an absolute cleaned path to a node.
func (fs *VFS) lookup(abs string) *vnode {
	if abs == "/" {
		return fs.root
	}
	node := fs.root
	for _, part := range strings.Split(strings.Trim(abs, "/"), "/") {
		if !node.dir {
			return nil
		}
		child, ok := node.children[part]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Resolve turns a possibly-relative path into a cleaned absolute path,
// honoring "~" and the given working directory.
func (fs *VFS) Resolve(cwd, p string) string {
	switch {
	case p == "" || p == "~":
		return fs.home
	case strings.HasPrefix(p, "~/"):
		p = fs.home + p[1:]
	case !strings.HasPrefix(p, "/"):
		p = cwd + "/" + p
	}
	return path.Clean(p)
}

// IsDir reports whether abs names an existing directory.
func (fs *VFS) IsDir(abs string) bool {
	n := fs.lookup(abs)
	return n != nil && n.dir
}

// Exists reports whether abs names any node.
func (fs *VFS) Exists(abs string) bool {
	return fs.lookup(abs) != nil
}

// ReadFile returns the content of a file node.
func (fs *VFS) ReadFile(abs string) (string, bool) {
	n := fs.lookup(abs)
	if n == nil || n.dir {
		return "", false
	}
	return n.content, true
}

// ListDir returns the entries of a directory, directories suffixed with
// "/", sorted.
func (fs *VFS) ListDir(abs string) ([]string, bool) {
	n := fs.lookup(abs)
	if n == nil || !n.dir {
		return nil, false
	}
	entries := make([]string, 0, len(n.children))
	for _, c := range n.children {
		name := c.name
		if c.dir {
			name += "/"
		}
		entries = append(entries, name)
	}
	sort.Strings(entries)
	return entries, true
}

// Tree renders the subtree rooted at abs in `tree`-style ASCII.
func (fs *VFS) Tree(abs string) (string, bool) {
	n := fs.lookup(abs)
	if n == nil {
		return "", false
	}
	var b strings.Builder
	label := abs
	if label == "" {
		label = "/"
	}
	b.WriteString(label + "\n")
	writeTree(&b, n, "")
	return b.String(), true
}

func writeTree(b *strings.Builder, n *vnode, prefix string) {
	if !n.dir {
		return
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		child := n.children[name]
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(names)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		b.WriteString(prefix + connector + name + "\n")
		writeTree(b, child, childPrefix)
	}
}
