// Package types defines every cross‑package data structure used by the arbor CLI.
package types

import "sort"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
)

// UnlimitedDepth marks a scan configuration without a recursion depth limit.
const UnlimitedDepth = -1

// Node represents one filesystem entry discovered during a scan together with
// the entries found beneath it.
type Node struct {
	Path     string
	Name     string
	Type     string
	Children []*Node
}

// IsDirectory reports whether the node represents a directory.
func (node *Node) IsDirectory() bool {
	return node.Type == NodeTypeDirectory
}

// ChildCount returns the number of children currently attached to the node.
func (node *Node) ChildCount() int {
	return len(node.Children)
}

// InsertChild places child among the existing children so that the sequence
// stays ordered by ascending child count. The count is taken at insertion
// time, before the child's own subtree is expanded; children with equal counts
// keep their insertion order.
func (node *Node) InsertChild(child *Node) {
	childCount := child.ChildCount()
	insertionIndex := sort.Search(len(node.Children), func(position int) bool {
		return node.Children[position].ChildCount() > childCount
	})
	node.Children = append(node.Children, nil)
	copy(node.Children[insertionIndex+1:], node.Children[insertionIndex:])
	node.Children[insertionIndex] = child
}

// Result aggregates the outcome of a single tree build.
type Result struct {
	Root           *Node
	DirectoryCount int
	FileCount      int
	Truncated      bool
}

// Config carries the filter and rendering parameters for one scan. MaxDepth
// set to UnlimitedDepth disables depth limiting.
type Config struct {
	IncludeHidden    bool
	DirectoriesOnly  bool
	ShowRelativePath bool
	MaxDepth         int
	SuppressGuides   bool
}

// DefaultConfig returns the configuration used when no flags are provided.
func DefaultConfig() Config {
	return Config{MaxDepth: UnlimitedDepth}
}
