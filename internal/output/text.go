// Package output renders scan results as colorized text diagrams and as XML
// documents.
package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/arbor/internal/types"
	"github.com/temirov/arbor/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directoriesSegmentFormat = "Directories: %d, "
	filesSegmentFormat       = "Files: %d"
	truncationNotice         = "Output limited to 200 elements."
)

// Highlight styles for the root, directory, file, and warning roles. The
// styles degrade to the unmodified text when the terminal profile offers no
// color support, so the rendered content itself never changes.
var (
	rootStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	directoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	fileStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderText produces the indented tree diagram with the summary footer. The
// header names the root entry itself; every other node appears with a branch
// connector under its parent in stored child order.
func RenderText(result *types.Result, configuration types.Config) string {
	var buffer bytes.Buffer
	buffer.WriteString(rootStyle.Render(result.Root.Name))
	buffer.WriteString("\n")
	writeChildren(&buffer, result.Root, result.Root.Path, "", configuration)
	buffer.WriteString("\n")
	buffer.WriteString(directoryStyle.Render(fmt.Sprintf(directoriesSegmentFormat, result.DirectoryCount)))
	buffer.WriteString(fileStyle.Render(fmt.Sprintf(filesSegmentFormat, result.FileCount)))
	if result.Truncated {
		buffer.WriteString("\n")
		buffer.WriteString(warningStyle.Render(truncationNotice))
	}
	return buffer.String()
}

// writeChildren appends one line per child of node, extending the branch
// prefix for the child's own descendants.
func writeChildren(buffer *bytes.Buffer, node *types.Node, rootPath string, branchPrefix string, configuration types.Config) {
	lastIndex := len(node.Children) - 1
	for childIndex, childNode := range node.Children {
		connector := treeBranchConnector
		descendantPrefix := branchPrefix + treeBranchPadding
		if childIndex == lastIndex {
			connector = treeLastConnector
			descendantPrefix = branchPrefix + treeLastPadding
		}

		label := childNode.Name
		if configuration.ShowRelativePath {
			label = utils.RelativeLabel(childNode.Path, rootPath)
		}
		labelStyle := directoryStyle
		if !childNode.IsDirectory() {
			labelStyle = fileStyle
		}

		buffer.WriteString(branchPrefix)
		buffer.WriteString(connector)
		buffer.WriteString(labelStyle.Render(label))
		buffer.WriteString("\n")
		writeChildren(buffer, childNode, rootPath, descendantPrefix, configuration)
	}
}
