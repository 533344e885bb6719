// Package scan builds an in-memory directory tree from a filesystem root.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/arbor/internal/types"
)

const (
	// EntryLimit caps the total number of entries admitted into a single build.
	EntryLimit = 200

	hiddenDotPrefix    = "."
	hiddenDunderPrefix = "__"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorStatRootFormat is used when the scan root cannot be examined.
	errorStatRootFormat = "examining scan root %s: %w"
	// errorRootNotDirectoryFormat is used when the scan root is not a directory.
	errorRootNotDirectoryFormat = "scan root %s is not a directory"
	// errorReadDirectoryFormat is used when a directory listing fails.
	errorReadDirectoryFormat = "reading directory %s: %w"

	// notFoundMessageFormat is the user-facing diagnostic for a missing scan root.
	notFoundMessageFormat = "Directory '%s' does not exist."
)

// NotFoundError reports a scan root that does not resolve to an existing
// filesystem entry.
type NotFoundError struct {
	Path string
}

// Error returns the diagnostic naming the unresolved path.
func (notFoundError *NotFoundError) Error() string {
	return fmt.Sprintf(notFoundMessageFormat, notFoundError.Path)
}

// buildState carries the counters shared by every directory expansion of one
// build. Once truncated flips, no expansion anywhere creates further nodes.
type buildState struct {
	directoryCount int
	fileCount      int
	truncated      bool
}

// Build constructs the directory tree rooted at rootPath according to the
// provided configuration and returns the tree together with aggregate counts.
// It returns a NotFoundError when rootPath does not resolve to an existing
// entry.
func Build(rootPath string, configuration types.Config) (*types.Result, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	rootInformation, rootStatError := os.Stat(absoluteRootPath)
	if rootStatError != nil {
		if errors.Is(rootStatError, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: absoluteRootPath}
		}
		return nil, fmt.Errorf(errorStatRootFormat, absoluteRootPath, rootStatError)
	}
	if !rootInformation.IsDir() {
		return nil, fmt.Errorf(errorRootNotDirectoryFormat, absoluteRootPath)
	}

	rootNode := &types.Node{
		Path: absoluteRootPath,
		Name: filepath.Base(absoluteRootPath),
		Type: types.NodeTypeDirectory,
	}
	state := &buildState{}
	if expandError := expandDirectory(rootNode, 0, configuration, state); expandError != nil {
		return nil, expandError
	}

	return &types.Result{
		Root:           rootNode,
		DirectoryCount: state.directoryCount,
		FileCount:      state.fileCount,
		Truncated:      state.truncated,
	}, nil
}

// expandDirectory lists the entries of node, attaches the included ones in
// insertion-sorted order, and recurses into freshly attached directory
// children. A listing denied by permissions leaves the node without children.
func expandDirectory(node *types.Node, depth int, configuration types.Config, state *buildState) error {
	if state.truncated || depthLimitReached(depth, configuration.MaxDepth) {
		return nil
	}

	directoryEntries, readDirectoryError := os.ReadDir(node.Path)
	if readDirectoryError != nil {
		if errors.Is(readDirectoryError, fs.ErrPermission) {
			return nil
		}
		return fmt.Errorf(errorReadDirectoryFormat, node.Path, readDirectoryError)
	}

	for _, directoryEntry := range directoryEntries {
		if !shouldInclude(directoryEntry, configuration) {
			continue
		}
		recordEntry(directoryEntry, state)
		if state.truncated {
			break
		}
		childNode := &types.Node{
			Path: filepath.Join(node.Path, directoryEntry.Name()),
			Name: directoryEntry.Name(),
			Type: types.NodeTypeFile,
		}
		if directoryEntry.IsDir() {
			childNode.Type = types.NodeTypeDirectory
		}
		node.InsertChild(childNode)
	}

	for _, childNode := range node.Children {
		if !childNode.IsDirectory() {
			continue
		}
		if expandError := expandDirectory(childNode, depth+1, configuration, state); expandError != nil {
			return expandError
		}
	}
	return nil
}

// depthLimitReached reports whether a directory at the given depth may not be
// listed. The root listing is always produced, so a limit of zero behaves like
// a limit of one.
func depthLimitReached(depth int, maxDepth int) bool {
	if maxDepth < 0 || depth == 0 {
		return false
	}
	return depth >= maxDepth
}

// shouldInclude applies the hidden-entry and directories-only filters.
func shouldInclude(directoryEntry os.DirEntry, configuration types.Config) bool {
	entryName := directoryEntry.Name()
	if !configuration.IncludeHidden &&
		(strings.HasPrefix(entryName, hiddenDotPrefix) || strings.HasPrefix(entryName, hiddenDunderPrefix)) {
		return false
	}
	if configuration.DirectoriesOnly && !directoryEntry.IsDir() {
		return false
	}
	return true
}

// recordEntry counts an included entry and flips the truncation marker once
// the running total reaches the entry limit. The entry that trips the limit is
// counted but never materialized as a node.
func recordEntry(directoryEntry os.DirEntry, state *buildState) {
	if directoryEntry.IsDir() {
		state.directoryCount++
	} else {
		state.fileCount++
	}
	if state.directoryCount+state.fileCount >= EntryLimit {
		state.truncated = true
	}
}
