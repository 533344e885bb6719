package output

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/arbor/internal/types"
)

const (
	xmlIndentPrefix = ""
	xmlIndentSpacer = "  "

	directoryNameSuffix = "/"

	// DefaultXMLDirectoryName is the directory XML files are written into when
	// the configuration names no other location.
	DefaultXMLDirectoryName = "XML"

	// errorCreateOutputDirectoryFormat is used when the output directory cannot be created.
	errorCreateOutputDirectoryFormat = "creating output directory %s: %w"
	// errorWriteXMLFileFormat is used when the XML document cannot be written.
	errorWriteXMLFileFormat = "writing XML file %s: %w"
)

// xmlNode mirrors one scan node as a nested element carrying a name attribute.
type xmlNode struct {
	XMLName  xml.Name  `xml:"node"`
	Name     string    `xml:"name,attr"`
	Children []xmlNode `xml:"node"`
}

// buildXMLNode converts a scan node into its XML form. Directory names carry a
// trailing slash; children keep the stored child order.
func buildXMLNode(node *types.Node) xmlNode {
	elementName := node.Name
	if node.IsDirectory() {
		elementName += directoryNameSuffix
	}
	element := xmlNode{Name: elementName}
	for _, childNode := range node.Children {
		element.Children = append(element.Children, buildXMLNode(childNode))
	}
	return element
}

// RenderXML serializes the tree hierarchy as a pretty-printed XML document.
// Counts and the truncation marker are deliberately absent from the document.
func RenderXML(result *types.Result) (string, error) {
	document := buildXMLNode(result.Root)
	encoded, xmlMarshalError := xml.MarshalIndent(document, xmlIndentPrefix, xmlIndentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xml.Header + string(encoded) + "\n", nil
}

// WriteXMLFile renders the tree and writes it as UTF-8 text under the output
// directory, creating the directory when missing. It returns the path of the
// written file.
func WriteXMLFile(result *types.Result, outputDirectory string, fileName string) (string, error) {
	if outputDirectory == "" {
		outputDirectory = DefaultXMLDirectoryName
	}
	renderedDocument, renderError := RenderXML(result)
	if renderError != nil {
		return "", renderError
	}
	if makeDirectoryError := os.MkdirAll(outputDirectory, 0o755); makeDirectoryError != nil {
		return "", fmt.Errorf(errorCreateOutputDirectoryFormat, outputDirectory, makeDirectoryError)
	}
	outputPath := filepath.Join(outputDirectory, fileName)
	if writeError := os.WriteFile(outputPath, []byte(renderedDocument), 0o644); writeError != nil {
		return "", fmt.Errorf(errorWriteXMLFileFormat, outputPath, writeError)
	}
	return outputPath, nil
}
