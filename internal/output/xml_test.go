package output_test

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/arbor/internal/output"
)

// parsedNode mirrors the serialized element shape for round-trip checks.
type parsedNode struct {
	Name     string       `xml:"name,attr"`
	Children []parsedNode `xml:"node"`
}

// TestRenderXMLDocument verifies the declaration, indentation, naming, and
// child order of the XML document.
func TestRenderXMLDocument(testingHandle *testing.T) {
	renderedDocument, renderError := output.RenderXML(sampleResult())
	if renderError != nil {
		testingHandle.Fatalf("RenderXML error: %v", renderError)
	}

	if !strings.HasPrefix(renderedDocument, xml.Header) {
		testingHandle.Fatalf("expected the standard XML declaration, got:\n%q", renderedDocument)
	}
	if !strings.Contains(renderedDocument, "\n  <node name=\"docs/\">") {
		testingHandle.Fatalf("expected a two-space indented directory element, got:\n%q", renderedDocument)
	}
	if strings.Contains(renderedDocument, "Directories") || strings.Contains(renderedDocument, "Files") {
		testingHandle.Fatalf("summary counts must not appear in XML output")
	}

	var parsedRoot parsedNode
	if unmarshalError := xml.Unmarshal([]byte(renderedDocument), &parsedRoot); unmarshalError != nil {
		testingHandle.Fatalf("parsing rendered XML: %v", unmarshalError)
	}
	if parsedRoot.Name != "project/" {
		testingHandle.Fatalf("expected root element name project/, got %q", parsedRoot.Name)
	}
	if len(parsedRoot.Children) != 2 {
		testingHandle.Fatalf("expected 2 child elements, got %d", len(parsedRoot.Children))
	}
	if parsedRoot.Children[0].Name != "docs/" || parsedRoot.Children[1].Name != "readme.md" {
		testingHandle.Fatalf("child order not preserved: %+v", parsedRoot.Children)
	}
	if len(parsedRoot.Children[0].Children) != 1 || parsedRoot.Children[0].Children[0].Name != "guide.txt" {
		testingHandle.Fatalf("nested hierarchy not reproduced: %+v", parsedRoot.Children[0])
	}
}

// TestWriteXMLFile verifies that the output directory is created and the
// document written beneath it.
func TestWriteXMLFile(testingHandle *testing.T) {
	outputDirectory := filepath.Join(testingHandle.TempDir(), output.DefaultXMLDirectoryName)

	writtenPath, writeError := output.WriteXMLFile(sampleResult(), outputDirectory, "tree.xml")
	if writeError != nil {
		testingHandle.Fatalf("WriteXMLFile error: %v", writeError)
	}
	if writtenPath != filepath.Join(outputDirectory, "tree.xml") {
		testingHandle.Fatalf("unexpected output path %s", writtenPath)
	}

	writtenDocument, readError := os.ReadFile(writtenPath)
	if readError != nil {
		testingHandle.Fatalf("reading written document: %v", readError)
	}
	if !strings.HasPrefix(string(writtenDocument), xml.Header) {
		testingHandle.Fatalf("written document lost the XML declaration")
	}
	var parsedRoot parsedNode
	if unmarshalError := xml.Unmarshal(writtenDocument, &parsedRoot); unmarshalError != nil {
		testingHandle.Fatalf("parsing written document: %v", unmarshalError)
	}
	if parsedRoot.Name != "project/" {
		testingHandle.Fatalf("unexpected root element name %q", parsedRoot.Name)
	}
}
