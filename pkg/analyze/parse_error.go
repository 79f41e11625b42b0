package analyze

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// ParseError reports the first syntax error in a file.
// Line and Column are 1-based.
type ParseError struct {
	FilePath string
	Line     int
	Column   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error", e.FilePath, e.Line, e.Column)
}

func newParseError(filePath string, root *sitter.Node) *ParseError {
	node := firstErrorNode(root)
	if node == nil {
		node = root
	}
	pt := node.StartPoint()
	return &ParseError{
		FilePath: filePath,
		Line:     int(pt.Row) + 1,
		Column:   int(pt.Column) + 1,
	}
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := range int(node.ChildCount()) {
		if n := firstErrorNode(node.Child(i)); n != nil {
			return n
		}
	}
	return nil
}
