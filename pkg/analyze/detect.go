package analyze

import (
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

const anonymousParentName = "AnonymousFunction"

// Detect walks a parsed syntax tree and returns the nested components.
//
// Every function declaration is a candidate parent. Inside each parent's
// sub-tree, a nested function declaration is reported when its name starts
// with an uppercase letter and one of its top-level statements returns a JSX
// element. A nested variable declarator whose value is an arrow function is
// reported when the arrow returns a JSX element, whatever its name.
//
// A function nested two levels deep is reported once for each enclosing
// function declaration.
func Detect(root *sitter.Node, src []byte, filePath string) []*Finding {
	d := &detector{
		src:      src,
		filePath: filePath,
	}
	d.visitParent(root)
	return d.findings
}

type detector struct {
	src      []byte
	filePath string
	findings []*Finding
}

func (d *detector) visitParent(node *sitter.Node) {
	if isFunctionDeclaration(node) {
		parentName := functionName(node, d.src)
		if parentName == "" {
			parentName = anonymousParentName
		}
		eachNamedChild(node, func(child *sitter.Node) {
			d.visitNested(child, parentName)
		})
	}
	eachNamedChild(node, d.visitParent)
}

func (d *detector) visitNested(node *sitter.Node, parentName string) {
	switch {
	case isFunctionDeclaration(node):
		if looksLikeComponent(node, d.src) {
			d.add(node, parentName)
		}
	case isVariableDeclaration(node):
		eachNamedChild(node, func(declarator *sitter.Node) {
			if declarator.Type() == "variable_declarator" && isComponentArrow(declarator) {
				d.add(declarator, parentName)
			}
		})
	}
	eachNamedChild(node, func(child *sitter.Node) {
		d.visitNested(child, parentName)
	})
}

func (d *detector) add(node *sitter.Node, parentName string) {
	d.findings = append(d.findings, &Finding{
		Code:       node.Content(d.src),
		Line:       int(node.StartPoint().Row) + 1,
		ParentName: parentName,
		FilePath:   d.filePath,
	})
}

func eachNamedChild(node *sitter.Node, fn func(*sitter.Node)) {
	for i := range int(node.NamedChildCount()) {
		if child := node.NamedChild(i); child != nil {
			fn(child)
		}
	}
}

// isFunctionDeclaration reports whether node declares a function statement.
// `export default function () {}` has no name and is parsed as an expression
// under the export statement, so it is accepted there.
func isFunctionDeclaration(node *sitter.Node) bool {
	if !node.IsNamed() {
		return false
	}
	switch node.Type() {
	case "function_declaration", "generator_function_declaration":
		return true
	case "function_expression", "function", "generator_function":
		parent := node.Parent()
		return parent != nil && parent.Type() == "export_statement"
	default:
		return false
	}
}

func isVariableDeclaration(node *sitter.Node) bool {
	switch node.Type() {
	case "lexical_declaration", "variable_declaration":
		return true
	default:
		return false
	}
}

func functionName(node *sitter.Node, src []byte) string {
	name := node.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	return name.Content(src)
}

func looksLikeComponent(node *sitter.Node, src []byte) bool {
	name := functionName(node, src)
	if name == "" {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return false
	}
	body := node.ChildByFieldName("body")
	return body != nil && body.Type() == "statement_block" && returnsJSX(body)
}

// isComponentArrow reports whether a declarator binds an identifier to an
// arrow function that returns a JSX element. The name's casing isn't checked.
func isComponentArrow(declarator *sitter.Node) bool {
	name := declarator.ChildByFieldName("name")
	if name == nil || name.Type() != "identifier" {
		return false
	}
	value := unwrapParens(declarator.ChildByFieldName("value"))
	if value == nil || value.Type() != "arrow_function" {
		return false
	}
	body := value.ChildByFieldName("body")
	if body == nil {
		return false
	}
	if body.Type() == "statement_block" {
		return returnsJSX(body)
	}
	return isJSXElement(body)
}

// returnsJSX reports whether one of the block's own statements returns a JSX
// element. Returns nested in if or loop bodies don't count.
func returnsJSX(block *sitter.Node) bool {
	for i := range int(block.NamedChildCount()) {
		stmt := block.NamedChild(i)
		if stmt == nil || stmt.Type() != "return_statement" {
			continue
		}
		if isJSXElement(firstExpression(stmt)) {
			return true
		}
	}
	return false
}

// isJSXElement reports whether node is literally a JSX element.
// Parentheses are transparent. Fragments and expressions that merely evaluate
// to an element are not elements.
func isJSXElement(node *sitter.Node) bool {
	node = unwrapParens(node)
	if node == nil {
		return false
	}
	switch node.Type() {
	case "jsx_self_closing_element":
		return true
	case "jsx_element":
		return !isFragment(node)
	default:
		return false
	}
}

// isFragment reports whether a jsx_element is `<>...</>`, whose opening tag
// has neither a name nor attributes.
func isFragment(element *sitter.Node) bool {
	for i := range int(element.NamedChildCount()) {
		child := element.NamedChild(i)
		if child != nil && child.Type() == "jsx_opening_element" {
			return child.NamedChildCount() == 0
		}
	}
	return false
}

func unwrapParens(node *sitter.Node) *sitter.Node {
	for node != nil && node.Type() == "parenthesized_expression" {
		node = firstExpression(node)
	}
	return node
}

// firstExpression returns the first named child that isn't a comment.
func firstExpression(node *sitter.Node) *sitter.Node {
	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		if child != nil && child.Type() != "comment" {
			return child
		}
	}
	return nil
}
