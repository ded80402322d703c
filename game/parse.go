package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

const maxLineSize = 1 << 20

var (
	ErrFormat    = errors.New("malformed tree line")
	ErrTruncated = errors.New("file ended too soon")
)

// FormatError reports a line that does not follow the
// <childCount><leafFlag>[<valueDigit>]<name> layout.
type FormatError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Load reads the game tree stored in the file at path.
func Load(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree file: %w", err)
	}
	defer f.Close()

	root, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file %s: %w", path, err)
	}
	return root, nil
}

// Read parses a game tree serialized one node per line in depth-first
// order: a node's line is followed by each of its child subtrees in turn.
// Lines after the last node of the root's subtree are ignored. On failure
// no partial tree is returned.
func Read(r io.Reader) (*Node, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	lineNo := 0

	next := func() (*Node, int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, 0, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
			}
			return nil, 0, ErrTruncated
		}
		lineNo++
		return parseLine(scanner.Text(), lineNo)
	}

	root, declared, err := next()
	if err != nil {
		return nil, err
	}

	// Each frame tracks how many children its node still expects
	type frame struct {
		node    *Node
		pending int
	}
	stack := []frame{}
	if declared > 0 {
		stack = append(stack, frame{root, declared})
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pending == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		child, childDeclared, err := next()
		if err != nil {
			if errors.Is(err, ErrTruncated) {
				return nil, fmt.Errorf("%w: %d of %d children of %q read", err,
					len(top.node.Children), len(top.node.Children)+top.pending, top.node.Name)
			}
			return nil, err
		}
		top.node.Children = append(top.node.Children, child)
		top.pending--

		if childDeclared > 0 {
			stack = append(stack, frame{child, childDeclared})
		}
	}

	return root, nil
}

// parseLine decodes a single node line. The returned count is the number of
// child subtrees that follow the line.
func parseLine(line string, lineNo int) (*Node, int, error) {
	fail := func(reason string) (*Node, int, error) {
		return nil, 0, &FormatError{Line: lineNo, Text: line, Reason: reason}
	}

	if len(line) < 2 {
		return fail("line too short")
	}
	if !isDigit(line[0]) {
		return fail("child count is not a digit")
	}
	count := int(line[0] - '0')

	switch line[1] {
	case '0':
		node := &Node{
			Name:     line[2:],
			Children: make([]*Node, 0, count),
			Value:    NoValue,
		}
		return node, count, nil
	case '1':
		if count != 0 {
			return fail("leaf declares children")
		}
		if len(line) < 3 {
			return fail("leaf is missing its value")
		}
		if !isDigit(line[2]) {
			return fail("leaf value is not a digit")
		}
		// Values are stored shifted by one so they fit a single digit
		value := int(line[2]-'0') - 1
		if value < MinLeafValue || value > MaxLeafValue {
			return fail("leaf value out of range")
		}
		return NewLeaf(line[3:], value), 0, nil
	default:
		return fail("leaf flag must be '0' or '1'")
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
