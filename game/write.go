package game

import (
	"bufio"
	"fmt"
	"io"
)

// Write serializes the tree in the line format understood by Read.
func Write(w io.Writer, root *Node) error {
	if root == nil {
		return nil
	}

	buf := bufio.NewWriter(w)
	var err error
	Walk(root, func(node *Node, _ int) {
		if err != nil {
			return
		}
		err = writeLine(buf, node)
	})
	if err != nil {
		return err
	}
	return buf.Flush()
}

func writeLine(w *bufio.Writer, node *Node) error {
	if len(node.Children) > 9 {
		return fmt.Errorf("node %q has %d children, at most 9 can be encoded", node.Name, len(node.Children))
	}

	var err error
	if node.Leaf {
		if len(node.Children) > 0 {
			return fmt.Errorf("leaf %q has children", node.Name)
		}
		if node.Value < MinLeafValue || node.Value > MaxLeafValue {
			return fmt.Errorf("leaf %q has value %d outside [%d, %d]", node.Name, node.Value, MinLeafValue, MaxLeafValue)
		}
		_, err = fmt.Fprintf(w, "01%d%s\n", node.Value+1, node.Name)
	} else {
		_, err = fmt.Fprintf(w, "%d0%s\n", len(node.Children), node.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to write node %q: %w", node.Name, err)
	}
	return nil
}
