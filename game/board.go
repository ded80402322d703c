package game

import (
	"fmt"
	"io"
	"strings"
)

// Tic-tac-toe boards are encoded row by row in node names, with EmptyCell
// marking an unoccupied square.
const (
	BoardSize  = 3
	BoardCells = BoardSize * BoardSize
	EmptyCell  = '_'
)

const boardRule = "-------"

// DrawBoard writes the board encoded by name as an ASCII grid.
func DrawBoard(w io.Writer, name string) error {
	board, err := RenderBoard(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, board)
	return err
}

func RenderBoard(name string) (string, error) {
	if len(name) < BoardCells {
		return "", fmt.Errorf("board state %q has %d cells, need %d", name, len(name), BoardCells)
	}

	var sb strings.Builder
	sb.WriteString(boardRule + "\n")
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte('|')
		for col := 0; col < BoardSize; col++ {
			c := name[col+BoardSize*row]
			if c == EmptyCell {
				c = ' '
			}
			sb.WriteByte(c)
			sb.WriteByte('|')
		}
		sb.WriteString("\n" + boardRule + "\n")
	}
	return sb.String(), nil
}
