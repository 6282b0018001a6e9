package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

var (
	ErrNotANumber = errors.New("input is not a number")
	ErrOutOfRange = errors.New("cell index out of range")
)

// Reader parses one move per line from the operator.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(in io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(in)}
}

// ReadMove reads the next line and parses it as a cell index in [0,8].
// ErrNotANumber and ErrOutOfRange are recoverable: the caller should
// print guidance and prompt again without touching the game. Any other
// error means the input stream is gone and the game cannot continue.
func (that *Reader) ReadMove() (int, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		return 0, apperror.ErrInputClosed
	}

	text := strings.TrimSpace(that.scanner.Text())

	cell, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}

	if cell < 0 || cell > 8 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, cell)
	}

	return cell, nil
}
