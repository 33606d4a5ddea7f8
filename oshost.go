//go:build !windows

package logo

import (
	"bufio"
	"io"
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

// OSHost is the default Host: line-buffered reads over stdin for
// readword/readlist, and a raw-mode single-byte read for readchar,
// restored to cooked mode afterwards. The raw/cooked switch is
// grounded on the same termios sequence a bare terminal emulator
// needs, generalised here to flip in and out around single reads
// rather than holding the terminal raw for the process lifetime.
type OSHost struct {
	in  *bufio.Reader
	out io.Writer
	fd  uintptr
}

// NewOSHost creates a Host backed by the process's stdin/stdout.
func NewOSHost() *OSHost {
	return &OSHost{in: bufio.NewReader(os.Stdin), out: os.Stdout, fd: os.Stdin.Fd()}
}

func (h *OSHost) WriteString(s string) error {
	_, err := io.WriteString(h.out, s)
	if err != nil {
		return errors.Wrap(err, "write to host transcript failed")
	}
	return nil
}

func (h *OSHost) ReadLine() (string, bool, error) {
	line, err := h.in.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line != "" {
				return trimNewline(line), true, nil
			}
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "read line from host failed")
	}
	return trimNewline(line), true, nil
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}

func (h *OSHost) ReadChar() (byte, bool, error) {
	restore, err := h.setRawIO()
	if err != nil {
		// Not an interactive terminal (redirected input, a pipe in
		// tests): fall back to the buffered reader.
		b, rerr := h.in.ReadByte()
		if rerr != nil {
			if rerr == io.EOF {
				return 0, false, nil
			}
			return 0, false, errors.Wrap(rerr, "read char from host failed")
		}
		return b, true, nil
	}
	defer restore()

	var buf [1]byte
	n, rerr := os.Stdin.Read(buf[:])
	if n == 0 {
		if rerr == io.EOF {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(rerr, "read char from host failed")
	}
	return buf[0], true, nil
}

// setRawIO switches the controlling terminal to raw mode (no canonical
// line buffering, no echo) for the duration of a single readchar,
// grounded on the same Tcgetattr/Tcsetattr sequence a terminal
// emulator's input loop uses.
func (h *OSHost) setRawIO() (func(), error) {
	var tios syscall.Termios
	if err := termios.Tcgetattr(h.fd, &tios); err != nil {
		return nil, errors.Wrap(err, "Tcgetattr failed")
	}
	raw := tios
	raw.Iflag &^= syscall.IGNBRK | syscall.ISTRIP | syscall.IXON | syscall.IXOFF
	raw.Iflag |= syscall.BRKINT | syscall.IGNPAR
	raw.Lflag &^= syscall.ICANON | syscall.IEXTEN | syscall.ECHO
	raw.Cc[syscall.VMIN] = 1
	raw.Cc[syscall.VTIME] = 0
	if err := termios.Tcsetattr(h.fd, termios.TCSANOW, &raw); err != nil {
		termios.Tcsetattr(h.fd, termios.TCSANOW, &tios)
		return nil, errors.Wrap(err, "Tcsetattr failed")
	}
	return func() {
		termios.Tcsetattr(h.fd, termios.TCSANOW, &tios)
	}, nil
}
