package main

import (
	"os"
)

// stdinInput owns standard input for the whole session. A reader
// goroutine feeds single bytes into a channel; the menu loop consumes
// them as lines while the skill check polls them as raw key events.
type stdinInput struct {
	keys chan byte
	done chan struct{}
}

func newStdinInput() *stdinInput {
	in := &stdinInput{
		keys: make(chan byte, 64),
		done: make(chan struct{}),
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(in.keys)
				return
			}
			if n == 0 {
				continue
			}
			select {
			case in.keys <- buf[0]:
			case <-in.done:
				return
			}
		}
	}()

	return in
}

// Ready reports whether a key event is available without blocking
func (in *stdinInput) Ready() bool {
	return len(in.keys) > 0
}

// ReadKey consumes one key event without blocking
func (in *stdinInput) ReadKey() (byte, bool) {
	select {
	case key, ok := <-in.keys:
		return key, ok
	default:
		return 0, false
	}
}

// ReadLine blocks until a full line is entered, returning it without
// the trailing newline
func (in *stdinInput) ReadLine() (string, bool) {
	var line []byte
	for {
		key, ok := <-in.keys
		if !ok {
			return string(line), len(line) > 0
		}
		switch key {
		case '\n':
			return string(line), true
		case '\r':
			// consumed; the paired newline ends the line
		default:
			line = append(line, key)
		}
	}
}

// Drain discards any keys buffered during a skill check so they do not
// leak into the next menu prompt
func (in *stdinInput) Drain() {
	for {
		select {
		case _, ok := <-in.keys:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Close stops the reader goroutine
func (in *stdinInput) Close() {
	close(in.done)
}
