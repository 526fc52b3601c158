package log

import (
	"bufio"
	"io"
)

// StopOnInput returns a channel that is closed once a line (or EOF) is read
// from r. It is used to break out of open-ended light loops.
func StopOnInput(r io.Reader) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		reader := bufio.NewReader(r)
		for {
			str, err := reader.ReadString('\n')
			if err != nil || len(str) > 0 {
				return
			}
		}
	}()
	return done
}
