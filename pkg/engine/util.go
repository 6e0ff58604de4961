package engine

import (
	"bufio"
	"context"
	"os"

	"github.com/seekerror/logw"
)

// ReadStdinLines reads stdin lines into a chan, one per line, until EOF. Async: a
// single-threaded protocol loop still processes them one at a time by ranging over the
// channel, since nothing else is ever sent concurrently.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}
