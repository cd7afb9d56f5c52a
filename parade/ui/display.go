package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card/color"
)

var (
	output io.Writer = color.Stdout
	delay            = int64(consts.DefaultDelay)
)

// SetOutput redirects everything the console prints.
func SetOutput(w io.Writer) {
	output = w
}

// SetDelay sets the pause after every printed line. Zero disables it.
func SetDelay(d time.Duration) {
	atomic.StoreInt64(&delay, int64(d))
}

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(output, args...)
	pause()
}

// Print writes text that already carries its own line breaks.
func Print(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(output, text)
	pause()
}

func pause() {
	if d := time.Duration(atomic.LoadInt64(&delay)); d > 0 {
		time.Sleep(d)
	}
}
