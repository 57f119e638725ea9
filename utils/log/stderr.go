package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/astaxie/beego/logs"
)

// adapterStderr is beego's console adapter pointed at stderr, so that log
// lines never mix with a tool's printed result.
const adapterStderr = "stderr"

var stderr io.Writer = os.Stderr

func init() {
	logs.Register(adapterStderr, func() logs.Logger {
		return &stderrWriter{out: stderr, Level: logs.LevelDebug}
	})
}

type stderrWriter struct {
	sync.Mutex
	out   io.Writer
	Level int `json:"level"`
}

func (w *stderrWriter) Init(config string) error {
	if config == "" {
		return nil
	}
	return json.Unmarshal([]byte(config), w)
}

func (w *stderrWriter) WriteMsg(when time.Time, msg string, level int) error {
	if level > w.Level {
		return nil
	}
	w.Lock()
	defer w.Unlock()
	_, err := fmt.Fprintf(w.out, "%s %s\n", when.Format("2006/01/02 15:04:05.000"), msg)
	return err
}

func (w *stderrWriter) Destroy() {}

func (w *stderrWriter) Flush() {}
