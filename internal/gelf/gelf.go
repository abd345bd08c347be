package gelf

import (
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"
)

// Writer ships log lines to a GELF endpoint over UDP. It implements
// io.Writer so it can be multiplexed into log.SetOutput.
type Writer struct {
	conn     net.Conn
	hostname string
}

// New connects a GELF UDP writer to addr (e.g. "172.17.0.1:12201").
func New(addr string) (*Writer, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "zzpcheck-server"
	}

	return &Writer{conn: conn, hostname: hostname}, nil
}

// Write sends one GELF message per call. The standard log package writes
// lines like "2026/02/19 18:43:52 message\n"; the date prefix and trailing
// newline are stripped for a clean short_message.
func (w *Writer) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")

	// Go log date/time prefix is exactly 20 characters when present.
	short := msg
	if len(msg) > 20 && msg[4] == '/' && msg[7] == '/' && msg[10] == ' ' && msg[13] == ':' {
		short = msg[20:]
	}

	level := 6 // Informational
	if strings.Contains(short, "PANIC:") || strings.Contains(short, "Fatal") {
		level = 3 // Error
	} else if strings.HasPrefix(short, "Warning:") {
		level = 4 // Warning
	}

	record := map[string]interface{}{
		"version":       "1.1",
		"host":          w.hostname,
		"short_message": short,
		"timestamp":     float64(time.Now().UnixNano()) / 1e9,
		"level":         level,
		"_service":      "zzpcheck",
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return len(p), nil // don't fail the log call
	}

	// Fire-and-forget
	w.conn.Write(payload)
	return len(p), nil
}
