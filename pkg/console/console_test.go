package console

import (
	"bytes"
	"testing"
)

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Info("Starting copying contents")
	p.Success("a.txt - read successfully")
	p.Warning("clipboard unavailable")

	want := "Starting copying contents\na.txt - read successfully\nclipboard unavailable\n"
	if buf.String() != want {
		t.Fatalf("output = %q; want %q", buf.String(), want)
	}
}

func TestNilPrinterIsSilent(t *testing.T) {
	var p *Printer
	p.Info("ignored")
}
