package file

import "testing"

func TestFormatSize(t *testing.T) {
	if got := FormatSize(0); got != "0 B" {
		t.Errorf("FormatSize(0) = %q, expected 0 B", got)
	}
	if got := FormatSize(-5); got != "0 B" {
		t.Errorf("FormatSize(-5) = %q, expected 0 B", got)
	}
	if got := FormatSize(512); got != "512.0 B" {
		t.Errorf("FormatSize(512) = %q, expected 512.0 B", got)
	}
	if got := FormatSize(1536); got != "1.5 KB" {
		t.Errorf("FormatSize(1536) = %q, expected 1.5 KB", got)
	}
	if got := FormatSize(1 << 20); got != "1.0 MB" {
		t.Errorf("FormatSize(1MiB) = %q, expected 1.0 MB", got)
	}
	if got := FormatSize(5 << 40); got != "5.0 TB" {
		t.Errorf("FormatSize(5TiB) = %q, expected 5.0 TB", got)
	}
	// Larger than TB stays in TB, the biggest supported unit
	if got := FormatSize(2 << 50); got != "2048.0 TB" {
		t.Errorf("FormatSize(2PiB) = %q, expected 2048.0 TB", got)
	}
}
