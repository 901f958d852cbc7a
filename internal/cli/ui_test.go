package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		icon  string
		text  string
	}{
		{"success", func(b *bytes.Buffer) { printSuccess(b, "wrote %d", 1) }, iconSuccess, "wrote 1"},
		{"error", func(b *bytes.Buffer) { printError(b, "bad %s", "isbn") }, iconError, "bad isbn"},
		{"warning", func(b *bytes.Buffer) { printWarning(b, "unknown option: %s", "-x") }, iconWarning, "unknown option: -x"},
		{"info", func(b *bytes.Buffer) { printInfo(b, "nothing to do") }, iconInfo, "nothing to do"},
		{"detail", func(b *bytes.Buffer) { printDetail(b, "path %s", "/tmp") }, "", "path /tmp"},
		{"file", func(b *bytes.Buffer) { printFile(b, "/tmp/config.toml") }, iconArrow, "/tmp/config.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			got := buf.String()
			if !strings.Contains(got, tt.icon) || !strings.Contains(got, tt.text) {
				t.Errorf("output = %q, want icon %q and text %q", got, tt.icon, tt.text)
			}
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("output = %q, want trailing newline", got)
			}
		})
	}
}
