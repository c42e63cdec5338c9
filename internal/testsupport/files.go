package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// DefaultSpreadsheetSize comfortably clears the scanner's minimum size check.
const DefaultSpreadsheetSize = 4 * 1024

// WriteSpreadsheet creates a fake xlsx-style file at path: a real ZIP
// signature followed by filler bytes up to size.
func WriteSpreadsheet(t testing.TB, path string, size int64) {
	t.Helper()
	writeSigned(t, path, []byte{0x50, 0x4b, 0x03, 0x04}, size)
}

// WriteLegacySpreadsheet creates a fake xls-style file carrying the OLE
// signature.
func WriteLegacySpreadsheet(t testing.TB, path string, size int64) {
	t.Helper()
	writeSigned(t, path, []byte{0xd0, 0xcf, 0x11, 0xe0}, size)
}

// WriteFile fills path with size bytes of a repeating pattern and no
// spreadsheet signature.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()
	writeSigned(t, path, nil, size)
}

func writeSigned(t testing.TB, path string, signature []byte, size int64) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	written := int64(0)
	if len(signature) > 0 {
		if _, err := f.Write(signature); err != nil {
			t.Fatalf("write signature %s: %v", path, err)
		}
		written = int64(len(signature))
	}

	buf := make([]byte, 32*1024)
	for i := range buf {
		buf[i] = 0x42
	}
	for written < size {
		chunk := int64(len(buf))
		if size-written < chunk {
			chunk = size - written
		}
		if _, err := f.Write(buf[:chunk]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		written += chunk
	}
}
