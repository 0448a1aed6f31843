package source

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

// readChunks reads r with a buffer of size n and returns every chunk.
func readChunks(t *testing.T, r io.Reader, n int) []string {
	t.Helper()
	var chunks []string
	buf := make([]byte, n)
	for i := 0; ; i++ {
		if i > 1<<16 {
			t.Fatal("reader did not reach EOF")
		}
		m, err := r.Read(buf)
		if m > 0 {
			chunks = append(chunks, string(buf[:m]))
		}
		if err == io.EOF {
			return chunks
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}
}

func TestOpen(t *testing.T) {
	content := "int x = 10;\nx++;\n"
	file, err := Open(writeFile(t, content))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	if string(file.Bytes()) != content {
		t.Errorf("Bytes() = %q, want %q", file.Bytes(), content)
	}
	got, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != content {
		t.Errorf("ReadAll() = %q, want %q", got, content)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	file, err := Open(writeFile(t, ""))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	if len(file.Bytes()) != 0 {
		t.Errorf("Bytes() returned %d bytes for an empty file", len(file.Bytes()))
	}
	if n, err := file.Read(make([]byte, 8)); n != 0 || err != io.EOF {
		t.Errorf("Read() = %d, %v, want 0, EOF", n, err)
	}
}

func TestOpen_ByteOrderMark(t *testing.T) {
	file, err := Open(writeFile(t, "\xEF\xBB\xBFa = b;"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	if got := string(file.Bytes()); got != "a = b;" {
		t.Errorf("Bytes() = %q, want %q", got, "a = b;")
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() error = %v, want not-exist", err)
	}
}

func TestFile_ReadKeepsRunesWhole(t *testing.T) {
	content := strings.Repeat(`s = "é€𝄞";`+"\n", 50)
	file, err := Open(writeFile(t, content))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	chunks := readChunks(t, file, 7)
	for i, chunk := range chunks {
		if !utf8.ValidString(chunk) {
			t.Fatalf("chunk %d %q splits a rune", i, chunk)
		}
	}
	if got := strings.Join(chunks, ""); got != content {
		t.Errorf("chunks reproduce %q, want %q", got, content)
	}
}

func TestRuneReader(t *testing.T) {
	content := strings.Repeat(`x = "é€𝄞" + 'ü';`, 300)

	tests := []struct {
		name   string
		reader io.Reader
		size   int
	}{
		{"one byte", iotest.OneByteReader(strings.NewReader(content)), 4096},
		{"half", iotest.HalfReader(strings.NewReader(content)), 4096},
		{"data with EOF", iotest.DataErrReader(strings.NewReader(content)), 4096},
		{"small buffer", iotest.OneByteReader(strings.NewReader(content)), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := readChunks(t, NewRuneReader(tt.reader), tt.size)
			for i, chunk := range chunks {
				if !utf8.ValidString(chunk) {
					t.Fatalf("chunk %d %q splits a rune", i, chunk)
				}
			}
			if got := strings.Join(chunks, ""); got != content {
				t.Errorf("chunks do not reproduce the input")
			}
		})
	}
}

func TestRuneReader_TruncatedInput(t *testing.T) {
	// A trailing sequence that never completes is passed on at EOF
	content := "ab\xE2\x82"
	got, err := io.ReadAll(NewRuneReader(iotest.OneByteReader(strings.NewReader(content))))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != content {
		t.Errorf("ReadAll() = %q, want %q", got, content)
	}
}

func TestRuneReader_Error(t *testing.T) {
	_, err := io.ReadAll(NewRuneReader(iotest.TimeoutReader(strings.NewReader("abc"))))
	if !errors.Is(err, iotest.ErrTimeout) {
		t.Errorf("ReadAll() error = %v, want %v", err, iotest.ErrTimeout)
	}
}
