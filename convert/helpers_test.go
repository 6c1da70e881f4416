package convert

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"ttc/config"
	"ttc/state"
)

const ttOpen = `<tt xmlns="http://www.w3.org/ns/ttml"` +
	` xmlns:tts="http://www.w3.org/ns/ttml#styling"` +
	` xmlns:ttp="http://www.w3.org/ns/ttml#parameter" xml:lang="en">`

func ttmlDoc(body string) string {
	return ttOpen + `<head><styling/><layout/></head><body><div>` + body + `</div></body></tt>`
}

var (
	helloDoc = ttmlDoc(`<p xml:id="c1" begin="00:00:01.000" end="00:00:02.500">Hello</p>`)
	twoDoc   = ttmlDoc(`<p xml:id="c1" begin="00:00:01.000" end="00:00:03.000">Hello</p>` +
		`<p xml:id="c2" begin="00:00:02.000" end="00:00:04.000">line1<br/>line2</p>`)
	brokenDoc = ttOpen + `<body><div><p>no head</p></div></body></tt>`
)

func testEnv(t *testing.T) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	return &state.LocalEnv{Cfg: cfg, Log: zaptest.NewLogger(t)}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeZip creates archive with entries in given order, names use slashes.
func writeZip(t *testing.T, path string, entries [][2]string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e[0])
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(e[1])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
