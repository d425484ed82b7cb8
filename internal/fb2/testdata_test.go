package fb2

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

const fbNamespace = "http://www.gribuser.ru/xml/fictionbook/2.0"

// sampleFB2 is a complete book with every metadata section filled in.
const sampleFB2 = `<?xml version="1.0" encoding="UTF-8"?>
<FictionBook xmlns="http://www.gribuser.ru/xml/fictionbook/2.0" xmlns:l="http://www.w3.org/1999/xlink">
  <stylesheet type="text/css">p { margin: 0 }</stylesheet>
  <description>
    <title-info>
      <genre>sf_classic</genre>
      <author>
        <first-name>Jules</first-name>
        <last-name>Verne</last-name>
      </author>
      <author>
        <first-name>Michel</first-name>
        <middle-name>Jean</middle-name>
        <last-name>Verne</last-name>
      </author>
      <book-title>Around the World   in Eighty Days</book-title>
      <date value="1872-11-06">1872</date>
      <lang>en</lang>
      <src-lang>fr</src-lang>
      <sequence name="Voyages extraordinaires" number="11"/>
    </title-info>
    <document-info>
      <author><nickname>scanner</nickname></author>
      <date value="2010-01-02">2 Jan 2010</date>
      <version>1.1</version>
      <publisher>Doc Publisher</publisher>
    </document-info>
    <publish-info>
      <book-name>Around the World</book-name>
      <publisher>Print/House</publisher>
      <city>Paris</city>
      <year>1873</year>
      <isbn>978-0-00-000000-0</isbn>
      <sequence name="Print Series" number="3"/>
    </publish-info>
  </description>
  <body><section><title><p>Chapter I</p></title></section></body>
  <binary id="cover.jpg" content-type="image/jpeg">AAAA</binary>
</FictionBook>`

// minimalFB2 has a title and nothing else.
const minimalFB2 = `<?xml version="1.0" encoding="UTF-8"?>
<FictionBook xmlns="http://www.gribuser.ru/xml/fictionbook/2.0">
  <description>
    <title-info>
      <book-title>Untitled Notes</book-title>
      <genre/>
    </title-info>
  </description>
</FictionBook>`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return p
}

// writeZip creates a zip archive with the given entries, in order.
func writeZip(t *testing.T, dir, name string, entries [][2]string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("failed to create zip: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		ew, err := w.Create(e[0])
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", e[0], err)
		}
		if _, err := ew.Write([]byte(e[1])); err != nil {
			t.Fatalf("failed to write entry %s: %v", e[0], err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return p
}
