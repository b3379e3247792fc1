package logos

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestDefaultCatalogCoversLeague(t *testing.T) {
	c := Default()
	all := c.All()
	if len(all) != 30 {
		t.Fatalf("expected 30 bundled logos, got %d", len(all))
	}
	ref, ok := c.Lookup("bos")
	if !ok || ref != "/logos/BOS.svg" {
		t.Fatalf("expected case-insensitive lookup, got %q %v", ref, ok)
	}
	if !c.Has(" LAL ") {
		t.Fatal("expected LAL logo")
	}
	if c.Has("XXX") {
		t.Fatal("did not expect logo for unknown team")
	}
	if _, err := fs.Stat(c.FS(), "GSW.svg"); err != nil {
		t.Fatalf("expected asset to be served from FS: %v", err)
	}
}

func TestNewIgnoresNonMatchingFiles(t *testing.T) {
	c := New(fstest.MapFS{
		"MIA.svg":     {Data: []byte("<svg/>")},
		"mia.svg":     {Data: []byte("<svg/>")},
		"MIAMI.svg":   {Data: []byte("<svg/>")},
		"README.md":   {Data: []byte("x")},
		"old/CHI.svg": {Data: []byte("<svg/>")},
		"NYK.png":     {Data: []byte("x")},
	})
	all := c.All()
	if len(all) != 1 || all["MIA"] != "/logos/MIA.svg" {
		t.Fatalf("unexpected catalog %+v", all)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := New(fstest.MapFS{"DEN.svg": {Data: []byte("<svg/>")}})
	all := c.All()
	all["DEN"] = "tampered"
	if ref, _ := c.Lookup("DEN"); ref != "/logos/DEN.svg" {
		t.Fatalf("expected catalog to be immutable, got %q", ref)
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	if c.Has("BOS") || len(c.All()) != 0 {
		t.Fatal("expected nil catalog to be empty")
	}
}
