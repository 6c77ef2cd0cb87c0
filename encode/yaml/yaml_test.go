package yaml

import (
	"testing"

	"github.com/youyoungjang/tab-transformer/encode"
	"github.com/youyoungjang/tab-transformer/feature"
)

func TestCategoryMapsRoundTrip(t *testing.T) {
	m, err := encode.FitCategoryMap(feature.NewCategoricalFeature("job"), []string{"services", "admin.", "technician"})
	if err != nil {
		t.Fatalf("fitting job map: %v", err)
	}
	months, err := encode.FitCategoryMap(feature.NewCanonicalCategoricalFeature("month", []string{"jan", "feb", "mar"}), nil)
	if err != nil {
		t.Fatalf("fitting month map: %v", err)
	}
	md, err := WriteCategoryMaps(map[string]*encode.CategoryMap{"job": m, "month": months})
	if err != nil {
		t.Fatalf("dumping category maps: %v", err)
	}
	maps, err := ReadCategoryMaps(md)
	if err != nil {
		t.Fatalf("reading category maps back: %v", err)
	}
	if len(maps) != 2 {
		t.Fatalf("category maps read back: got %d, want 2", len(maps))
	}
	code, err := maps["month"].Code("mar")
	if err != nil || code != 2 {
		t.Errorf("month code for mar after round trip: got %d (%v), want 2", code, err)
	}
	code, err = maps["job"].Code("services")
	if err != nil || code != 1 {
		t.Errorf("job code for services after round trip: got %d (%v), want 1", code, err)
	}
}

func TestReadCategoryMapsErrors(t *testing.T) {
	if _, err := ReadCategoryMaps([]byte("maps: [")); err == nil {
		t.Errorf("expected an error reading an unparseable document")
	}
	if _, err := ReadCategoryMaps([]byte("other: {}")); err == nil {
		t.Errorf("expected an error reading a document without maps")
	}
}
