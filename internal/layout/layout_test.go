package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFamilyMatching(t *testing.T) {
	reg := Default()
	tests := []struct {
		name       string
		input      string
		wantFamily string
		wantMatch  Match
	}{
		{"exact key", "iPhone 17 Pro Max", FamilyIPhoneProMax, MatchExact},
		{"lower case", "iphone 17 pro max", FamilyIPhoneProMax, MatchNormalized},
		{"no spaces", "iPhone17ProMax", FamilyIPhoneProMax, MatchNormalized},
		{"hyphenated", "iphone-17-pro-max", FamilyIPhoneProMax, MatchNormalized},
		{"input contains key", "Apple iPhone 17 Pro Max 256GB", FamilyIPhoneProMax, MatchSubstring},
		{"longest contained key wins", "iPhone 15 Pro case", FamilyIPhonePro, MatchSubstring},
		{"key contains input", "S24 Ultra", FamilyGalaxyUltra, MatchSubstring},
		{"plus", "iPhone 16 Plus", FamilyIPhonePlus, MatchExact},
		{"air", "iphone air", FamilyIPhoneAir, MatchNormalized},
		{"pixel xl", "Google Pixel 9 Pro XL", FamilyPixel, MatchSubstring},
		{"unknown", "Nokia 3310", DefaultFamily, MatchDefault},
		{"empty", "", DefaultFamily, MatchDefault},
		{"whitespace only", "   ", DefaultFamily, MatchDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, m := reg.Family(tt.input)
			if f.Name != tt.wantFamily {
				t.Errorf("Family(%q) = %s, want %s", tt.input, f.Name, tt.wantFamily)
			}
			if m != tt.wantMatch {
				t.Errorf("Family(%q) match = %s, want %s", tt.input, m, tt.wantMatch)
			}
		})
	}
}

func TestLookupsAgreeOnFamily(t *testing.T) {
	reg := Default()
	spellings := []string{
		"iPhone 17 Pro Max",
		"iphone 17 pro max",
		"IPHONE 17 PRO MAX",
		"iPhone17ProMax",
		"iPhone 17 Pro-Max",
		"iPhone_17_Pro_Max",
	}
	ref := reg.Resolve(spellings[0])
	refMask := reg.MaskPosition(spellings[0])
	refDims := reg.PhoneDimensions(spellings[0], VariantEditor)
	refThumb := reg.PhoneDimensions(spellings[0], VariantThumbnail)
	refClip := reg.ClipPathID(spellings[0])

	for _, s := range spellings[1:] {
		l := reg.Resolve(s)
		if l.Family != ref.Family {
			t.Errorf("Resolve(%q).Family = %s, want %s", s, l.Family, ref.Family)
		}
		if l.ContentArea.BorderRadius != ref.ContentArea.BorderRadius {
			t.Errorf("Resolve(%q) border radius = %v, want %v", s, l.ContentArea.BorderRadius, ref.ContentArea.BorderRadius)
		}
		if got := reg.MaskPosition(s); got != refMask {
			t.Errorf("MaskPosition(%q) = %+v, want %+v", s, got, refMask)
		}
		if got := reg.PhoneDimensions(s, VariantEditor); got != refDims {
			t.Errorf("PhoneDimensions(%q, editor) = %+v, want %+v", s, got, refDims)
		}
		if got := reg.PhoneDimensions(s, VariantThumbnail); got != refThumb {
			t.Errorf("PhoneDimensions(%q, thumbnail) = %+v, want %+v", s, got, refThumb)
		}
		if got := reg.ClipPathID(s); got != refClip {
			t.Errorf("ClipPathID(%q) = %s, want %s", s, got, refClip)
		}
	}
}

func TestResolveKeepsModelID(t *testing.T) {
	l := Resolve("Galaxy S25 Ultra")
	if l.ModelID != "Galaxy S25 Ultra" {
		t.Errorf("ModelID = %q", l.ModelID)
	}
	if l.Edges.Right != 100 || l.Edges.Bottom != 100 || l.Edges.Top != 0 || l.Edges.Left != 0 {
		t.Errorf("edges = %+v, want 0/0/100/100", l.Edges)
	}
}

func TestShippedFamiliesKeepCameraInDeadZone(t *testing.T) {
	for _, name := range Families() {
		f, _ := LookupFamily(name)
		l := f.Layout(name)
		if !l.CameraInDeadZone() {
			t.Errorf("family %s: camera %+v outside dead zones %+v", name, l.CameraArea, l.SafeZones)
		}
	}
}

func TestEveryModelMapsToKnownFamily(t *testing.T) {
	for model, fam := range models {
		if _, ok := families[fam]; !ok {
			t.Errorf("model %q maps to unknown family %q", model, fam)
		}
	}
	if _, ok := families[DefaultFamily]; !ok {
		t.Fatalf("default family %q missing", DefaultFamily)
	}
	if f, _ := Default().Family(DefaultModel); f.Name != DefaultFamily {
		t.Errorf("default model resolves to %s, want %s", f.Name, DefaultFamily)
	}
}

func TestContentAreaSize(t *testing.T) {
	c := ContentArea{Top: 2, Left: 8, Right: 7, Bottom: 3}
	if c.Width() != 85 {
		t.Errorf("Width = %v, want 85", c.Width())
	}
	if c.Height() != 95 {
		t.Errorf("Height = %v, want 95", c.Height())
	}
}

func TestUnknownVariantUsesEditorSize(t *testing.T) {
	got := PhoneDimensions("Pixel 9", Variant("poster"))
	want := PhoneDimensions("Pixel 9", VariantEditor)
	if got != want {
		t.Errorf("PhoneDimensions = %+v, want %+v", got, want)
	}
}

func TestNewRegistryAliases(t *testing.T) {
	reg, err := NewRegistry(map[string]string{"Zenfone Max": FamilyGalaxy})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if f, m := reg.Family("zenfone max"); f.Name != FamilyGalaxy || m != MatchNormalized {
		t.Errorf("alias resolved to %s (%s)", f.Name, m)
	}

	if _, err := NewRegistry(map[string]string{"X": "no-such-family"}); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestLoadAliasesFromDataDir(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		got, err := LoadAliasesFromDataDir(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("aliases = %v, want none", got)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		content := "model,family\nXperia 1 VI,galaxy\n,pixel\nNothing Phone 3, pixel\n"
		if err := os.WriteFile(filepath.Join(dir, aliasFile), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := LoadAliasesFromDataDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got["Xperia 1 VI"] != FamilyGalaxy || got["Nothing Phone 3"] != FamilyPixel {
			t.Errorf("aliases = %v", got)
		}
	})

	t.Run("unknown family", func(t *testing.T) {
		dir := t.TempDir()
		content := "model,family\nXperia,walkman\n"
		if err := os.WriteFile(filepath.Join(dir, aliasFile), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadAliasesFromDataDir(dir); err == nil {
			t.Error("expected error for unknown family")
		}
	})

	t.Run("bad header", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, aliasFile), []byte("name,kind\na,b\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadAliasesFromDataDir(dir); err == nil {
			t.Error("expected error for bad header")
		}
	})
}
