package generator

import (
	"bytes"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input   string
		want    Resolution
		wantErr bool
	}{
		{"1920x1080", FullHD, false},
		{" 3440X1440 ", Resolution{3440, 1440}, false},
		{"1920", Resolution{}, true},
		{"0x1080", Resolution{}, true},
		{"axb", Resolution{}, true},
	}

	for _, tt := range tests {
		got, err := ParseResolution(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseResolution(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseResolution(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolutionFileName(t *testing.T) {
	if got := QHD.FileName(); got != "modern-gradient-2560x1440.jpg" {
		t.Errorf("FileName = %q", got)
	}
}

func TestGenerateSet(t *testing.T) {
	if testing.Short() {
		t.Skip("renders full-size wallpapers")
	}
	dir := filepath.Join(t.TempDir(), "wallpapers")

	var written []string
	paths, err := GenerateSet(dir, SetConfig{
		Rand:    NewRand(8),
		Written: func(p string) { written = append(written, p) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != len(DefaultResolutions) || len(written) != len(paths) {
		t.Fatalf("wrote %d files (callback saw %d), want %d", len(paths), len(written), len(DefaultResolutions))
	}

	for i, res := range DefaultResolutions {
		if want := filepath.Join(dir, res.FileName()); paths[i] != want {
			t.Errorf("path[%d] = %s, want %s", i, paths[i], want)
		}
		f, err := os.Open(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := jpeg.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", paths[i], err)
		}
		if cfg.Width != res.Width || cfg.Height != res.Height {
			t.Errorf("%s: decoded %dx%d", paths[i], cfg.Width, cfg.Height)
		}
	}

	link := filepath.Join(dir, LinkName)
	target, err := os.Readlink(link)
	if err != nil {
		t.Fatal(err)
	}
	if target != FullHD.FileName() {
		t.Errorf("link target = %q, want relative %q", target, FullHD.FileName())
	}

	viaLink, err := os.ReadFile(link)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := os.ReadFile(filepath.Join(dir, FullHD.FileName()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(viaLink, direct) {
		t.Error("default link content differs from the 1920x1080 file")
	}
}

func TestGenerateSetCustom(t *testing.T) {
	dir := t.TempDir()
	small := Resolution{64, 36}
	s := Schemes[1]

	paths, err := GenerateSet(dir, SetConfig{
		Resolutions: []Resolution{small, {128, 72}},
		Default:     small,
		Scheme:      &s,
		Quality:     80,
		Rand:        NewRand(4),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	if target, _ := os.Readlink(filepath.Join(dir, LinkName)); target != small.FileName() {
		t.Errorf("link target = %q, want %q", target, small.FileName())
	}
}

func TestGenerateSetRejectsMissingDefault(t *testing.T) {
	dir := t.TempDir()
	_, err := GenerateSet(dir, SetConfig{
		Resolutions: []Resolution{{64, 36}},
		Default:     FullHD,
	})
	if err == nil {
		t.Fatal("expected error when default resolution is not generated")
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("files written despite error: %v", entries)
	}
}

func TestReplaceLink(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, link string)
	}{
		{"missing", func(t *testing.T, link string) {}},
		{"regular file", func(t *testing.T, link string) {
			if err := os.WriteFile(link, []byte("old"), 0644); err != nil {
				t.Fatal(err)
			}
		}},
		{"dangling symlink", func(t *testing.T, link string) {
			if err := os.Symlink("gone.jpg", link); err != nil {
				t.Fatal(err)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "target.jpg"), []byte("new"), 0644); err != nil {
				t.Fatal(err)
			}
			link := filepath.Join(dir, LinkName)
			tt.prepare(t, link)

			if err := ReplaceLink(dir, "target.jpg", LinkName); err != nil {
				t.Fatal(err)
			}

			fi, err := os.Lstat(link)
			if err != nil {
				t.Fatal(err)
			}
			if fi.Mode()&os.ModeSymlink == 0 {
				t.Errorf("%s is not a symlink", link)
			}
			data, err := os.ReadFile(link)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != "new" {
				t.Errorf("link resolves to %q, want %q", data, "new")
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range entries {
				if strings.HasSuffix(e.Name(), ".tmp") {
					t.Errorf("temporary link left behind: %s", e.Name())
				}
			}
		})
	}
}

func TestReplaceLinkConcurrent(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}

	const workers, rounds = 8, 200
	errs := make(chan error, workers*rounds)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		target := "a.jpg"
		if w%2 == 1 {
			target = "b.jpg"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if err := ReplaceLink(dir, target, LinkName); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LinkName))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "a.jpg" && got != "b.jpg" {
		t.Errorf("link resolves to %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary link left behind: %s", e.Name())
		}
	}
}
