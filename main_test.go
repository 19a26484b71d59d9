package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"sphere room scene", "spheres", false},
		{"single sphere scene", "sphere", false},
		{"clock demo", "clock", false},
		{"unknown scene", "nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := renderScene(tt.sceneName, 10, 5, 1)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q, got none", tt.sceneName)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if img == nil {
				t.Fatal("Expected a canvas")
			}
		})
	}
}

func TestSaveImage(t *testing.T) {
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	})

	img, err := renderScene("sphere", 4, 4, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		format      string
		expectError bool
	}{
		{"ppm", false},
		{"png", false},
		{"bmp", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			filename, err := saveImage(img, "sphere", tt.format)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for format %q, got none", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !strings.HasSuffix(filename, "."+tt.format) {
				t.Errorf("Expected a .%s file, got %q", tt.format, filename)
			}
			if filepath.Dir(filename) != filepath.Join("output", "sphere") {
				t.Errorf("Expected output under output/sphere, got %q", filename)
			}
		})
	}
}
