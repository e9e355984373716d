package embedded

import (
	"testing"
	"testing/fstest"
)

func TestEmbedded(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("Init(nil) should leave the package uninitialized")
	}
	if _, err := ReadFile("data/ring_menu.yaml"); err == nil {
		t.Error("ReadFile before Init should fail")
	}

	Init(fstest.MapFS{
		"data/ring_menu.yaml": &fstest.MapFile{Data: []byte("radius: 50\n")},
	})
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/ring_menu.yaml", false},
		{"带./前缀", "./data/ring_menu.yaml", false},
		{"未知前缀", "assets/ring_menu.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "radius: 50\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, !tt.wantErr, !tt.wantErr)
			}
		})
	}
}
