package title

import (
	"errors"
	"testing"

	"github.com/mj1618/wintitle/internal/codec"
	"github.com/mj1618/wintitle/internal/model"
)

func TestCompose_Default(t *testing.T) {
	got, err := Compose(DefaultBase, model.NewRecord(DefaultName))
	if err != nil {
		t.Fatal(err)
	}
	want := "MainWindow{\"Name\":\"CIAO\"}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompose_NoSeparator(t *testing.T) {
	tests := []struct {
		base string
		name string
		want string
	}{
		{"", "", `{"Name":""}`},
		{"Base ", "x", `Base {"Name":"x"}`},
		{"T", "a\"b", `T{"Name":"a\"b"}`},
		{"T", "line1\nline2", `T{"Name":"line1\nline2"}`},
	}
	for _, tt := range tests {
		got, err := Compose(tt.base, model.NewRecord(tt.name))
		if err != nil {
			t.Fatalf("Compose(%q, %q): %v", tt.base, tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Compose(%q, %q) = %q, want %q", tt.base, tt.name, got, tt.want)
		}
	}
}

func TestCompose_EncodingErrorLeavesTitleEmpty(t *testing.T) {
	got, err := Compose("MainWindow", model.NewRecord("bad\xfe"))
	if err == nil {
		t.Fatal("expected error")
	}
	if got != "" {
		t.Errorf("expected empty title on error, got %q", got)
	}
	var encErr *codec.EncodingError
	if !errors.As(err, &encErr) {
		t.Errorf("expected *codec.EncodingError, got %T", err)
	}
}

func TestComposeWindow(t *testing.T) {
	w, err := ComposeWindow("MainWindow", model.NewRecord("CIAO"))
	if err != nil {
		t.Fatal(err)
	}
	if w.Base != "MainWindow" {
		t.Errorf("base: got %q", w.Base)
	}
	if w.Record != `{"Name":"CIAO"}` {
		t.Errorf("record: got %q", w.Record)
	}
	if w.Title != w.Base+w.Record {
		t.Errorf("title %q should be base+record", w.Title)
	}
}

func TestComposeWindow_Error(t *testing.T) {
	w, err := ComposeWindow("MainWindow", model.NewRecord("\xff"))
	if !errors.Is(err, codec.ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
	if w != (model.Window{}) {
		t.Errorf("expected zero window on error, got %+v", w)
	}
}
