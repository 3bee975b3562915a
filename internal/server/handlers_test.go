package server

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/wintitle/internal/output"
	"gopkg.in/yaml.v3"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, args map[string]interface{}) (*mcp.CallToolResult, string) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("%s: unexpected protocol error: %v", name, err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("%s: got %d content items, want 1", name, len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("%s: content is %T, want mcp.TextContent", name, res.Content[0])
	}
	return res, tc.Text
}

func TestHandleSerialize(t *testing.T) {
	s := New(nil)
	res, text := callTool(t, s.handleSerialize, "serialize", map[string]interface{}{"name": "a\"b"})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got output.SerializeResult
	if err := yaml.Unmarshal([]byte(text), &got); err != nil {
		t.Fatalf("result is not YAML: %v", err)
	}
	if got.Text != `{"Name":"a\"b"}` {
		t.Errorf("text: got %s", got.Text)
	}
	if got.Name != "a\"b" {
		t.Errorf("name: got %q", got.Name)
	}
}

func TestHandleSerialize_EmptyNameIsValid(t *testing.T) {
	s := New(nil)
	res, text := callTool(t, s.handleSerialize, "serialize", map[string]interface{}{"name": ""})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if !strings.Contains(text, `{"Name":""}`) {
		t.Errorf("got %s", text)
	}
}

func TestHandleSerialize_MissingName(t *testing.T) {
	s := New(nil)
	res, _ := callTool(t, s.handleSerialize, "serialize", map[string]interface{}{})
	if !res.IsError {
		t.Error("expected tool error for missing name")
	}
}

func TestHandleSerialize_InvalidUTF8(t *testing.T) {
	s := New(nil)
	res, text := callTool(t, s.handleSerialize, "serialize", map[string]interface{}{"name": "bad\xff"})
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if !strings.Contains(text, "invalid UTF-8") {
		t.Errorf("error text: got %q", text)
	}
}

func TestHandleComposeTitle_DefaultBase(t *testing.T) {
	s := New(nil)
	res, text := callTool(t, s.handleComposeTitle, "compose_title", map[string]interface{}{"name": "CIAO"})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got output.TitleResult
	if err := yaml.Unmarshal([]byte(text), &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != `MainWindow{"Name":"CIAO"}` {
		t.Errorf("title: got %q", got.Title)
	}
	if !got.OK {
		t.Error("expected ok: true")
	}
}

func TestHandleComposeTitle_CustomBase(t *testing.T) {
	s := New(nil)
	_, text := callTool(t, s.handleComposeTitle, "compose_title", map[string]interface{}{"name": "x", "base": "Editor "})
	var got output.TitleResult
	if err := yaml.Unmarshal([]byte(text), &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != `Editor {"Name":"x"}` {
		t.Errorf("title: got %q", got.Title)
	}
}

func TestHandleDecode(t *testing.T) {
	s := New(nil)
	res, text := callTool(t, s.handleDecode, "decode", map[string]interface{}{"text": `{"Name":"line1\nline2"}`})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var got output.DecodeResult
	if err := yaml.Unmarshal([]byte(text), &got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "line1\nline2" {
		t.Errorf("name: got %q", got.Name)
	}
}

func TestHandleDecode_Invalid(t *testing.T) {
	s := New(nil)
	res, _ := callTool(t, s.handleDecode, "decode", map[string]interface{}{"text": "not json"})
	if !res.IsError {
		t.Error("expected tool error for invalid text")
	}
}

func TestServe_UnsupportedTransport(t *testing.T) {
	s := New(nil)
	if err := s.Serve(Config{Transport: "grpc"}); err == nil {
		t.Error("expected error for unsupported transport")
	}
}

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"s": "v", "n": 3}
	if got := StringParam(params, "s", "d"); got != "v" {
		t.Errorf("string: got %q", got)
	}
	if got := StringParam(params, "n", "d"); got != "3" {
		t.Errorf("number: got %q", got)
	}
	if got := StringParam(params, "missing", "d"); got != "d" {
		t.Errorf("default: got %q", got)
	}
}
