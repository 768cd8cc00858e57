package openapi

import (
	"testing"

	"go.yaml.in/yaml/v4"
)

func mustRoot(t *testing.T, src string) *yaml.Node {
	t.Helper()

	doc, err := Parse("inline", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc.Root()
}

func TestPairsPreserveOrder(t *testing.T) {
	root := mustRoot(t, "zebra: 1\napple: 2\nmango: 3\n")

	pairs := Pairs(root)
	want := []string{"zebra", "apple", "mango"}
	if len(pairs) != len(want) {
		t.Fatalf("len(Pairs()) = %d, want %d", len(pairs), len(want))
	}
	for i, key := range want {
		if pairs[i].Key != key {
			t.Errorf("Pairs()[%d].Key = %q, want %q", i, pairs[i].Key, key)
		}
	}
}

func TestPairsNonMapping(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "sequence", src: "- a\n- b\n"},
		{name: "scalar", src: "just text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse("inline", []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			// Root() is nil for non-mapping roots; Pairs must tolerate both.
			if got := Pairs(doc.Root()); got != nil {
				t.Errorf("Pairs() = %v, want nil", got)
			}
		})
	}

	if got := Pairs(nil); got != nil {
		t.Errorf("Pairs(nil) = %v, want nil", got)
	}
}

func TestMapValue(t *testing.T) {
	root := mustRoot(t, "title: Things API\ncount: 3\n")

	if node := MapValue(root, "title"); node == nil || node.Value != "Things API" {
		t.Errorf("MapValue(title) = %v, want scalar %q", node, "Things API")
	}
	if node := MapValue(root, "missing"); node != nil {
		t.Errorf("MapValue(missing) = %v, want nil", node)
	}
	if node := MapValue(nil, "title"); node != nil {
		t.Errorf("MapValue(nil, title) = %v, want nil", node)
	}
}

func TestStringValue(t *testing.T) {
	root := mustRoot(t, "text: hello\nnumber: 42\nflag: true\nnothing: null\nquoted: \"true\"\n")

	tests := []struct {
		name   string
		key    string
		want   string
		wantOK bool
	}{
		{name: "plain string", key: "text", want: "hello", wantOK: true},
		{name: "number is not text", key: "number", wantOK: false},
		{name: "boolean is not text", key: "flag", wantOK: false},
		{name: "null is not text", key: "nothing", wantOK: false},
		{name: "quoted true is text", key: "quoted", want: "true", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StringValue(MapValue(root, tt.key))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("StringValue(%s) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := StringValue(nil); ok {
		t.Error("StringValue(nil) ok = true, want false")
	}
}

func TestIsTrue(t *testing.T) {
	root := mustRoot(t, "yes: true\ncapital: True\nno: false\nstringy: \"true\"\none: 1\nmapping: {a: 1}\n")

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "boolean true", key: "yes", want: true},
		{name: "capitalized True", key: "capital", want: true},
		{name: "boolean false", key: "no", want: false},
		{name: "string true is not boolean", key: "stringy", want: false},
		{name: "number one is not boolean", key: "one", want: false},
		{name: "mapping is not boolean", key: "mapping", want: false},
		{name: "absent key", key: "missing", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTrue(MapValue(root, tt.key)); got != tt.want {
				t.Errorf("IsTrue(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestAliasResolution(t *testing.T) {
	root := mustRoot(t, "base: &op\n  deprecated: true\nalias: *op\n")

	alias := MapValue(root, "alias")
	if !IsMapping(alias) {
		t.Fatal("IsMapping(alias) = false, want true after alias resolution")
	}
	if !IsTrue(MapValue(alias, "deprecated")) {
		t.Error("IsTrue(alias.deprecated) = false, want true")
	}
}
