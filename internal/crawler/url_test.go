package crawler

import "testing"

func TestCanonicalizeSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare domain gets scheme", input: "example.com", want: "http://example.com"},
		{name: "bare domain with slash", input: "example.com/", want: "http://example.com/"},
		{name: "https preserved", input: "https://example.com/a", want: "https://example.com/a"},
		{name: "fragment dropped", input: "example.com/a#section", want: "http://example.com/a"},
		{name: "query survives", input: "aa.com/1/2/3.html?p1=1&p2=2#tag", want: "http://aa.com/1/2/3.html?p1=1&p2=2"},
		{name: "surrounding whitespace trimmed", input: "  example.com  ", want: "http://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CanonicalizeSeed(tt.input)
			if err != nil {
				t.Fatalf("CanonicalizeSeed(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("CanonicalizeSeed(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeSeedIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"example.com", "http://a.b.example.com/x?q=1", "https://example.com/path#frag"}
	for _, in := range inputs {
		once, err := CanonicalizeSeed(in)
		if err != nil {
			t.Fatalf("CanonicalizeSeed(%q) error = %v", in, err)
		}
		twice, err := CanonicalizeSeed(once)
		if err != nil {
			t.Fatalf("CanonicalizeSeed(%q) error = %v", once, err)
		}
		if once != twice {
			t.Fatalf("canonicalization not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestCanonicalizeSeedRejectsUnusable(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "http://"} {
		if got, err := CanonicalizeSeed(in); err == nil {
			t.Fatalf("CanonicalizeSeed(%q) = %q, want error", in, got)
		}
	}
}

func TestRootDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "http://a.b.example.com/x", want: "http://example.com/"},
		{input: "http://example.com/1/2/p.html?q=1", want: "http://example.com/"},
		{input: "https://www.example.co/path", want: "https://example.co/"},
		{input: "http://a.b.example.com:8080/x", want: "http://example.com:8080/"},
		{input: "http://localhost:9090/x", want: "http://localhost:9090/"},
		{input: "http://localhost/x", want: "http://localhost/"},
		{input: "not a url at all \x7f", want: ""},
		{input: "/relative/only", want: ""},
	}
	for _, tt := range tests {
		if got := RootDomain(tt.input); got != tt.want {
			t.Fatalf("RootDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "http://example.com/a#b", want: "http://example.com/a"},
		{input: "http://example.com/a", want: "http://example.com/a"},
		{input: "#top", want: ""},
		{input: "a#b#c", want: "a"},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		if got := StripFragment(tt.input); got != tt.want {
			t.Fatalf("StripFragment(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "/about", want: true},
		{input: "about.html", want: true},
		{input: "?page=2", want: true},
		{input: "http://example.com/a", want: false},
		{input: "//cdn.example.com/lib.js", want: false},
	}
	for _, tt := range tests {
		if got := IsRelative(tt.input); got != tt.want {
			t.Fatalf("IsRelative(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		base string
		want string
	}{
		{ref: "/about", base: "http://example.com/x/y", want: "http://example.com/about"},
		{ref: "b.html", base: "http://example.com/a/", want: "http://example.com/a/b.html"},
		{ref: "../up", base: "http://example.com/a/b/", want: "http://example.com/a/up"},
		{ref: "http://other.com/z", base: "http://example.com/", want: "http://other.com/z"},
		{ref: "//cdn.example.com/l", base: "https://example.com/", want: "https://cdn.example.com/l"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.ref, tt.base); got != tt.want {
			t.Fatalf("Resolve(%q, %q) = %q, want %q", tt.ref, tt.base, got, tt.want)
		}
	}
}

func TestSameHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		root string
		want bool
	}{
		{name: "identical host", url: "http://example.com/a", root: "http://example.com/", want: true},
		{name: "different path same host", url: "http://example.com/b?q=1", root: "http://example.com/", want: true},
		{name: "different host", url: "http://other.com/", root: "http://example.com/", want: false},
		// subdomain vs parent is NOT the same host under the strict rule
		{name: "subdomain vs parent", url: "http://a.example.com/", root: "http://example.com/", want: false},
		{name: "parent vs subdomain", url: "http://example.com/", root: "http://a.example.com/", want: false},
		{name: "relative has no host", url: "/about", root: "http://example.com/", want: false},
		{name: "empty root host", url: "http://example.com/", root: "/x", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SameHost(tt.url, tt.root); got != tt.want {
				t.Fatalf("SameHost(%q, %q) = %v, want %v", tt.url, tt.root, got, tt.want)
			}
		})
	}
}

func TestSkipLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "", want: true},
		{input: "javascript:void(0)", want: true},
		{input: "mailto:foo@bar.com", want: true},
		{input: "whatsapp:send?text=hi", want: true},
		{input: "tel:+15551234567", want: true},
		{input: "ftp://example.com/file", want: true},
		{input: "http://example.com/", want: false},
		{input: "https://example.com/", want: false},
		{input: "/relative/path", want: false},
		{input: "page.html", want: false},
		{input: "//example.com/scheme-relative", want: false},
		{input: "http://bad url with spaces", want: true},
	}
	for _, tt := range tests {
		if got := SkipLink(tt.input); got != tt.want {
			t.Fatalf("SkipLink(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
