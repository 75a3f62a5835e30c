package parser

import (
	"strings"
	"testing"
)

func TestFindBySelector(t *testing.T) {
	doc := mustDocument(t, `<body>
		<div class="card"><p>Tayyabs</p></div>
		<div class="card"><p>Needoo Grill</p></div>
		<div class="other"><p>Sidebar</p></div>
	</body>`)

	elements, err := doc.FindBySelector(".card p")
	if err != nil {
		t.Fatalf("FindBySelector() error = %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("FindBySelector() returned %d elements, want 2", len(elements))
	}
	if got := elements[0].Text(); got != "Tayyabs" {
		t.Errorf("first element text = %q, want %q", got, "Tayyabs")
	}
	if got := elements[1].Text(); got != "Needoo Grill" {
		t.Errorf("second element text = %q, want %q", got, "Needoo Grill")
	}
}

func TestFindBySelectorInvalid(t *testing.T) {
	doc := mustDocument(t, `<body><div>content</div></body>`)

	if _, err := doc.FindBySelector("div[["); err == nil {
		t.Fatalf("FindBySelector() with malformed selector returned no error")
	}
}

func TestFindByTag(t *testing.T) {
	doc := mustDocument(t, `<body>
		<h1>Halal Joints</h1>
		<h2>Tayyabs</h2>
		<h2>Needoo Grill</h2>
		<h3>Opening hours</h3>
	</body>`)

	tests := []struct {
		tag  string
		want []string
	}{
		{"h1", []string{"Halal Joints"}},
		{"h2", []string{"Tayyabs", "Needoo Grill"}},
		{"h3", []string{"Opening hours"}},
		{"h4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			elements := doc.FindByTag(tt.tag)
			if len(elements) != len(tt.want) {
				t.Fatalf("FindByTag(%q) returned %d elements, want %d", tt.tag, len(elements), len(tt.want))
			}
			for i, el := range elements {
				if el.Text() != tt.want[i] {
					t.Errorf("FindByTag(%q)[%d] = %q, want %q", tt.tag, i, el.Text(), tt.want[i])
				}
			}
		})
	}
}

func TestElementAttr(t *testing.T) {
	doc := mustDocument(t, `<body>
		<a href="/restaurant/tayyabs">Tayyabs</a>
		<a>No href</a>
	</body>`)

	elements, err := doc.FindBySelector("a")
	if err != nil {
		t.Fatalf("FindBySelector() error = %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("FindBySelector() returned %d elements, want 2", len(elements))
	}
	if got := elements[0].Attr("href"); got != "/restaurant/tayyabs" {
		t.Errorf("Attr(href) = %q, want %q", got, "/restaurant/tayyabs")
	}
	if got := elements[1].Attr("href"); got != "" {
		t.Errorf("Attr(href) on anchor without href = %q, want empty", got)
	}
}

func TestElementFind(t *testing.T) {
	doc := mustDocument(t, `<body>
		<a href="/restaurant/tayyabs">
			<article>
				<div><img src="tayyabs.jpg"></div>
				<div><p>Tayyabs</p></div>
			</article>
		</a>
	</body>`)

	links, err := doc.FindBySelector("a")
	if err != nil {
		t.Fatalf("FindBySelector() error = %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("FindBySelector() returned %d links, want 1", len(links))
	}

	titles, err := links[0].Find("article > div:nth-child(2) > p")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(titles) != 1 || titles[0].Text() != "Tayyabs" {
		t.Fatalf("Find(title selector) = %v elements, want one with text Tayyabs", len(titles))
	}

	if _, err := links[0].Find("p[["); err == nil {
		t.Fatalf("Find() with malformed selector returned no error")
	}
}

func TestRawText(t *testing.T) {
	doc := mustDocument(t, `<body><div>Tayyabs</div><p>Needoo Grill</p><span>inline </span><span>run</span><script>var x = 1;</script><style>.card {}</style></body>`)

	raw := doc.RawText()
	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if trimmedLine := strings.TrimSpace(line); trimmedLine != "" {
			lines = append(lines, trimmedLine)
		}
	}

	want := []string{"Tayyabs", "Needoo Grill", "inline run"}
	if len(lines) != len(want) {
		t.Fatalf("RawText() lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("RawText() lines = %v, want %v", lines, want)
		}
	}
	if strings.Contains(raw, "var x") {
		t.Errorf("RawText() includes script content")
	}
	if strings.Contains(raw, ".card") {
		t.Errorf("RawText() includes style content")
	}
}

func TestNewDocumentEmpty(t *testing.T) {
	doc, err := NewDocument("")
	if err != nil {
		t.Fatalf("NewDocument(\"\") error = %v", err)
	}
	elements, err := doc.FindBySelector("div")
	if err != nil {
		t.Fatalf("FindBySelector() error = %v", err)
	}
	if len(elements) != 0 {
		t.Errorf("FindBySelector() on empty document returned %d elements", len(elements))
	}
}
