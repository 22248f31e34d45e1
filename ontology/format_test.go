package ontology

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		want    Format
	}{
		{
			name:    "turtle prefix at start",
			content: "@prefix ex: <http://example.org/> .\nex:a ex:b ex:c .",
			path:    "schema.ttl",
			want:    FormatTurtle,
		},
		{
			name:    "turtle base at start",
			content: "@base <http://example.org/> .",
			path:    "schema.ttl",
			want:    FormatTurtle,
		},
		{
			name:    "turtle prefix overrides rdf extension",
			content: "# header\n@prefix ex: <http://example.org/> .",
			path:    "schema.rdf",
			want:    FormatTurtle,
		},
		{
			name:    "turtle prefix overrides nt extension",
			content: "@prefix ex: <http://example.org/> .",
			path:    "schema.nt",
			want:    FormatTurtle,
		},
		{
			name:    "turtle prefix overrides owl extension",
			content: "@prefix ex: <http://example.org/> .",
			path:    "schema.owl",
			want:    FormatTurtle,
		},
		{
			name:    "xml declaration",
			content: "<?xml version=\"1.0\"?>\n<rdf:RDF></rdf:RDF>",
			path:    "schema.owl",
			want:    FormatRDFXML,
		},
		{
			name:    "rdf element mid-content",
			content: "junk\n<rdf:RDF xmlns=\"x\"></rdf:RDF>",
			path:    "schema.txt",
			want:    FormatRDFXML,
		},
		{
			name:    "ntriples lines",
			content: "# comment\n<http://a> <http://b> <http://c> .\n\n<http://d> <http://e> \"f\" .",
			path:    "schema.xyz",
			want:    FormatNTriples,
		},
		{
			name:    "nq extension without markers",
			content: "some line without terminator\n<http://a> <http://b> <http://c> <http://g> .",
			path:    "schema.nq",
			want:    FormatNQuads,
		},
		{
			name:    "owl extension without xml markers",
			content: "Ontology(<http://example.org/schema>)",
			path:    "schema.owl",
			want:    FormatTurtle,
		},
		{
			name:    "unknown extension falls back to turtle",
			content: "not rdf at all",
			path:    "schema.dat",
			want:    FormatTurtle,
		},
		{
			name:    "no extension falls back to turtle",
			content: "not rdf at all",
			path:    "schema",
			want:    FormatTurtle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFormat(tt.content, tt.path)
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFormatIsPure(t *testing.T) {
	content := "@prefix ex: <http://example.org/> ."
	path := "schema.owl"

	first := DetectFormat(content, path)
	for i := 0; i < 10; i++ {
		if got := DetectFormat(content, path); got != first {
			t.Fatalf("DetectFormat not deterministic: %v != %v", got, first)
		}
	}
}
