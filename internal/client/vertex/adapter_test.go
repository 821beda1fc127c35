package vertexclient

import (
	"testing"

	"cloud.google.com/go/vertexai/genai"

	"github.com/GregMSThompson/bank-closures/internal/dto"
)

func TestToGenaiSchema(t *testing.T) {
	in := &dto.VertexSchema{
		Type: "object",
		Properties: map[string]*dto.VertexSchema{
			"closure_attempts": {
				Type: "array",
				Items: &dto.VertexSchema{
					Type: "object",
					Properties: map[string]*dto.VertexSchema{
						"success": {Type: "boolean"},
						"method":  {Type: "string", Enum: []string{"chat", "phone"}},
					},
					Required: []string{"success", "method"},
				},
			},
		},
		Required: []string{"closure_attempts"},
	}

	out := toGenaiSchema(in)
	if out.Type != genai.TypeObject || len(out.Required) != 1 {
		t.Fatalf("unexpected root schema: %#v", out)
	}
	items := out.Properties["closure_attempts"].Items
	if items == nil || items.Type != genai.TypeObject {
		t.Fatalf("unexpected items schema: %#v", items)
	}
	if items.Properties["success"].Type != genai.TypeBoolean {
		t.Fatalf("success type = %v", items.Properties["success"].Type)
	}
	if m := items.Properties["method"]; m.Type != genai.TypeString || len(m.Enum) != 2 {
		t.Fatalf("method schema = %#v", m)
	}
	if toGenaiSchema(nil) != nil {
		t.Fatal("nil schema should map to nil")
	}
}

func TestToGenaiTypeUnknown(t *testing.T) {
	if got := toGenaiType("date"); got != genai.TypeUnspecified {
		t.Fatalf("toGenaiType(date) = %v, want unspecified", got)
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"closure_attempts":`), genai.Text(`[]}`)}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`ignored`)}}},
		},
	}
	if got := responseText(resp); got != `{"closure_attempts":[]}` {
		t.Fatalf("responseText = %q", got)
	}
	if got := responseText(nil); got != "" {
		t.Fatalf("responseText(nil) = %q", got)
	}
}
