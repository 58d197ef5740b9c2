package agent

import (
	"context"
	"strings"
	"testing"

	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	"google.golang.org/genai"
)

func TestReportFunctions(t *testing.T) {
	vested := taxform.NewVestedReport(&taxform.Certificate{
		Year:   2024,
		Vested: []taxform.VestedEntry{{VestDate: taxform.MustParse("16.01.2024"), Shares: taxform.Q(24)}},
	})
	lib := NewLibrary(reportFunctions(vested, nil))

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "VestedReport"})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("VestedReport returned no output: %v", resp.Response)
	}
	if !strings.Contains(out, "Vested Stocks 2024") {
		t.Errorf("VestedReport output misses the title:\n%s", out)
	}

	// The export was skipped in this session: asking for it reports an
	// error instead of inventing figures.
	resp = lib(context.Background(), &genai.FunctionCall{ID: "2", Name: "SoldReport"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("SoldReport of a skipped document should report an error: %v", resp.Response)
	}

	// The summary still renders with a single document.
	resp = lib(context.Background(), &genai.FunctionCall{ID: "3", Name: "Summary"})
	if out, ok := resp.Response["output"].(string); !ok || !strings.Contains(out, "Total Vested Shares") {
		t.Errorf("Summary should render with one document: %v", resp.Response)
	}

	resp = lib(context.Background(), &genai.FunctionCall{ID: "4", Name: "Nope"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("an unknown function should report an error: %v", resp.Response)
	}
}

func TestNewPreparerDeclarations(t *testing.T) {
	p := NewPreparer(nil, nil)
	if p.Library == nil {
		t.Fatal("Preparer has no library")
	}

	found := map[string]bool{}
	for _, d := range p.Config.Tools[0].FunctionDeclarations {
		found[d.Name] = true
	}
	for _, name := range []string{"VestedReport", "SoldReport", "Summary"} {
		if !found[name] {
			t.Errorf("Preparer does not declare %q", name)
		}
	}
}
