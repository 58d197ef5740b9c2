package agent

import (
	"context"
	"fmt"

	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/docs"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is filling the securities part of a Swiss tax declaration from the reports
			of this tool: vested stocks, ESPP purchases and sold shares extracted from the
			salary certificate and the brokerage transaction export. Today's date is %s.

			Learn about the experts' skills from the Tools to ask them questions.
			They are at your service and 100%% dedicated to you, they keep context of your previous questions.

			The Preparer holds the actual figures of the user's documents; the Advisor knows
			the Swiss tax rules. Devise a plan of questions to each expert and come up with the
			best response to the user's request. Never invent a figure: every number you quote
			must come from the Preparer.
		`, taxform.Today())}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns the expert on Swiss tax rules. It is grounded with
// search, so it can answer about current rates, deadlines and cantonal
// practice.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a Swiss tax advisor.
		Very well aware of the federal and cantonal rules for declaring employee
		share plans: vested awards, ESPP purchases and sold shares.
		Ask the Advisor whenever you need regulation or up to date information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in Swiss taxes, in particular in declaring employee share
			plans (vested stocks, ESPP purchases, sales) in the securities register.
			You leverage Google Search to ground your assertions; prefer official sources,
			the federal and the cantonal tax administrations. Always say which tax year
			your answer applies to.
				`}}},
		},
	}
}

// NewPreparer returns the expert holding the reports extracted from the
// user's own documents. Either report may be nil when its document was
// skipped for the session.
func NewPreparer(vested *taxform.VestedReport, sold *taxform.SoldReport) *Expert {
	lib := reportFunctions(vested, sold)

	return &Expert{
		Name: "Preparer",
		Description: `This is the Preparer. It holds the reports extracted from the user's own
		documents: the vested stocks and ESPP purchases of the salary certificate, the
		sold shares of the brokerage export, and the summary balancing them.
		Ask the Preparer for any figure of the user's declaration.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You prepare the securities part of the user's Swiss tax declaration.
				Use the available tools to read the reports extracted from the user's
				documents. Quote figures exactly as printed there, never recompute or
				round them, and say which report a figure comes from.

				How to read the reports:

` + must(docs.Get("report"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// reportFunctions exposes the extracted reports as callable functions. The
// reports were built before the session started, so the functions take no
// arguments and render on demand.
func reportFunctions(vested *taxform.VestedReport, sold *taxform.SoldReport) []Function {
	vestedFn := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "VestedReport",
			Description: `The report of the salary certificate: vesting events aggregated by
			date and ESPP purchases per offering period, with their totals.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the vested and purchased shares.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			if vested == nil {
				return errorResponse(id, "VestedReport", "the salary certificate was not loaded in this session")
			}
			return outputResponse(id, "VestedReport", renderer.VestedMarkdown(vested, true))
		},
	}

	soldFn := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SoldReport",
			Description: `The report of the brokerage export: sold lots aggregated by sell
			date, with the share, proceeds and gain totals.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the sold shares.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			if sold == nil {
				return errorResponse(id, "SoldReport", "the brokerage export was not loaded in this session")
			}
			return outputResponse(id, "SoldReport", renderer.SoldMarkdown(sold, true))
		},
	}

	summaryFn := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `The summary balancing both documents: total vested, purchased, owned
			and sold shares, and the resulting net position.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown summary of the net position.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "Summary", renderer.SummaryMarkdown(taxform.NewSummary(vested, sold)))
		},
	}

	return []Function{vestedFn, soldFn, summaryFn}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

func errorResponse(id, name, message string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": message}}
}
