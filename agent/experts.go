package agent

import (
	"context"

	"github.com/etnz/fundpool"
	"github.com/etnz/fundpool/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator wires the conversation leader over the experts.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a partner in a small private investment pool. He is here primarily
			to understand his equity, the pool's holdings, and how the fund evolved.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst is the market-facing expert, grounded by Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		well aware of financial products and institutions and of the latest
		news about funds and companies. Ask the Analyst whenever you need
		recent or grounding information about an instrument.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything related to
			financial institutions, companies, markets and funds. You leverage Google Search
			to ground your assertions. Taiwan-listed instruments use numeric codes (like 0050),
			US-listed ones use uppercase tickers (like VT).
				`}}},
		},
	}
}

// NewAccountant is the pool-facing expert. It answers from the pool's
// own reports through the given loader, never from memory.
func NewAccountant(load func() (*fundpool.State, error)) *Expert {
	lib := []Function{
		report("Dashboard", "The pool overview: total value, cash, NAV per unit, partner equity and allocation.", load, renderer.Dashboard),
		report("Holdings", "Every open position with average cost, current price, market value and unrealized gain.", load, renderer.Holdings),
		report("Partners", "Each partner's contributed capital, units, equity, profit and share of the pool.", load, renderer.Partners),
		report("History", "The recorded snapshots of total pool value over time.", load, renderer.History),
		report("Contributions", "Every contribution with the issue price and units it resolved to.", load, renderer.Contributions),
	}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the pool's records.
		He can produce every report about partner equity, holdings, contributions and history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of a small private investment pool.
				Use the available tools to read the pool's reports and answer from them,
				never from memory. The experts asking you may use approximative language,
				figure out which report they need.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// report adapts a renderer function into a model-callable tool.
func report(name, description string, load func() (*fundpool.State, error), render func(*fundpool.State) string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The report as a markdown document.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{
				ID:       id,
				Name:     name,
				Response: map[string]any{},
			}
			state, err := load()
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = render(state)
			return fresp
		},
	}
}
