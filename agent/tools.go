package agent

import (
	"context"
	"fmt"

	"github.com/mbareau/wallet"
	"github.com/mbareau/wallet/renderer"
	"google.golang.org/genai"
)

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Fn func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Fn(ctx, id, args)
}

// NewValuationTools exposes the portfolio figures to the assistant: the list
// of holdings and the valuation report at an arbitrary date. Everything goes
// through the same core calls as the CLI reports, rendered as markdown.
func NewValuationTools(holdings []wallet.Holding, p wallet.MarketDataProvider, currency string, opts wallet.LoadOptions) []Function {
	listHoldings := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_holdings",
			Description: "List the user's holdings: ticker, quantity, acquisition date and price paid.",
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out := "| Ticker | Quantity | Acquired | Price paid |\n|:---|--:|:---|--:|\n"
			for _, h := range holdings {
				out += fmt.Sprintf("| %s | %d | %s | %s |\n",
					h.Ticker(), h.Quantity(), wallet.DateOf(h.Stock().Date()), h.Stock().Price())
			}
			return &genai.FunctionResponse{ID: id, Name: "list_holdings", Response: map[string]any{"output": out}}
		},
	}

	valuePortfolio := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "portfolio_valuation",
			Description: "Value the portfolio at a date: initial value, current value, ROI and dividend income per holding and in total.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The valuation date in ISO format (2006-01-02). Today when empty.",
					},
				},
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			resp := &genai.FunctionResponse{ID: id, Name: "portfolio_valuation", Response: map[string]any{}}

			str, _ := args["date"].(string)
			day, err := wallet.ParseDate(str)
			if err != nil {
				resp.Response["error"] = err.Error()
				return resp
			}
			pv, err := wallet.ValuePortfolio(ctx, holdings, p, day, opts)
			if err != nil {
				resp.Response["error"] = err.Error()
				return resp
			}
			resp.Response["output"] = renderer.RenderValuation(renderer.NewValuation(pv, currency))
			return resp
		},
	}

	return []Function{listHoldings, valuePortfolio}
}
