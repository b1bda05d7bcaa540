// Package agent implements the `wv assist` conversational assistant: a
// Gemini chat with function tools exposing the portfolio's valuation figures.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	analyst *Expert
}

// New creates a new Agent around the valuation tools. It takes an io.Writer
// for the agent's output (e.g., os.Stdout) and an io.Reader for user input
// (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, tools []Function) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		analyst: newAnalyst(tools),
	}
}

// newAnalyst builds the single expert of this assistant: a portfolio analyst
// with the valuation tools at hand.
func newAnalyst(tools []Function) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `A portfolio analyst who knows the user's holdings, what they cost,
		what they are worth and what they earned in dividends.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio analyst answering questions about the user's holdings.

			Use the available tools to get the facts: the list of holdings, and the
			portfolio valuation at any date (initial value, current value, return on
			investment, dividend income). Never invent figures: every number in your
			answers must come from a tool response.

			Dates are ISO (2006-01-02). When the user does not give a date, value the
			portfolio today. Be concise, answer in the user's language.
		`}}},
		},
		Library: NewLibrary(tools),
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Prompts given as
// arguments are consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to wv assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
