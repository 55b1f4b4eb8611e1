// Package agent implements a small interactive assistant that answers
// questions about a dividend report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemPrompt = `You are a careful assistant for an Indian retail investor.
The user will ask questions about the dividend report below. The TDS and slab
figures in it are flat-rate estimates, not tax advice; remind the user of that
when they ask about tax treatment. Answer from the report; say so when the
report does not contain the answer.`

const prompt = "assist> "

// Assistant runs a chat session with the Gemini API, briefed with the
// rendered dividend report so it can answer questions about the figures.
type Assistant struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Assistant writing its output to w and reading user input
// from r (typically os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader) *Assistant {
	return &Assistant{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat session, seeded with the report briefing.
func (a *Assistant) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt + "\n\n" + briefing}},
		},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Run starts the interactive REPL session. Any prompts given are consumed
// before reading from the user.
func (a *Assistant) Run(ctx context.Context, client *genai.Client, briefing string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, briefing); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to divitrack assist. Type 'bye' to exit.")

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

		answer, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}

func (a *Assistant) ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
