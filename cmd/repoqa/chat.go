package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"
)

// ChatCmd runs an interactive question-answering session. The transcript
// is display state only; every turn is answered independently.
type ChatCmd struct {
	K          int      `short:"k" help:"Number of search results per turn (default from config)."`
	Namespaces []string `short:"n" help:"Namespaces to search (default from config)." placeholder:"NS1,NS2"`
}

// turn is one completed question/answer exchange.
type turn struct {
	ID       string
	Question string
	Answer   string
}

func (c *ChatCmd) Run(cli *CLI) error {
	ctx := context.Background()

	rt, cleanup, err := cli.buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println("Ask questions about the indexed codebase. Commands:")
		fmt.Println("  /history - Show this session's questions")
		fmt.Println("  /quit or /exit - End the session")
		fmt.Println()
	}

	sessionID := uuid.NewString()
	slog.Debug("Chat session started", "session", sessionID)

	var transcript []turn
	reader := bufio.NewReader(os.Stdin)

	for {
		if interactive {
			fmt.Print("> ")
		}

		input, err := reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			switch input {
			case "/quit", "/exit":
				return nil
			case "/history":
				for i, t := range transcript {
					fmt.Printf("%d. %s\n", i+1, t.Question)
				}
				continue
			default:
				fmt.Printf("Unknown command: %s\n", input)
				continue
			}
		}

		turnID := uuid.NewString()
		slog.Debug("Chat turn", "session", sessionID, "turn", turnID)

		result, err := rt.Agent().Chat(ctx, input, c.K, c.Namespaces)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		fmt.Println(result.Answer)
		printSources(result.Documents)
		fmt.Println()

		transcript = append(transcript, turn{ID: turnID, Question: input, Answer: result.Answer})
	}
}
