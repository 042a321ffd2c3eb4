package main

import (
	"context"
	"fmt"

	"github.com/repoqa/repoqa"
	"github.com/repoqa/repoqa/pkg/retrieval"
)

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(repoqa.GetVersion().String())
	return nil
}

// SearchCmd runs retrieval directly and prints the ranked documents. No
// model call is made.
type SearchCmd struct {
	Query      string   `arg:"" help:"Search query."`
	K          int      `short:"k" help:"Number of results (default from config)."`
	Namespaces []string `short:"n" help:"Namespaces to search (default from config)." placeholder:"NS1,NS2"`
}

func (c *SearchCmd) Run(cli *CLI) error {
	ctx := context.Background()

	rt, cleanup, err := cli.buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	documents, _, err := rt.Agent().Retrieve(ctx, c.Query, c.K, c.Namespaces)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(documents) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for i, doc := range documents {
		fmt.Printf("[%d] score=%.4f namespace=%s\n", i+1, doc.Score, doc.Namespace)
		if doc.SourceURL != "" {
			fmt.Printf("    %s\n", doc.SourceURL)
		}
		fmt.Println(doc.Content)
		if i < len(documents)-1 {
			fmt.Println("---")
		}
	}
	return nil
}

// AskCmd answers one question, searching the index when the model asks
// for it, and prints the answer with a sources listing.
type AskCmd struct {
	Query      string   `arg:"" help:"Question to answer."`
	K          int      `short:"k" help:"Number of search results (default from config)."`
	Namespaces []string `short:"n" help:"Namespaces to search (default from config)." placeholder:"NS1,NS2"`
}

func (c *AskCmd) Run(cli *CLI) error {
	ctx := context.Background()

	rt, cleanup, err := cli.buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := rt.Agent().Chat(ctx, c.Query, c.K, c.Namespaces)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	fmt.Println(result.Answer)
	printSources(result.Documents)
	return nil
}

// printSources lists the distinct source locations behind an answer, in
// ranked order.
func printSources(documents []retrieval.Document) {
	seen := make(map[string]bool)
	var sources []string
	for _, doc := range documents {
		if doc.SourceURL == "" || seen[doc.SourceURL] {
			continue
		}
		seen[doc.SourceURL] = true
		sources = append(sources, doc.SourceURL)
	}

	if len(sources) == 0 {
		return
	}

	fmt.Println("\nSources:")
	for _, src := range sources {
		fmt.Printf("  - %s\n", src)
	}
}
