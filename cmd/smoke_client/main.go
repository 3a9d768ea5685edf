package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP stream endpoint")
	text := flag.String("text", "golang", "search text")
	area := flag.String("area", "1", "area id to search in")
	country := flag.String("country", "113", "country id for area_search")
	sync := flag.Bool("sync", false, "also run lookup_sync (needs neo4j)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "vacancy-gateway-smoke-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: *endpoint}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	listTools(ctx, session)

	callTool(ctx, session, "vacancy_search", map[string]any{
		"text":     *text,
		"area_id":  *area,
		"per_page": 5,
	})
	callTool(ctx, session, "industries", map[string]any{})
	callTool(ctx, session, "area_search", map[string]any{
		"country_id": *country,
		"text":       "моск",
	})
	// a vacancy id that does not exist, to see a remote_error result
	callTool(ctx, session, "vacancy_detail", map[string]any{"id": 1})

	if *sync {
		callTool(ctx, session, "lookup_sync", map[string]any{})
	}

	fmt.Println("\nAll calls completed")
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTOOLS")
	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func callTool(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\nCALL: %s\n", name)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}
	if res.IsError {
		fmt.Println("  (tool reported an error)")
	}
	printResult(res)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
