package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/use-agent/readable/cleaner"
	"github.com/use-agent/readable/config"
	"github.com/use-agent/readable/fetcher"
	"github.com/use-agent/readable/format"
	"github.com/use-agent/readable/reader"
)

func main() {
	cfg := config.Load()

	// stdout carries the MCP protocol; logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cl, err := cleaner.NewCleaner(cfg.Cleaner)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid cleaner configuration:", err)
		os.Exit(1)
	}
	f, err := fetcher.New(cfg.Fetch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fetch configuration:", err)
		os.Exit(1)
	}
	rd := reader.New(f, cl)

	s := newServer(rd, cfg.MCP.Format)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func newServer(rd *reader.Reader, defaultFormat string) *server.MCPServer {
	s := server.NewMCPServer(
		"readable",
		format.Version,
		server.WithToolCapabilities(false),
	)

	readURLTool := mcp.NewTool("read_url",
		mcp.WithDescription("Fetch a web page once and return only its main article content, without navigation, ads or other boilerplate."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Absolute URL of the article to read"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'markdown' (default) or 'html' (the full rendered page)"),
			mcp.Enum("markdown", "html"),
		),
	)

	s.AddTool(readURLTool, handleReadURL(rd, defaultFormat))
	return s
}

func handleReadURL(rd *reader.Reader, defaultFormat string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}
		outputFormat := request.GetString("format", defaultFormat)

		doc, err := rd.Read(ctx, url, "")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if outputFormat == "html" {
			return mcp.NewToolResultText(doc.HTML()), nil
		}

		md, err := rd.Markdown(doc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(md), nil
	}
}
