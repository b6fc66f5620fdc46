package mcp

import "github.com/mark3labs/mcp-go/mcp"

// summarizeNotesTool defines the summarize_notes MCP tool.
var summarizeNotesTool = mcp.NewTool("summarize_notes",
	mcp.WithDescription("Summarize a passage of study notes using the configured hosted summarization model."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The study notes to condense"),
	),
)

// generateQuizTool defines the generate_quiz MCP tool.
var generateQuizTool = mcp.NewTool("generate_quiz",
	mcp.WithDescription("Generate quiz questions from a passage of study notes."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The study notes to build questions from"),
	),
	mcp.WithString("type",
		mcp.Description("Quiz format (default normal)"),
		mcp.Enum("normal", "multiple_choice"),
	),
)

// generateFlashcardsTool defines the generate_flashcards MCP tool.
var generateFlashcardsTool = mcp.NewTool("generate_flashcards",
	mcp.WithDescription("Extract term/definition flashcards from notes. Each line of the form 'term: definition' becomes one card."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The study notes to extract cards from"),
	),
)

// searchNotesTool defines the search_notes MCP tool.
var searchNotesTool = mcp.NewTool("search_notes",
	mcp.WithDescription("Search imported study notes semantically. Returns the most similar notes with their content."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
)
