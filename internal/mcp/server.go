package mcp

import (
	"math/rand"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ravikh-dev/studykit/internal/inference"
	"github.com/ravikh-dev/studykit/internal/notes"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes study tools over stdio.
type Server struct {
	summarizer inference.Summarizer
	library    *notes.Library
	rng        *rand.Rand
	mcp        *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. The
// summarizer and library may be nil; the corresponding tools then report
// that the capability is unavailable.
func NewServer(summarizer inference.Summarizer, library *notes.Library) *Server {
	s := &Server{
		summarizer: summarizer,
		library:    library,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	s.mcp = server.NewMCPServer(
		"studykit",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(summarizeNotesTool, s.handleSummarizeNotes)
	s.mcp.AddTool(generateQuizTool, s.handleGenerateQuiz)
	s.mcp.AddTool(generateFlashcardsTool, s.handleGenerateFlashcards)
	s.mcp.AddTool(searchNotesTool, s.handleSearchNotes)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
