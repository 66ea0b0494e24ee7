// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the shakshuka engine as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admiralsuez/shakshuka/internal/core"
	"github.com/admiralsuez/shakshuka/pkg/models"
)

// Server wraps the engine and exposes it as MCP tools.
type Server struct {
	server *gomcp.Server
	engine *core.Engine
	now    func() time.Time
}

// NewServer creates a new MCP server over the given engine.
func NewServer(engine *core.Engine, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		engine: engine,
		now:    time.Now,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "shakshuka", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listTasksInput struct {
	Bucket string `json:"bucket,omitempty" jsonschema:"filter by classification bucket (active, expired, completed); empty returns all three"`
}

type taskOutput struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Notes        string   `json:"notes,omitempty"`
	Bucket       string   `json:"bucket"`
	HandledToday bool     `json:"handled_today"`
	Revision     int      `json:"revision"`
	DueDate      string   `json:"due_date,omitempty"`
	DueHour      *int     `json:"due_hour,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Created      string   `json:"created"`
	Updated      string   `json:"updated"`
}

type listTasksOutput struct {
	Date  string       `json:"date"`
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type strikeTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the unique task identifier"`
	Note   string `json:"note,omitempty" jsonschema:"optional note stored on the ledger entry"`
}

type strikeTaskOutput struct {
	Message string `json:"message"`
}

type undoStrikeInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the unique task identifier"`
}

type undoStrikeOutput struct {
	Removed bool   `json:"removed"`
	Message string `json:"message"`
}

type getMonthStatsInput struct{}

type monthStatsOutput struct {
	Month      string `json:"month"`
	Strikes    int    `json:"strikes"`
	Completed  int    `json:"completed"`
	Expired    int    `json:"expired"`
	TasksAdded int    `json:"tasks_added"`
}

type getSettingsInput struct{}

type settingsOutput struct {
	ResetHour int    `json:"reset_hour"`
	Timezone  string `json:"timezone"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks classified against the current effective day. Buckets: active, expired, completed.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "strike_task",
		Description: "Mark a task handled for the current effective day without completing it permanently.",
	}, s.handleStrikeTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "undo_strike",
		Description: "Remove the most recent ledger entry for a task on the current effective day.",
	}, s.handleUndoStrike)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_month_stats",
		Description: "Get live strike/completed/expired counts for the current effective month.",
	}, s.handleGetMonthStats)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_settings",
		Description: "Get the user's reset hour and timezone.",
	}, s.handleGetSettings)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	result := s.engine.Evaluate(s.now())

	out := listTasksOutput{Date: result.Date}
	appendBucket := func(bucket string, tasks []models.Task) {
		if input.Bucket != "" && input.Bucket != bucket {
			return
		}
		for _, t := range tasks {
			out.Tasks = append(out.Tasks, taskToOutput(t, bucket, result))
		}
	}
	appendBucket("active", result.Partition.Active)
	appendBucket("expired", result.Partition.Expired)
	appendBucket("completed", result.Partition.Completed)
	out.Count = len(out.Tasks)

	return nil, out, nil
}

func (s *Server) handleStrikeTask(_ context.Context, _ *gomcp.CallToolRequest, input strikeTaskInput) (*gomcp.CallToolResult, strikeTaskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), strikeTaskOutput{}, nil
	}
	if err := s.engine.Strike(input.TaskID, input.Note, s.now()); err != nil {
		return errorResult(err.Error()), strikeTaskOutput{}, nil
	}
	return nil, strikeTaskOutput{Message: fmt.Sprintf("struck %s", input.TaskID)}, nil
}

func (s *Server) handleUndoStrike(_ context.Context, _ *gomcp.CallToolRequest, input undoStrikeInput) (*gomcp.CallToolResult, undoStrikeOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), undoStrikeOutput{}, nil
	}
	removed := s.engine.Undo(input.TaskID, s.now())
	msg := "nothing to undo"
	if removed {
		msg = fmt.Sprintf("removed latest entry for %s", input.TaskID)
	}
	return nil, undoStrikeOutput{Removed: removed, Message: msg}, nil
}

func (s *Server) handleGetMonthStats(_ context.Context, _ *gomcp.CallToolRequest, _ getMonthStatsInput) (*gomcp.CallToolResult, monthStatsOutput, error) {
	stats := s.engine.MonthStats(s.now())
	return nil, monthStatsOutput{
		Month:      stats.Month,
		Strikes:    stats.Strikes,
		Completed:  stats.Completed,
		Expired:    stats.Expired,
		TasksAdded: stats.TasksAdded,
	}, nil
}

func (s *Server) handleGetSettings(_ context.Context, _ *gomcp.CallToolRequest, _ getSettingsInput) (*gomcp.CallToolResult, settingsOutput, error) {
	settings := s.engine.Settings()
	return nil, settingsOutput{
		ResetHour: settings.ResetHour,
		Timezone:  settings.Timezone,
	}, nil
}

// --- Helpers ---

func taskToOutput(t models.Task, bucket string, result core.EvalResult) taskOutput {
	return taskOutput{
		ID:           t.ID,
		Title:        t.Title,
		Notes:        t.Notes,
		Bucket:       bucket,
		HandledToday: handledInResult(t.ID, result),
		Revision:     t.Revision,
		DueDate:      t.DueDate,
		DueHour:      t.DueHour,
		Tags:         t.Tags,
		Created:      t.CreatedAt.Format(time.RFC3339),
		Updated:      t.UpdatedAt.Format(time.RFC3339),
	}
}

func handledInResult(taskID string, result core.EvalResult) bool {
	return core.HandledToday(result.Entries, taskID, result.Date)
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
