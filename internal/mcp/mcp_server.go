// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sprintcast/sprintcast/internal/contract"
)

// NewMCPServer initializes and configures the Sprintcast MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Sprintcast Forecast Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: forecast_velocity ---
	s.AddTool(mcp.NewTool("forecast_velocity",
		mcp.WithDescription("Project next-sprint velocity from a sprint plan document, including the full metrics summary and per-resource breakdown."),
		mcp.WithString("plan_path", mcp.Description("Path to the sprint plan document (JSON or YAML)."), mcp.Required()),
	), h.handleForecastVelocity)

	// --- 2. Tool: resource_capacity ---
	s.AddTool(mcp.NewTool("resource_capacity",
		mcp.WithDescription("Compute each resource's effective working days for the last and next sprint."),
		mcp.WithString("plan_path", mcp.Description("Path to the sprint plan document (JSON or YAML)."), mcp.Required()),
	), h.handleResourceCapacity)

	// --- 3. Tool: baseline_velocity ---
	s.AddTool(mcp.NewTool("baseline_velocity",
		mcp.WithDescription("Resolve the baseline velocity (moving average over the velocity log, or the static fallback) for a sprint plan."),
		mcp.WithString("plan_path", mcp.Description("Path to the sprint plan document (JSON or YAML)."), mcp.Required()),
	), h.handleBaselineVelocity)

	return s
}

// StartMCPServer starts the Sprintcast MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
