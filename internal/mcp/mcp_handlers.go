package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sprintcast/sprintcast/core"
	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// capacityPayload is the JSON result shape of the resource_capacity tool.
type capacityPayload struct {
	ResourceDetails []schema.ResourceDetail `json:"resource_details"`
	TotalEffLast    float64                 `json:"total_effective_days_last"`
	TotalEffNext    float64                 `json:"total_effective_days_next"`
}

// planConfig returns a per-request config for the given plan path, or an
// error result when the path argument is missing.
func (h *toolHandler) planConfig(request mcp.CallToolRequest) (*contract.Config, *mcp.CallToolResult) {
	planPath := request.GetString("plan_path", "")
	if planPath == "" {
		return nil, mcp.NewToolResultError("plan_path is required")
	}
	cfg := h.baseCfg.Clone()
	cfg.PlanPath = planPath
	return cfg, nil
}

func (h *toolHandler) handleForecastVelocity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errResult := h.planConfig(request)
	if errResult != nil {
		return errResult, nil
	}

	report, err := core.GetForecastReport(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("forecast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleResourceCapacity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errResult := h.planConfig(request)
	if errResult != nil {
		return errResult, nil
	}

	plan, err := contract.LoadSprintPlan(cfg.PlanPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capacity computation failed: %v", err)), nil
	}
	details, totalLast, totalNext, err := core.ComputeEffectiveDays(plan.Resources, plan.SprintDays)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capacity computation failed: %v", err)), nil
	}

	payload := capacityPayload{
		ResourceDetails: details,
		TotalEffLast:    contract.Round2(totalLast),
		TotalEffNext:    contract.Round2(totalNext),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBaselineVelocity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errResult := h.planConfig(request)
	if errResult != nil {
		return errResult, nil
	}

	res, err := core.GetBaselineResolution(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("baseline resolution failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
