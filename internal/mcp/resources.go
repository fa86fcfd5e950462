// ABOUTME: MCP resource implementations for the tic log.
// ABOUTME: Provides ticbuddy://today, ticbuddy://streak, and ticbuddy://progress resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/ticbuddy/internal/progress"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// ticbuddy://today - today's entries and counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ticbuddy://today",
		Name:        "Today's Tic Log",
		Description: "All tic entries logged today with outcome counts",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// ticbuddy://streak - current logging streak
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ticbuddy://streak",
		Name:        "Logging Streak",
		Description: "Consecutive days with at least one logged tic",
		MIMEType:    "application/json",
	}, s.handleStreakResource)

	// ticbuddy://progress - 7-day progress dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ticbuddy://progress",
		Name:        "Weekly Progress Dashboard",
		Description: "Last 7 days by outcome plus success rate and best outcome today",
		MIMEType:    "application/json",
	}, s.handleProgressResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	entries, err := s.repo.EntriesOn(now)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's entries: %w", err)
	}

	day, err := progress.NewAggregator(s.repo).Today()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize today: %w", err)
	}

	result := map[string]interface{}{
		"date":    now.Format("2006-01-02"),
		"entries": entries,
		"counts": map[string]int{
			"total":      day.Total,
			"redirected": day.Redirected,
			"caught":     day.Caught,
			"noticed":    day.Noticed,
		},
	}

	return marshalResource("ticbuddy://today", result)
}

func (s *Server) handleStreakResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	streak, err := progress.NewAggregator(s.repo).CurrentStreak()
	if err != nil {
		return nil, fmt.Errorf("failed to compute streak: %w", err)
	}

	return marshalResource("ticbuddy://streak", map[string]interface{}{
		"streak_days": streak,
	})
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	agg := progress.NewAggregator(s.repo)

	week, err := agg.Week()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize week: %w", err)
	}

	best, hasBest, err := agg.BestOutcomeToday()
	if err != nil {
		return nil, fmt.Errorf("failed to find best outcome: %w", err)
	}

	result := map[string]interface{}{
		"week_total":        week.Total,
		"week_redirected":   week.Redirected,
		"week_caught":       week.Caught,
		"week_success_rate": week.SuccessRate(),
	}
	if hasBest {
		result["best_outcome_today"] = string(best)
	}

	return marshalResource("ticbuddy://progress", result)
}

func marshalResource(uri string, result interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
