// ABOUTME: MCP tool implementations for the tic log.
// ABOUTME: Provides logging, queries, progress stats, and coaching lookups.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ticbuddy/internal/coach"
	"github.com/harperreed/ticbuddy/internal/intent"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/progress"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_tic
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_tic",
		Description: "Log a tic occurrence (type, outcome, urge strength)",
	}, s.handleLogTic)

	// list_tics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_tics",
		Description: "List recent tic entries, optionally for a single day",
	}, s.handleListTics)

	// delete_tic
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_tic",
		Description: "Delete a tic entry by ID",
	}, s.handleDeleteTic)

	// get_streak
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current consecutive-day logging streak",
	}, s.handleGetStreak)

	// week_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "week_summary",
		Description: "Summarize the last 7 days of tic logging by outcome",
	}, s.handleWeekSummary)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the CBIT program profile (phase, primary tics, awareness)",
	}, s.handleGetProfile)

	// coaching_tip
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "coaching_tip",
		Description: "Get the competing response recommendation for a tic type",
	}, s.handleCoachingTip)
}

// Tool input/output types

type logTicInput struct {
	TicType      string `json:"tic_type" jsonschema:"description=Tic type name (Eye Blink, Head Jerk, Shoulder Shrug, Facial Grimace, Arm Jerk, Leg Jerk, Touching, Jumping, Throat Clearing, Sniffing, Grunting, Coughing, Word or Phrase, Humming) or a custom label,required"`
	Outcome      string `json:"outcome,omitempty" jsonschema:"description=Outcome: noticed, caught, redirected, or tic_happened (default noticed)"`
	UrgeStrength int    `json:"urge_strength,omitempty" jsonschema:"description=Premonitory urge strength 1-5"`
	Note         string `json:"note,omitempty" jsonschema:"description=Optional note"`
}

type ticOutput struct {
	ID      string `json:"id"`
	TicType string `json:"tic_type"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

type listTicsInput struct {
	On    string `json:"on,omitempty" jsonschema:"description=Limit to one day (YYYY-MM-DD)"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type deleteTicInput struct {
	ID string `json:"id" jsonschema:"description=Tic entry UUID,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type emptyInput struct{}

type streakOutput struct {
	Streak  int    `json:"streak_days"`
	Message string `json:"message"`
}

type profileOutput struct {
	Phase          int      `json:"phase"`
	PhaseTitle     string   `json:"phase_title"`
	PhaseGoal      string   `json:"phase_goal"`
	PrimaryTics    []string `json:"primary_tics"`
	AwarenessLevel int      `json:"awareness_level"`
	DaysSinceStart int      `json:"days_since_start"`
}

type coachingTipInput struct {
	TicType string `json:"tic_type" jsonschema:"description=Tic type name to look up,required"`
}

// Tool handlers

func (s *Server) handleLogTic(ctx context.Context, req *mcp.CallToolRequest, input logTicInput) (*mcp.CallToolResult, ticOutput, error) {
	outcome := models.OutcomeNoticed
	if input.Outcome != "" {
		if !models.IsValidOutcome(input.Outcome) {
			return nil, ticOutput{}, fmt.Errorf("unknown outcome: %s (valid: noticed, caught, redirected, tic_happened)", input.Outcome)
		}
		outcome = models.Outcome(input.Outcome)
	}

	// Reuse the chat path's category inference and type matching so
	// manual and auto-logged entries agree.
	in := intent.Extract(fmt.Sprintf("[LOG_TIC: type=%s, outcome=%s]", input.TicType, outcome))
	if in == nil {
		return nil, ticOutput{}, fmt.Errorf("invalid tic type: %q", input.TicType)
	}
	entry := in.ToEntry()
	if input.UrgeStrength > 0 {
		entry.WithUrgeStrength(input.UrgeStrength)
	}
	if input.Note != "" {
		entry.WithNote(input.Note)
	}

	if err := s.repo.AppendEntry(entry); err != nil {
		return nil, ticOutput{}, fmt.Errorf("failed to log tic: %w", err)
	}

	return nil, ticOutput{
		ID:      entry.ID.String()[:8],
		TicType: entry.DisplayName(),
		Outcome: string(entry.Outcome),
		Message: fmt.Sprintf("Logged %s (%s) (ID: %s)", entry.DisplayName(), entry.Outcome, entry.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListTics(ctx context.Context, req *mcp.CallToolRequest, input listTicsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var entries []*models.TicEntry
	var err error
	if input.On != "" {
		day, perr := time.ParseInLocation("2006-01-02", input.On, time.Local)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid date: %s", input.On)
		}
		entries, err = s.repo.EntriesOn(day)
	} else {
		entries, err = s.repo.ListEntries(input.Limit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tics: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No tic entries found."}, nil
	}

	return nil, entries, nil
}

func (s *Server) handleDeleteTic(ctx context.Context, req *mcp.CallToolRequest, input deleteTicInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid id: %s", input.ID)
	}
	if err := s.repo.RemoveEntry(id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete tic: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted tic entry: %s", input.ID),
	}, nil
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, streakOutput, error) {
	streak, err := progress.NewAggregator(s.repo).CurrentStreak()
	if err != nil {
		return nil, streakOutput{}, fmt.Errorf("failed to compute streak: %w", err)
	}

	return nil, streakOutput{
		Streak:  streak,
		Message: fmt.Sprintf("%d consecutive day(s) with at least one logged tic", streak),
	}, nil
}

func (s *Server) handleWeekSummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	week, err := progress.NewAggregator(s.repo).Week()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize week: %w", err)
	}

	days := make([]map[string]interface{}, 0, len(week.Days))
	for _, d := range week.Days {
		days = append(days, map[string]interface{}{
			"date":       d.Date.Format("2006-01-02"),
			"total":      d.Total,
			"redirected": d.Redirected,
			"caught":     d.Caught,
			"noticed":    d.Noticed,
		})
	}

	return nil, map[string]interface{}{
		"days":         days,
		"total":        week.Total,
		"redirected":   week.Redirected,
		"caught":       week.Caught,
		"success_rate": week.SuccessRate(),
	}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, profileOutput, error) {
	profile, err := s.repo.LoadProfile()
	if err != nil {
		return nil, profileOutput{}, fmt.Errorf("failed to load profile: %w", err)
	}

	return nil, profileOutput{
		Phase:          int(profile.CurrentPhase),
		PhaseTitle:     profile.CurrentPhase.Title(),
		PhaseGoal:      profile.CurrentPhase.GoalText(),
		PrimaryTics:    profile.PrimaryTics,
		AwarenessLevel: profile.TicAwarenessLevel,
		DaysSinceStart: profile.DaysSinceStart(time.Now()),
	}, nil
}

func (s *Server) handleCoachingTip(ctx context.Context, req *mcp.CallToolRequest, input coachingTipInput) (*mcp.CallToolResult, simpleOutput, error) {
	return nil, simpleOutput{
		Message: coach.ChatDescription(input.TicType),
	}, nil
}
