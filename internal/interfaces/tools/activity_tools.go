package tools

import (
	"context"

	"playo/internal/domain/activities"
	"playo/internal/infrastructure/clients"
)

type SearchActivitiesTool struct {
	playo *clients.PlayoClient
}

func NewSearchActivitiesTool(playo *clients.PlayoClient) *SearchActivitiesTool {
	return &SearchActivitiesTool{playo: playo}
}

func (t *SearchActivitiesTool) Name() string { return "search_activities" }

func (t *SearchActivitiesTool) Description() string {
	return "Search for sports activities near a location. Use get_available_sports, get_timing_slots and get_skill_levels for the valid filter values."
}

func (t *SearchActivitiesTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"lat":         numberParam("Latitude of the search center"),
		"lng":         numberParam("Longitude of the search center"),
		"date":        stringParam("Date to search on (YYYY-MM-DD, default today)"),
		"sports":      arrayParam("string", "Sport IDs to filter by, e.g. ['SP5'] (default all)"),
		"timings":     arrayParam("integer", "Timing slot IDs (default [0, 1, 2])"),
		"skills":      arrayParam("integer", "Skill level IDs (default [1])"),
		"city_radius": integerParam("Search radius in km (default 20)"),
		"sort_by":     stringParam("Sort order: 'distance' or 'time_date'"),
		"page":        integerParam("Result page, starting at 0"),
	}, "lat", "lng")
}

func (t *SearchActivitiesTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	result, err := t.playo.SearchActivities(ctx, clients.SearchActivitiesRequest{
		Lat:        floatArg(args, "lat", 0),
		Lng:        floatArg(args, "lng", 0),
		Date:       stringArg(args, "date", ""),
		Sports:     stringSliceArg(args, "sports"),
		Timings:    intSliceArg(args, "timings"),
		Skills:     intSliceArg(args, "skills"),
		CityRadius: intArg(args, "city_radius", 20),
		SortBy:     stringArg(args, "sort_by", ""),
		Page:       intArg(args, "page", 0),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return map[string]any{
		"success": true,
		"results": result,
	}, nil
}

type GetAvailableSportsTool struct{}

func NewGetAvailableSportsTool() *GetAvailableSportsTool { return &GetAvailableSportsTool{} }

func (t *GetAvailableSportsTool) Name() string { return "get_available_sports" }

func (t *GetAvailableSportsTool) Description() string {
	return "List the sports that can be searched for, with the IDs search_activities expects."
}

func (t *GetAvailableSportsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{})
}

func (t *GetAvailableSportsTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	return map[string]any{
		"success": true,
		"sports":  activities.Sports,
	}, nil
}

type GetTimingSlotsTool struct{}

func NewGetTimingSlotsTool() *GetTimingSlotsTool { return &GetTimingSlotsTool{} }

func (t *GetTimingSlotsTool) Name() string { return "get_timing_slots" }

func (t *GetTimingSlotsTool) Description() string {
	return "List the timing slot IDs search_activities accepts and the hours each one covers."
}

func (t *GetTimingSlotsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{})
}

func (t *GetTimingSlotsTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	return map[string]any{
		"success":      true,
		"timing_slots": activities.TimingSlots,
	}, nil
}

type GetSkillLevelsTool struct{}

func NewGetSkillLevelsTool() *GetSkillLevelsTool { return &GetSkillLevelsTool{} }

func (t *GetSkillLevelsTool) Name() string { return "get_skill_levels" }

func (t *GetSkillLevelsTool) Description() string {
	return "List the skill level IDs search_activities accepts."
}

func (t *GetSkillLevelsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{})
}

func (t *GetSkillLevelsTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	return map[string]any{
		"success":      true,
		"skill_levels": activities.SkillLevels,
	}, nil
}
