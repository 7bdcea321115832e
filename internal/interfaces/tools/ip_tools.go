package tools

import (
	"context"

	"playo/internal/infrastructure/clients"
)

const defaultIPFields = "status,message,country,countryCode,region,regionName,city,zip,lat,lon,timezone,isp,org,as,query"

type GetIPLocationTool struct {
	ipapi *clients.IPAPIClient
}

func NewGetIPLocationTool(ipapi *clients.IPAPIClient) *GetIPLocationTool {
	return &GetIPLocationTool{ipapi: ipapi}
}

func (t *GetIPLocationTool) Name() string { return "get_ip_location" }

func (t *GetIPLocationTool) Description() string {
	return "Geolocate an IP address or domain name."
}

func (t *GetIPLocationTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"ip":     stringParam("IPv4/IPv6 address or domain name to look up"),
		"fields": stringParam("Comma-separated response fields to include"),
		"lang":   stringParam("Response language code (default 'en')"),
	}, "ip")
}

func (t *GetIPLocationTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	result, err := t.ipapi.Lookup(ctx,
		stringArg(args, "ip", ""),
		stringArg(args, "fields", defaultIPFields),
		stringArg(args, "lang", "en"),
	)
	if err != nil {
		return errorResult(err), nil
	}

	return map[string]any{
		"success":  true,
		"location": result,
	}, nil
}

type GetCurrentLocationTool struct {
	ipapi *clients.IPAPIClient
}

func NewGetCurrentLocationTool(ipapi *clients.IPAPIClient) *GetCurrentLocationTool {
	return &GetCurrentLocationTool{ipapi: ipapi}
}

func (t *GetCurrentLocationTool) Name() string { return "get_current_location" }

func (t *GetCurrentLocationTool) Description() string {
	return "Geolocate the server's own public IP address. Useful as a default search location."
}

func (t *GetCurrentLocationTool) Parameters() map[string]any {
	return objectSchema(map[string]any{})
}

func (t *GetCurrentLocationTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	result, err := t.ipapi.Lookup(ctx, "", defaultIPFields, "en")
	if err != nil {
		return errorResult(err), nil
	}

	return map[string]any{
		"success":  true,
		"location": result,
	}, nil
}
