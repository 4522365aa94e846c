package handler

type SnippetParams struct {
	Name string `param:"name"`
}

type VSCodeParams struct {
	Scope string `query:"scope"`
}

type APIKeyParams struct {
	ID int64 `param:"id"`
}

type ConfigParams struct {
	RescanIntervalHours int64  `json:"rescan_interval_hours"`
	Scope               string `json:"scope"`
}
