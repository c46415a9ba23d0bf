package models

// Link is a navigation entry of a view.
type Link struct {
	Label string `json:"label" example:"Profile"`
	Route string `json:"route" example:"/profile"`
}

// HomeView is the public landing page.
type HomeView struct {
	Title    string   `json:"title" example:"Welcome to SmartBin"`
	Lead     string   `json:"lead" example:"Smart Waste Management at Your Fingertips."`
	Features []string `json:"features"`
	Actions  []Link   `json:"actions"`
	Nav      []Link   `json:"nav"`
	LoggedIn bool     `json:"loggedIn"`
}

// ProfileView is the logged-in user's summary page.
type ProfileView struct {
	User     User   `json:"user"`
	IsAdmin  bool   `json:"isAdmin"`
	Title    string `json:"title" example:"Hi, Thandi!"`
	Subtitle string `json:"subtitle" example:"Here's your profile summary:"`
	Points   *int   `json:"points,omitempty"`
	Tools    []Link `json:"tools,omitempty"`
	Actions  []Link `json:"actions,omitempty"`
	Nav      []Link `json:"nav"`
}

// TableView is a searchable management table.
type TableView[T any] struct {
	Items  []T    `json:"items"`
	Total  int    `json:"total"`
	Search string `json:"search,omitempty"`
}

// ChartSeries is one labelled data series of a dashboard chart.
type ChartSeries struct {
	Label  string    `json:"label" example:"Capacity (%)"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// DashboardView aggregates the admin console charts.
type DashboardView struct {
	Capacity ChartSeries `json:"capacity"`
	Points   ChartSeries `json:"points"`
	Hourly   ChartSeries `json:"hourly"`
	Warnings []string    `json:"warnings,omitempty"`
}
