package api

import "strconv"

// Partner is one expense partner with their running contribution total.
type Partner struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	AvatarURL          string               `json:"avatar_url,omitempty"`
	TotalContributed   float64              `json:"total_contributed"`
	LastContributionAt string               `json:"last_contribution_at,omitempty"`
	RecentTransactions []PartnerTransaction `json:"recent_transactions,omitempty"`
}

// PartnerTransaction is the abbreviated transaction shape embedded in a
// partner listing when include_transactions is requested.
type PartnerTransaction struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// PartnersResponse is the body of GET /partners.
type PartnersResponse struct {
	Data []Partner `json:"data"`
	Meta PageMeta  `json:"meta"`
}

// PartnersQuery holds the supported query parameters of GET /partners.
// Zero values are omitted from the request.
type PartnersQuery struct {
	SortBy              string // total_contributed, name or created_at
	Limit               int
	Offset              int
	Page                int
	PerPage             int
	IncludeTransactions bool
}

// Values renders the query as URL parameters.
func (q PartnersQuery) Values() map[string]string {
	params := map[string]string{}
	if q.SortBy != "" {
		params["sort_by"] = q.SortBy
	}
	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Offset > 0 {
		params["offset"] = strconv.Itoa(q.Offset)
	}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PerPage > 0 {
		params["per_page"] = strconv.Itoa(q.PerPage)
	}
	if q.IncludeTransactions {
		params["include_transactions"] = "true"
	}
	return params
}

// LeaderboardEntry is one ranked partner of GET /partners/leaderboard.
type LeaderboardEntry struct {
	PartnerID          string  `json:"partner_id"`
	Name               string  `json:"name"`
	AvatarURL          string  `json:"avatar_url,omitempty"`
	TotalContributed   float64 `json:"total_contributed"`
	Rank               int     `json:"rank"`
	TopContributor     bool    `json:"top_contributor"`
	LastContributionAt string  `json:"last_contribution_at,omitempty"`
}

// LeaderboardMeta carries the server-side snapshot time of the ranking.
type LeaderboardMeta struct {
	AsOf string `json:"as_of"`
}

// LeaderboardResponse is the body of GET /partners/leaderboard.
type LeaderboardResponse struct {
	Data []LeaderboardEntry `json:"data"`
	Meta LeaderboardMeta    `json:"meta"`
}

// LeaderboardQuery holds the supported query parameters of
// GET /partners/leaderboard.
type LeaderboardQuery struct {
	Limit                     int
	IncludeRecentTransactions bool
}

// Values renders the query as URL parameters.
func (q LeaderboardQuery) Values() map[string]string {
	params := map[string]string{}
	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	if q.IncludeRecentTransactions {
		params["include_recent_transactions"] = "true"
	}
	return params
}

// PartnerDetail is the partner block of GET /partners/{id}.
type PartnerDetail struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AvatarURL        string  `json:"avatar_url,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	TotalContributed float64 `json:"total_contributed"`
}

// PartnerDetailTransaction is one ledger row of a partner detail response.
type PartnerDetailTransaction struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Category   string  `json:"category,omitempty"`
	Context    string  `json:"context,omitempty"`
	RecordedBy string  `json:"recorded_by"`
	Date       string  `json:"date"`
	ReceiptURL string  `json:"receipt_url,omitempty"`
}

// PartnerDetailMeta is the meta block of GET /partners/{id}.
type PartnerDetailMeta struct {
	TotalTransactions int `json:"total_transactions"`
}

// PartnerDetailResponse is the body of GET /partners/{id}.
type PartnerDetailResponse struct {
	Partner      PartnerDetail              `json:"partner"`
	Transactions []PartnerDetailTransaction `json:"transactions"`
	Meta         PartnerDetailMeta          `json:"meta"`
}

// PartnerDetailQuery holds the supported query parameters of
// GET /partners/{id}. Zero values are omitted from the request.
type PartnerDetailQuery struct {
	From     string
	To       string
	Category string
	Search   string
	Page     int
	PerPage  int
}

// Values renders the query as URL parameters.
func (q PartnerDetailQuery) Values() map[string]string {
	params := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			params[k] = v
		}
	}
	set("from", q.From)
	set("to", q.To)
	set("category", q.Category)
	set("search", q.Search)
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PerPage > 0 {
		params["per_page"] = strconv.Itoa(q.PerPage)
	}
	return params
}
