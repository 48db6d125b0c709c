package api

import "strconv"

// Transaction is the server's ledger record for one contribution or undo.
type Transaction struct {
	ID              string  `json:"id"`
	RecordedFor     string  `json:"recorded_for"`
	RecordedForName string  `json:"recorded_for_name,omitempty"`
	RecordedBy      string  `json:"recorded_by"`
	RecordedByName  string  `json:"recorded_by_name,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Type            string  `json:"type,omitempty"`
	Category        string  `json:"category,omitempty"`
	Context         string  `json:"context,omitempty"`
	Description     string  `json:"description,omitempty"`
	ReceiptURL      string  `json:"receipt_url,omitempty"`
	ReceiptID       string  `json:"receipt_id,omitempty"`
	Date            string  `json:"date"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

// PageMeta is the pagination block of list responses.
type PageMeta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// TransactionsResponse is the body of GET /transactions.
type TransactionsResponse struct {
	Data []Transaction `json:"data"`
	Meta PageMeta      `json:"meta"`
}

// TransactionsQuery holds the supported query parameters of GET /transactions.
// Zero values are omitted from the request.
type TransactionsQuery struct {
	RecordedFor string
	RecordedBy  string
	DateFrom    string
	DateTo      string
	Category    string
	Search      string
	Page        int
	PerPage     int
	SortBy      string
}

// Values renders the query as URL parameters.
func (q TransactionsQuery) Values() map[string]string {
	params := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			params[k] = v
		}
	}
	set("recorded_for", q.RecordedFor)
	set("recorded_by", q.RecordedBy)
	set("date_from", q.DateFrom)
	set("date_to", q.DateTo)
	set("category", q.Category)
	set("q", q.Search)
	set("sort_by", q.SortBy)
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PerPage > 0 {
		params["per_page"] = strconv.Itoa(q.PerPage)
	}
	return params
}

// ContributionPayload is the body of POST /partners, recording a contribution
// against a partner. ReceiptID is optional: a failed receipt upload must not
// block the contribution itself.
type ContributionPayload struct {
	RecordedFor string  `json:"recorded_for"       validate:"required"`
	Amount      float64 `json:"amount"             validate:"required,gt=0"`
	Currency    string  `json:"currency,omitempty"`
	Category    string  `json:"category,omitempty"`
	Context     string  `json:"context,omitempty"`
	Date        string  `json:"date,omitempty"`
	ReceiptID   string  `json:"receipt_id,omitempty"`
}

// ContributionResponse is the body returned by POST /partners.
type ContributionResponse struct {
	Transaction  Transaction `json:"transaction"`
	PartnerTotal float64     `json:"partner_total"`
}

// UndoPayload is the body of POST /transactions/{id}/undo.
type UndoPayload struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Reason        string `json:"reason,omitempty"`
}

// UndoResult describes the compensating transaction created by an undo.
type UndoResult struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	RelatedTo string  `json:"related_to"`
}

// UndoResponse is the body returned by POST /transactions/{id}/undo.
type UndoResponse struct {
	UndoTransaction UndoResult `json:"undo_transaction"`
	PartnerTotal    float64    `json:"partner_total"`
}
