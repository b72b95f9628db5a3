package pagination

// Params are the normalized page/limit pair taken from the query string.
type Params struct {
	Page  int
	Limit int
}

type Envelope struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

const (
	DefaultLimit = 20
	maxLimit     = 100
)

func Normalize(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) Envelope(total int) Envelope {
	if total < 0 {
		total = 0
	}

	// Guard the divisor: limit is normalized to >=1, but Envelope must hold
	// even for a hand-built Params.
	limit := p.Limit
	if limit < 1 {
		limit = 1
	}

	return Envelope{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}
