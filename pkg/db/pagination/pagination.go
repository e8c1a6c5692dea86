package pagination

// Pagination is the offset-based page request bound from query params.
type Pagination struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=20" validate:"gte=1,lte=250"`
}

// Normalize clamps the request into the supported window.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 250 {
		p.PageSize = 250
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageInfo describes the returned page.
type PageInfo struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	HasMore  bool  `json:"has_more"`
}

func BuildPageInfo(page Pagination, total int64) PageInfo {
	return PageInfo{
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    total,
		HasMore:  int64(page.Offset()+page.PageSize) < total,
	}
}
