package pagination

// Meta summarises a cursor walk for machine-readable output.
type Meta struct {
	Pages     int  `json:"pages"`
	PageSize  int  `json:"page_size"`
	Items     int  `json:"item_count"`
	Exhausted bool `json:"exhausted"`
}

// NewMeta builds Meta for a walk that fetched pages pages holding items items.
func NewMeta(params Params, pages, items int, exhausted bool) Meta {
	return Meta{
		Pages:     pages,
		PageSize:  params.PageSize,
		Items:     items,
		Exhausted: exhausted,
	}
}
