package order

// Draft is the in-progress order configuration. Zero IDs mean "nothing
// selected yet"; quantity 0 means the user has not entered one.
type Draft struct {
	CategoryID int64  `json:"category_id"`
	ServiceID  int64  `json:"service_id"`
	Link       string `json:"link"`
	Quantity   int    `json:"quantity"`
}

func (d Draft) HasSelection() bool {
	return d.CategoryID != 0 && d.ServiceID != 0
}
