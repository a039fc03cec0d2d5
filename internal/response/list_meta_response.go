package response

// ListMeta describes a filtered list. There is no pagination: Total is the
// whole collection as fetched, Count is what survived the filters.
type ListMeta struct {
	Total     int      `json:"total"`
	Count     int      `json:"count"`
	Locations []string `json:"locations"`
	JobTypes  []string `json:"job_types"`
}
