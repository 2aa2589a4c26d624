package dto

// AdminStatsResponse is the admin dashboard's headline counters.
type AdminStatsResponse struct {
	Users        int64 `json:"users"`
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
}
