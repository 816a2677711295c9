package response_models

type FavoriteResponse struct {
	Name string `json:"name"`
	Addr string `json:"addr"`
	Kind string `json:"kind"`
}
