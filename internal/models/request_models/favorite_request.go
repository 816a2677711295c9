package request_models

type AddFavoriteRequest struct {
	Name string `json:"name"`
	Addr string `json:"addr"`
	Kind string `json:"kind"`
}

type RemoveFavoriteRequest struct {
	Name string `json:"name"`
}
