package response_models

type PlaceResponse struct {
	Name string `json:"name"`
	Addr string `json:"addr"`
}
