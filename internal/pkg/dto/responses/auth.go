package responses

type BackendLogin struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Login struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}
